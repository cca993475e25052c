// Package rekognition adapts the Rekognition image-labeling service.
package rekognition

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	rek "github.com/aws/aws-sdk-go-v2/service/rekognition"
	rektypes "github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// Detector detects labels for images already stored in S3; the service reads
// the object server-side.
type Detector struct {
	client *rek.Client
}

// New creates a label detector.
func New(client *rek.Client) *Detector {
	return &Detector{client: client}
}

// DetectLabels returns up to maxLabels label names in the service's ranking
// order (most confident first).
func (d *Detector) DetectLabels(ctx context.Context, bucket, key string, maxLabels int) ([]string, error) {
	out, err := d.client.DetectLabels(ctx, &rek.DetectLabelsInput{
		Image: &rektypes.Image{
			S3Object: &rektypes.S3Object{
				Bucket: aws.String(bucket),
				Name:   aws.String(key),
			},
		},
		MaxLabels: aws.Int32(int32(maxLabels)),
	})
	if err != nil {
		return nil, fmt.Errorf("detect labels %s/%s: %w", bucket, key, err)
	}

	names := make([]string, 0, len(out.Labels))
	for _, label := range out.Labels {
		names = append(names, aws.ToString(label.Name))
	}
	return names, nil
}
