package domain

import "errors"

var (
	// ErrUpstreamLabeling signals a failed automatic image-labeling call.
	ErrUpstreamLabeling = errors.New("upstream labeling failed")
	// ErrUpstreamMetadata signals a failed object-metadata read.
	ErrUpstreamMetadata = errors.New("object metadata read failed")
	// ErrIndexWrite signals a failed index document write.
	ErrIndexWrite = errors.New("index write failed")
	// ErrIndexQuery signals a failed index query.
	ErrIndexQuery = errors.New("index query failed")
	// ErrIntentService signals a failed intent/slot-extraction call.
	ErrIntentService = errors.New("intent service failed")
	// ErrPresign signals a failed presigned URL generation.
	ErrPresign = errors.New("presign failed")
)
