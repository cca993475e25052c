// Package photoindex stores and queries photo documents in the OpenSearch
// index.
package photoindex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/kailas-cloud/photodex/internal/domain"
)

// Transport performs raw OpenSearch requests. *opensearch.Client satisfies it.
type Transport interface {
	Perform(*http.Request) (*http.Response, error)
}

// Repo implements indexing.Writer and search.Index over one index.
type Repo struct {
	client Transport
	index  string
}

// New creates a photo index repository for the given index name.
func New(client Transport, index string) *Repo {
	return &Repo{client: client, index: index}
}

// Index writes one photo record under the given document id.
func (r *Repo) Index(ctx context.Context, id string, rec domain.PhotoRecord) error {
	body, err := json.Marshal(documentFromRecord(rec))
	if err != nil {
		return fmt.Errorf("marshal photo document: %w", err)
	}

	req := opensearchapi.IndexRequest{
		Index:      r.index,
		DocumentID: id,
		Body:       bytes.NewReader(body),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrIndexWrite, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("%w: %s", domain.ErrIndexWrite, res.Status())
	}
	return nil
}

// Query runs an OR-combined match query against the labels field and returns
// the stored records in the index's relevance order.
func (r *Repo) Query(ctx context.Context, query string, limit int) ([]domain.PhotoRecord, error) {
	body, err := json.Marshal(newMatchLabelsQuery(query, limit))
	if err != nil {
		return nil, fmt.Errorf("marshal search body: %w", err)
	}

	req := opensearchapi.SearchRequest{
		Index: []string{r.index},
		Body:  bytes.NewReader(body),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrIndexQuery, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("%w: %s", domain.ErrIndexQuery, res.Status())
	}

	var sr searchResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("%w: decode search response: %w", domain.ErrIndexQuery, err)
	}
	return sr.records(), nil
}
