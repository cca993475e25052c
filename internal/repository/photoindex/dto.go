package photoindex

import "github.com/kailas-cloud/photodex/internal/domain"

// photoDocument is the stored index document shape.
type photoDocument struct {
	ObjectKey        string   `json:"objectKey"`
	Bucket           string   `json:"bucket"`
	CreatedTimestamp string   `json:"createdTimestamp"`
	Labels           []string `json:"labels"`
}

func documentFromRecord(rec domain.PhotoRecord) photoDocument {
	return photoDocument{
		ObjectKey:        rec.ObjectKey,
		Bucket:           rec.Bucket,
		CreatedTimestamp: rec.CreatedTimestamp,
		Labels:           rec.Labels,
	}
}

func (d photoDocument) record() domain.PhotoRecord {
	return domain.PhotoRecord{
		ObjectKey:        d.ObjectKey,
		Bucket:           d.Bucket,
		CreatedTimestamp: d.CreatedTimestamp,
		Labels:           d.Labels,
	}
}

// searchBody is the query issued to the index.
type searchBody struct {
	Size  int       `json:"size"`
	Query queryBody `json:"query"`
}

type queryBody struct {
	Match matchBody `json:"match"`
}

type matchBody struct {
	Labels matchClause `json:"labels"`
}

type matchClause struct {
	Query    string `json:"query"`
	Operator string `json:"operator"`
}

// newMatchLabelsQuery builds a match query on the labels field. The "or"
// operator returns a photo when any keyword matches.
func newMatchLabelsQuery(query string, limit int) searchBody {
	return searchBody{
		Size: limit,
		Query: queryBody{
			Match: matchBody{
				Labels: matchClause{Query: query, Operator: "or"},
			},
		},
	}
}

// searchResponse is the subset of the search reply this repo consumes.
type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source photoDocument `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (r searchResponse) records() []domain.PhotoRecord {
	out := make([]domain.PhotoRecord, 0, len(r.Hits.Hits))
	for _, h := range r.Hits.Hits {
		out = append(out, h.Source.record())
	}
	return out
}
