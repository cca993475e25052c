// Package domain holds the core types of the photo pipeline shared by usecases,
// repositories, and transports.
package domain

// PhotoRecord is the document written to the photo index, one per upload event.
// JSON tags match the index document shape; records are immutable once written.
type PhotoRecord struct {
	ObjectKey        string   `json:"objectKey"`
	Bucket           string   `json:"bucket"`
	CreatedTimestamp string   `json:"createdTimestamp"`
	Labels           []string `json:"labels"`
}

// Upload identifies one object-store upload notification.
type Upload struct {
	Bucket    string
	Key       string
	EventTime string
}

// SearchResult is one presentable hit: a time-limited access link plus the
// labels of the underlying photo.
type SearchResult struct {
	URL    string   `json:"url"`
	Labels []string `json:"labels"`
}
