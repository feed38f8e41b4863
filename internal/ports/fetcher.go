package ports

import "context"

// FetchResult is the outcome of a completed HTTP exchange
type FetchResult struct {
	Body        []byte
	ContentType string
	StatusCode  int
}

// OK reports whether the status code is in the 2xx range
func (r *FetchResult) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Fetcher downloads resource bodies
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}
