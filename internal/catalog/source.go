package catalog

import (
	"context"
	"os"
	"time"

	"golang.org/x/time/rate"
	"resty.dev/v3"
)

// HTTPSource fetches the catalog document over HTTP. The client caps the
// wait at 15 seconds so a stalled upstream cannot hang page loads.
type HTTPSource struct {
	url        string
	httpClient *resty.Client
	limiter    *rate.Limiter
}

func NewHTTPSource(url string) *HTTPSource {
	client := resty.New().
		SetTimeout(15 * time.Second).
		SetHeader("Accept", "application/json")

	return &HTTPSource{
		url:        url,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Every(100*time.Millisecond), 5),
	}
}

func (s *HTTPSource) Location() string { return s.url }

func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, &FetchError{Location: s.url, Err: err}
	}

	resp, err := s.httpClient.R().
		SetContext(ctx).
		Get(s.url)
	if err != nil {
		return nil, &FetchError{Location: s.url, Err: err}
	}
	if resp.IsError() {
		return nil, &FetchError{Location: s.url, StatusCode: resp.StatusCode()}
	}
	return resp.Bytes(), nil
}

// FileSource reads the catalog document from disk, for deployments that
// ship books.json next to the binary.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Location() string { return s.path }

func (s *FileSource) Fetch(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &FetchError{Location: s.path, Err: err}
	}
	return data, nil
}
