package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"bookshoppe/internal/entity"
)

// Source delivers the raw catalog document. Implementations report
// transport-level failures as *FetchError.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	Location() string
}

// FetchError means the catalog resource could not be read.
type FetchError struct {
	Location   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch catalog %s: status %d", e.Location, e.StatusCode)
	}
	return fmt.Sprintf("fetch catalog %s: %v", e.Location, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError means the catalog payload was not a valid book list.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse catalog: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Loader fetches and decodes the book catalog. Every Load reads the source
// fresh; there is no caching layer and no retry. Failure is terminal for
// the request that triggered it.
type Loader struct {
	source Source
}

func NewLoader(source Source) *Loader {
	return &Loader{source: source}
}

func (l *Loader) Load(ctx context.Context) ([]entity.Book, error) {
	raw, err := l.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	var books []entity.Book
	if err := json.Unmarshal(raw, &books); err != nil {
		return nil, &ParseError{Err: err}
	}
	return books, nil
}
