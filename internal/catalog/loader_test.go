package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"bookshoppe/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	data []byte
	err  error
}

func (s stubSource) Fetch(_ context.Context) ([]byte, error) { return s.data, s.err }
func (s stubSource) Location() string                        { return "stub" }

func TestLoader_Load(t *testing.T) {
	t.Run("parses a book list", func(t *testing.T) {
		loader := NewLoader(stubSource{data: testutil.CatalogJSON()})
		books, err := loader.Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, books, 5)
		assert.Equal(t, "Onyx Storm", books[0].Title)
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		fetchErr := &FetchError{Location: "stub", StatusCode: 503}
		loader := NewLoader(stubSource{err: fetchErr})
		_, err := loader.Load(context.Background())

		var fe *FetchError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, 503, fe.StatusCode)
	})

	t.Run("invalid payload is a parse error", func(t *testing.T) {
		loader := NewLoader(stubSource{data: []byte(`{"not": "a list"`)})
		_, err := loader.Load(context.Background())

		var pe *ParseError
		assert.ErrorAs(t, err, &pe)
	})
}

func TestHTTPSource(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(testutil.CatalogJSON())
		}))
		defer server.Close()

		books, err := NewLoader(NewHTTPSource(server.URL)).Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, books, 5)
	})

	t.Run("non-success status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := NewHTTPSource(server.URL).Fetch(context.Background())
		var fe *FetchError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, http.StatusNotFound, fe.StatusCode)
	})

	t.Run("unreachable host", func(t *testing.T) {
		_, err := NewHTTPSource("http://127.0.0.1:1").Fetch(context.Background())
		var fe *FetchError
		assert.ErrorAs(t, err, &fe)
	})
}

func TestFileSource(t *testing.T) {
	t.Run("reads the catalog file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "books.json")
		require.NoError(t, os.WriteFile(path, testutil.CatalogJSON(), 0o644))

		books, err := NewLoader(NewFileSource(path)).Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, books, 5)
	})

	t.Run("missing file is a fetch error", func(t *testing.T) {
		_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.json")).Fetch(context.Background())
		var fe *FetchError
		require.ErrorAs(t, err, &fe)
		assert.True(t, errors.Is(fe.Err, os.ErrNotExist))
	})
}
