package http

import (
	"errors"
	"math/rand"
	"net/http"
	"time"

	"bookshoppe/internal/catalog"
	"bookshoppe/internal/entity"
	"bookshoppe/internal/httpx"

	log "github.com/sirupsen/logrus"
)

type StorefrontHandler struct {
	loader    *catalog.Loader
	shelfSize int
	seed      func() int64
}

func NewStorefrontHandler(loader *catalog.Loader, shelfSize int) *StorefrontHandler {
	return &StorefrontHandler{
		loader:    loader,
		shelfSize: shelfSize,
		seed:      func() int64 { return time.Now().UnixNano() },
	}
}

// loadCatalog fetches the catalog for the current request. On failure it
// writes the whole-region error response; nothing on a storefront page can
// render without the catalog.
func loadCatalog(w http.ResponseWriter, r *http.Request, loader *catalog.Loader) ([]entity.Book, bool) {
	books, err := loader.Load(r.Context())
	if err != nil {
		kind := "fetch"
		var parseErr *catalog.ParseError
		if errors.As(err, &parseErr) {
			kind = "parse"
		}
		log.WithError(err).WithFields(log.Fields{
			"kind":       kind,
			"request_id": httpx.RequestIDFrom(r),
		}).Error("catalog load failed")
		httpx.JSONError(w, http.StatusBadGateway, "CATALOG_UNAVAILABLE",
			"We encountered an issue loading book information. Please try again later.", nil)
		return nil, false
	}
	return books, true
}

// Shelves serves the home page: a few random picks per genre.
func (h *StorefrontHandler) Shelves(w http.ResponseWriter, r *http.Request) {
	books, ok := loadCatalog(w, r, h.loader)
	if !ok {
		return
	}

	rng := rand.New(rand.NewSource(h.seed()))
	shelves := make([]ShelfView, 0)
	for _, genre := range catalog.Genres(books) {
		picks := catalog.SampleByGenre(books, genre, h.shelfSize, rng)
		shelves = append(shelves, ShelfView{
			Genre: genre,
			Books: newBookCards(picks),
		})
	}

	httpx.JSONSuccess(w, shelves, nil)
}

// ListBooks serves the catalog listing with keyword search and price sort.
func (h *StorefrontHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, ok := loadCatalog(w, r, h.loader)
	if !ok {
		return
	}

	books = catalog.FilterByKeyword(books, r.URL.Query().Get("q"))

	switch r.URL.Query().Get("sort") {
	case "price_asc":
		books = catalog.SortByPrice(books, catalog.PriceAscending)
	case "price_desc":
		books = catalog.SortByPrice(books, catalog.PriceDescending)
	}

	httpx.JSONSuccess(w, newBookCards(books), map[string]interface{}{
		"count": len(books),
	})
}

// Page serves the details/search page. The id parameter takes precedence
// over query; with neither, a welcome payload is returned.
func (h *StorefrontHandler) Page(w http.ResponseWriter, r *http.Request) {
	books, ok := loadCatalog(w, r, h.loader)
	if !ok {
		return
	}

	id := r.URL.Query().Get("id")
	query := r.URL.Query().Get("query")

	switch {
	case id != "":
		book, found := catalog.FindByID(books, id)
		if !found {
			httpx.JSONError(w, http.StatusNotFound, "BOOK_NOT_FOUND",
				"No book with ID "+id+" was found.", nil)
			return
		}
		card := newBookCard(book)
		httpx.JSONSuccess(w, PageView{Kind: "detail", Book: &card}, nil)

	case query != "":
		results := catalog.FilterByKeyword(books, query)
		httpx.JSONSuccess(w, PageView{
			Kind:    "results",
			Query:   query,
			Heading: searchHeading(query),
			Results: newBookCards(results),
		}, map[string]interface{}{
			"count": len(results),
		})

	default:
		httpx.JSONSuccess(w, PageView{
			Kind:    "welcome",
			Message: "Welcome to the Book Shoppe! Look up a book by id or use the search bar.",
		}, nil)
	}
}
