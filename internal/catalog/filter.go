package catalog

import (
	"math/rand"
	"sort"
	"strings"

	"bookshoppe/internal/entity"
)

type SortDirection string

const (
	PriceAscending  SortDirection = "asc"
	PriceDescending SortDirection = "desc"
)

// FilterByKeyword returns the books whose title, author, genre, or
// description contains the keyword, case-insensitively. An empty keyword
// returns the input unchanged. Source order is preserved.
func FilterByKeyword(books []entity.Book, keyword string) []entity.Book {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return books
	}
	needle := strings.ToLower(keyword)

	var matched []entity.Book
	for _, b := range books {
		if containsFold(b.Title, needle) ||
			containsFold(b.Author, needle) ||
			containsFold(b.Genre, needle) ||
			containsFold(b.Description, needle) {
			matched = append(matched, b)
		}
	}
	return matched
}

func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}

// SortByPrice returns a new slice ordered by price. The sort is stable:
// ties keep their original catalog order, which callers rely on. Books
// without a price sort last in both directions.
func SortByPrice(books []entity.Book, direction SortDirection) []entity.Book {
	sorted := make([]entity.Book, len(books))
	copy(sorted, books)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Price, sorted[j].Price
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		if direction == PriceDescending {
			return *a > *b
		}
		return *a < *b
	})
	return sorted
}

// FindByID looks up a book by its string-coerced id.
func FindByID(books []entity.Book, id string) (entity.Book, bool) {
	for _, b := range books {
		if b.ID.String() == id {
			return b, true
		}
	}
	return entity.Book{}, false
}

// Genres lists the distinct genres in first-seen catalog order.
func Genres(books []entity.Book) []string {
	seen := make(map[string]bool)
	var genres []string
	for _, b := range books {
		if b.Genre == "" || seen[b.Genre] {
			continue
		}
		seen[b.Genre] = true
		genres = append(genres, b.Genre)
	}
	return genres
}

// SampleByGenre picks up to n random books of the given genre, for the
// home page shelves.
func SampleByGenre(books []entity.Book, genre string, n int, rng *rand.Rand) []entity.Book {
	var pool []entity.Book
	for _, b := range books {
		if b.Genre == genre {
			pool = append(pool, b)
		}
	}
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > n {
		pool = pool[:n]
	}
	return pool
}
