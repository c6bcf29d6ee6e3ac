package testutil

import (
	"encoding/json"

	"bookshoppe/internal/entity"
)

// FloatPtr returns a pointer to v, for optional price fields.
func FloatPtr(v float64) *float64 {
	return &v
}

// Catalog returns a small fixture catalog covering the shapes real
// catalog revisions had: numeric-looking string ids, a price-less book,
// and a book using the image field instead of cover.
func Catalog() []entity.Book {
	return []entity.Book{
		{
			ID:          "1",
			Title:       "Onyx Storm",
			Author:      "Rebecca Yarros",
			Genre:       "Fiction",
			Description: "Dragon riders and political intrigue.",
			Price:       FloatPtr(14.99),
			Cover:       "https://covers.example.com/onyx-storm.jpg",
		},
		{
			ID:          "2",
			Title:       "Broken Country",
			Author:      "Clare Leslie Hall",
			Genre:       "Fiction",
			Description: "Love, loss, and resilience in a rural setting.",
			Price:       FloatPtr(25.99),
			Image:       "https://covers.example.com/broken-country.jpg",
		},
		{
			ID:          "3",
			Title:       "Careless People",
			Author:      "Sarah Wynn-Williams",
			Genre:       "Non-Fiction",
			Description: "A memoir about the tech industry's culture.",
			Price:       FloatPtr(27.99),
			Cover:       "https://covers.example.com/careless-people.jpg",
		},
		{
			ID:          "4",
			Title:       "Resolute",
			Author:      "Benjamin Hall",
			Genre:       "Non-Fiction",
			Description: "A personal account of recovery.",
			Price:       FloatPtr(28.00),
			Cover:       "https://covers.example.com/resolute.jpg",
		},
		{
			ID:          "5",
			Title:       "Uncatalogued Galley",
			Author:      "Anonymous",
			Genre:       "Fiction",
			Description: "A review copy with no price set.",
		},
	}
}

// CatalogJSON returns the fixture catalog serialized the way books.json is.
func CatalogJSON() []byte {
	data, err := json.Marshal(Catalog())
	if err != nil {
		panic(err)
	}
	return data
}
