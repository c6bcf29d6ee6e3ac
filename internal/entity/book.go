package entity

import (
	"encoding/json"
	"fmt"
)

// BookID is a catalog identifier. Catalog revisions drifted between numeric
// and string ids, so it decodes from either and always compares as a string.
type BookID string

func (id *BookID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = BookID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("book id must be a string or number, got %s", data)
	}
	*id = BookID(n.String())
	return nil
}

func (id BookID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (id BookID) String() string {
	return string(id)
}

type Book struct {
	ID          BookID   `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Genre       string   `json:"genre"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	// One of Cover/Image is set depending on the catalog revision.
	Cover string `json:"cover,omitempty"`
	Image string `json:"image,omitempty"`
}

const placeholderCover = "https://placehold.co/150x200/cccccc/333333?text=No+Image"

// CoverURL prefers the cover field, falling back to image, then a placeholder.
func (b Book) CoverURL() string {
	if b.Cover != "" {
		return b.Cover
	}
	if b.Image != "" {
		return b.Image
	}
	return placeholderCover
}

// PriceLabel formats the price to two decimal places, or "N/A" when absent.
func (b Book) PriceLabel() string {
	if b.Price == nil {
		return "N/A"
	}
	return fmt.Sprintf("$%.2f", *b.Price)
}
