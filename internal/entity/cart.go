package entity

import "fmt"

// CartLineItem is one persisted cart entry. Title is a denormalized copy
// taken at add time so the cart can still render if the book disappears
// from the catalog.
type CartLineItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
}

// DetailedLineItem is a CartLineItem joined with its catalog entry. It is
// built per render and never persisted. When no catalog entry matches,
// Missing is set and only the denormalized fields carry over.
type DetailedLineItem struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Author   string   `json:"author,omitempty"`
	Genre    string   `json:"genre,omitempty"`
	CoverURL string   `json:"cover_url,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Quantity int      `json:"quantity"`
	Subtotal float64  `json:"subtotal"`
	Missing  bool     `json:"missing"`
}

// SubtotalLabel formats the subtotal, or "N/A" for items without a price.
func (d DetailedLineItem) SubtotalLabel() string {
	if d.Missing || d.Price == nil {
		return "N/A"
	}
	return fmt.Sprintf("$%.2f", d.Subtotal)
}

type Totals struct {
	ItemCount  int     `json:"item_count"`
	TotalPrice float64 `json:"total_price"`
}

func (t Totals) TotalPriceLabel() string {
	return fmt.Sprintf("$%.2f", t.TotalPrice)
}
