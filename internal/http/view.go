package http

import (
	"fmt"

	"bookshoppe/internal/entity"
)

// View payloads are render-ready: labels pre-formatted, covers resolved,
// totals computed. Each response carries the complete current state; there
// is no partial update.

type BookCard struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Genre       string   `json:"genre"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	PriceLabel  string   `json:"price_label"`
	CoverURL    string   `json:"cover_url"`
}

func newBookCard(b entity.Book) BookCard {
	return BookCard{
		ID:          b.ID.String(),
		Title:       b.Title,
		Author:      b.Author,
		Genre:       b.Genre,
		Description: b.Description,
		Price:       b.Price,
		PriceLabel:  b.PriceLabel(),
		CoverURL:    b.CoverURL(),
	}
}

func newBookCards(books []entity.Book) []BookCard {
	cards := make([]BookCard, 0, len(books))
	for _, b := range books {
		cards = append(cards, newBookCard(b))
	}
	return cards
}

type ShelfView struct {
	Genre string     `json:"genre"`
	Books []BookCard `json:"books"`
}

// PageView models the details/search page: exactly one of the three kinds
// is populated, decided by the id/query navigation contract.
type PageView struct {
	Kind    string     `json:"kind"` // "detail", "results", or "welcome"
	Book    *BookCard  `json:"book,omitempty"`
	Query   string     `json:"query,omitempty"`
	Results []BookCard `json:"results,omitempty"`
	Heading string     `json:"heading,omitempty"`
	Message string     `json:"message,omitempty"`
}

type CartRowView struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Author        string   `json:"author,omitempty"`
	CoverURL      string   `json:"cover_url,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	Quantity      int      `json:"quantity"`
	Subtotal      float64  `json:"subtotal"`
	SubtotalLabel string   `json:"subtotal_label"`
	Missing       bool     `json:"missing"`
}

type TotalsView struct {
	ItemCount       int     `json:"item_count"`
	TotalPrice      float64 `json:"total_price"`
	TotalPriceLabel string  `json:"total_price_label"`
}

type CartView struct {
	Empty   bool          `json:"empty"`
	Message string        `json:"message,omitempty"`
	Items   []CartRowView `json:"items"`
	Totals  TotalsView    `json:"totals"`
}

func newCartView(items []entity.DetailedLineItem, totals entity.Totals) CartView {
	view := CartView{
		Items: make([]CartRowView, 0, len(items)),
		Totals: TotalsView{
			ItemCount:       totals.ItemCount,
			TotalPrice:      totals.TotalPrice,
			TotalPriceLabel: totals.TotalPriceLabel(),
		},
	}
	if len(items) == 0 {
		view.Empty = true
		view.Message = "No books to display."
		return view
	}
	for _, item := range items {
		view.Items = append(view.Items, CartRowView{
			ID:            item.ID,
			Title:         item.Title,
			Author:        item.Author,
			CoverURL:      item.CoverURL,
			Price:         item.Price,
			Quantity:      item.Quantity,
			Subtotal:      item.Subtotal,
			SubtotalLabel: item.SubtotalLabel(),
			Missing:       item.Missing,
		})
	}
	return view
}

func searchHeading(query string) string {
	return fmt.Sprintf("Search Results for %q", query)
}
