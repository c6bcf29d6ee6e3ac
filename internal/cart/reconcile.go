package cart

import (
	"bookshoppe/internal/catalog"
	"bookshoppe/internal/entity"

	log "github.com/sirupsen/logrus"
)

// Reconcile joins persisted line items against the catalog to produce
// render-ready rows. Items whose book no longer exists in the catalog
// degrade to a missing row carrying only the denormalized title; they stay
// removable from the UI. Neither input is mutated.
func Reconcile(items []entity.CartLineItem, books []entity.Book) []entity.DetailedLineItem {
	detailed := make([]entity.DetailedLineItem, 0, len(items))
	for _, item := range items {
		book, ok := catalog.FindByID(books, item.ID)
		if !ok {
			log.WithField("book_id", item.ID).Warn("cart line item has no matching catalog entry")
			detailed = append(detailed, entity.DetailedLineItem{
				ID:       item.ID,
				Title:    item.Title,
				Quantity: item.Quantity,
				Missing:  true,
			})
			continue
		}

		row := entity.DetailedLineItem{
			ID:       item.ID,
			Title:    book.Title,
			Author:   book.Author,
			Genre:    book.Genre,
			CoverURL: book.CoverURL(),
			Price:    book.Price,
			Quantity: item.Quantity,
		}
		if book.Price != nil {
			row.Subtotal = *book.Price * float64(item.Quantity)
		}
		detailed = append(detailed, row)
	}
	return detailed
}

// Sum computes cart totals. Every row's quantity counts toward ItemCount,
// missing rows included; TotalPrice only sums subtotals of matched rows.
func Sum(items []entity.DetailedLineItem) entity.Totals {
	var totals entity.Totals
	for _, item := range items {
		totals.ItemCount += item.Quantity
		if !item.Missing {
			totals.TotalPrice += item.Subtotal
		}
	}
	return totals
}
