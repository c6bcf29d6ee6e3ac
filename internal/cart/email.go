package cart

import (
	"fmt"
	"net/url"
	"strings"

	"bookshoppe/internal/entity"
)

// SummaryText renders the cart as a plain-text order summary: one line per
// item with quantity and subtotal, then the grand total.
func SummaryText(items []entity.DetailedLineItem, totals entity.Totals) string {
	var b strings.Builder
	b.WriteString("Your Book Shoppe cart\n\n")

	if len(items) == 0 {
		b.WriteString("(empty)\n")
	}
	for _, item := range items {
		fmt.Fprintf(&b, "- %s x%d: %s\n", item.Title, item.Quantity, item.SubtotalLabel())
	}

	fmt.Fprintf(&b, "\nItems: %d\nTotal: %s\n", totals.ItemCount, totals.TotalPriceLabel())
	return b.String()
}

// ComposeMailto builds a client-side mail-compose URL carrying the cart
// summary. This is a one-shot export; nothing is sent and no delivery is
// confirmed.
func ComposeMailto(to string, items []entity.DetailedLineItem, totals entity.Totals) string {
	params := url.Values{}
	params.Set("subject", "My Book Shoppe cart")
	params.Set("body", SummaryText(items, totals))

	// Mail clients expect %20 for spaces, not the form-encoded plus.
	query := strings.ReplaceAll(params.Encode(), "+", "%20")
	return "mailto:" + to + "?" + query
}
