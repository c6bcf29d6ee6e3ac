package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"bookshoppe/internal/cart"
	"bookshoppe/internal/catalog"
	"bookshoppe/internal/httpx"
)

type CartHandler struct {
	store  *cart.Store
	loader *catalog.Loader
}

func NewCartHandler(store *cart.Store, loader *catalog.Loader) *CartHandler {
	return &CartHandler{store: store, loader: loader}
}

// cartItemID extracts the trailing id from /storefront/cart/items/{id}.
func cartItemID(path string) (string, bool) {
	const prefix = "/storefront/cart/items/"
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}
	id := strings.TrimPrefix(path, prefix)
	if id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

// GetCart returns the reconciled cart view with totals.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID := httpx.SessionIDFrom(r)
	items := h.store.Read(r.Context(), sessionID)

	books, ok := loadCatalog(w, r, h.loader)
	if !ok {
		return
	}

	detailed := cart.Reconcile(items, books)
	httpx.JSONSuccess(w, newCartView(detailed, cart.Sum(detailed)), nil)
}

type addItemRequest struct {
	ID    string `json:"id" validate:"required"`
	Title string `json:"title" validate:"required"`
}

// AddItem adds a book to the cart, or bumps its quantity when it is
// already there.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var input addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(input); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	items, err := h.store.AddOrIncrement(r.Context(), httpx.SessionIDFrom(r), input.ID, input.Title)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "CART_WRITE_FAILED", "Could not update the cart", nil)
		return
	}
	httpx.JSONSuccessCreated(w, items)
}

type adjustQuantityRequest struct {
	// The zero delta is rejected: it would be a no-op mutation.
	Delta int `json:"delta" validate:"required"`
}

// AdjustItem applies a quantity delta; a result of zero or less removes
// the line item.
func (h *CartHandler) AdjustItem(w http.ResponseWriter, r *http.Request) {
	id, ok := cartItemID(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	var input adjustQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(input); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	items, err := h.store.AdjustQuantity(r.Context(), httpx.SessionIDFrom(r), id, input.Delta)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "CART_WRITE_FAILED", "Could not update the cart", nil)
		return
	}
	httpx.JSONSuccess(w, items, nil)
}

// RemoveItem deletes a line item outright, whatever its quantity.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := cartItemID(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	items, err := h.store.RemoveItem(r.Context(), httpx.SessionIDFrom(r), id)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "CART_WRITE_FAILED", "Could not update the cart", nil)
		return
	}
	httpx.JSONSuccess(w, items, nil)
}

// ClearCart drops the whole cart.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Clear(r.Context(), httpx.SessionIDFrom(r)); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "CART_WRITE_FAILED", "Could not clear the cart", nil)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

type emailCartRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// EmailCart validates the address and returns a mail-compose URL carrying
// a plain-text summary of the cart. Nothing is sent.
func (h *CartHandler) EmailCart(w http.ResponseWriter, r *http.Request) {
	var input emailCartRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(input); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	sessionID := httpx.SessionIDFrom(r)
	items := h.store.Read(r.Context(), sessionID)

	books, ok := loadCatalog(w, r, h.loader)
	if !ok {
		return
	}

	detailed := cart.Reconcile(items, books)
	totals := cart.Sum(detailed)

	httpx.JSONSuccess(w, map[string]string{
		"mailto_url": cart.ComposeMailto(input.Email, detailed, totals),
		"summary":    cart.SummaryText(detailed, totals),
	}, nil)
}
