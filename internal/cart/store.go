package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"bookshoppe/internal/entity"
	"bookshoppe/internal/store"

	log "github.com/sirupsen/logrus"
)

// slotKeyPrefix matches the storage key the cart has always lived under,
// namespaced per session.
const slotKeyPrefix = "bookShoppeCart:"

// Store owns all cart mutations. Every operation is a synchronous
// read-modify-write of the session's slot; concurrent writers from the
// same session race with last-writer-wins, which is an accepted
// limitation rather than a defect.
type Store struct {
	slot store.CartSlot
}

func NewStore(slot store.CartSlot) *Store {
	return &Store{slot: slot}
}

func slotKey(sessionID string) string {
	return slotKeyPrefix + sessionID
}

// Read returns the persisted cart. It is fail-soft: an absent slot yields
// an empty cart, and an unreadable or unparsable slot is logged and
// treated as empty rather than surfaced to the caller.
func (s *Store) Read(ctx context.Context, sessionID string) []entity.CartLineItem {
	data, err := s.slot.Get(ctx, slotKey(sessionID))
	if errors.Is(err, store.ErrSlotEmpty) {
		return nil
	}
	if err != nil {
		log.WithError(err).WithField("session_id", sessionID).Warn("reading cart slot failed, treating cart as empty")
		return nil
	}

	var items []entity.CartLineItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.WithError(err).WithField("session_id", sessionID).Warn("cart slot holds invalid JSON, treating cart as empty")
		return nil
	}
	return items
}

// Write serializes and persists the full line-item sequence, replacing any
// prior value.
func (s *Store) Write(ctx context.Context, sessionID string, items []entity.CartLineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := s.slot.Set(ctx, slotKey(sessionID), data); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}

// AddOrIncrement bumps the quantity of an existing line item, or appends a
// new one with quantity 1. The title is denormalized into the line item at
// add time.
func (s *Store) AddOrIncrement(ctx context.Context, sessionID, id, title string) ([]entity.CartLineItem, error) {
	items := s.Read(ctx, sessionID)

	found := false
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, entity.CartLineItem{ID: id, Title: title, Quantity: 1})
	}

	if err := s.Write(ctx, sessionID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// RemoveItem deletes the line item with the given id, if present.
func (s *Store) RemoveItem(ctx context.Context, sessionID, id string) ([]entity.CartLineItem, error) {
	items := s.Read(ctx, sessionID)

	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}

	if err := s.Write(ctx, sessionID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// AdjustQuantity applies a delta to a line item's quantity. A result of
// zero or less removes the item entirely; a quantity-1 item decremented
// once disappears from the cart.
func (s *Store) AdjustQuantity(ctx context.Context, sessionID, id string, delta int) ([]entity.CartLineItem, error) {
	items := s.Read(ctx, sessionID)

	kept := items[:0]
	for _, item := range items {
		if item.ID == id {
			item.Quantity += delta
			if item.Quantity <= 0 {
				continue
			}
		}
		kept = append(kept, item)
	}

	if err := s.Write(ctx, sessionID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Clear drops the session's cart slot entirely.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	return s.slot.Delete(ctx, slotKey(sessionID))
}
