package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGSlot persists cart slots in the cart_slots table, one row per key.
type PGSlot struct {
	db *pgxpool.Pool
}

func NewPGSlot(db *pgxpool.Pool) *PGSlot {
	return &PGSlot{db: db}
}

func (p *PGSlot) Get(ctx context.Context, key string) ([]byte, error) {
	query := `
	SELECT value
	FROM cart_slots
	WHERE key = $1
	`
	var value string
	err := p.db.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (p *PGSlot) Set(ctx context.Context, key string, value []byte) error {
	query := `
	INSERT INTO cart_slots (key, value, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (key) DO UPDATE
	SET value = EXCLUDED.value, updated_at = now()
	`
	_, err := p.db.Exec(ctx, query, key, string(value))
	return err
}

func (p *PGSlot) Delete(ctx context.Context, key string) error {
	_, err := p.db.Exec(ctx, `DELETE FROM cart_slots WHERE key = $1`, key)
	return err
}
