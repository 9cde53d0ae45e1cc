package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/candidate-registry/internal/model"
)

// PartyRepo encapsulates database queries related to parties. Parties are
// reference data: this repository only reads.
type PartyRepo struct {
	db *sql.DB // db is the underlying database handle
}

// NewPartyRepo constructs a PartyRepo with the provided DB handle.
func NewPartyRepo(db *sql.DB) *PartyRepo {
	return &PartyRepo{db: db}
}

// List returns all parties ordered by id. The slice is never nil.
func (r *PartyRepo) List(ctx context.Context) ([]model.Party, error) {
	const q = `SELECT id, name FROM parties ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Party, 0)
	for rows.Next() {
		var p model.Party
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByID fetches one party by id, returning (nil, nil) when no row matches.
func (r *PartyRepo) GetByID(ctx context.Context, id string) (*model.Party, error) {
	const q = `SELECT id, name FROM parties WHERE id = ?`
	var p model.Party
	err := r.db.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
