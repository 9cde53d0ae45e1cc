// Package repository contains data access logic separated from HTTP handlers.
// This file defines repository methods for candidate rows. Every read joins
// the parties table so callers always receive the party name alongside the
// candidate, or nil when the candidate has no matching party.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/candidate-registry/internal/model"
)

// CandidateRepo encapsulates all database queries related to candidates.
// It depends on a sql.DB connection which should be configured elsewhere.
type CandidateRepo struct {
	db *sql.DB // db is the underlying database handle
}

// NewCandidateRepo constructs a CandidateRepo with the provided DB handle.
// This function allows dependency injection of the database in tests and
// at startup.
func NewCandidateRepo(db *sql.DB) *CandidateRepo {
	return &CandidateRepo{db: db}
}

const candidateColumns = `candidates.id, candidates.first_name, candidates.last_name,
	candidates.industry_connected, candidates.party_id, parties.name AS party_name`

// ListWithParty returns every candidate joined against its party. The
// result is never nil: an empty table yields an empty, non-nil slice so
// the JSON layer serializes an array rather than null.
func (r *CandidateRepo) ListWithParty(ctx context.Context) ([]model.Candidate, error) {
	const q = `SELECT ` + candidateColumns + `
		FROM candidates
		LEFT JOIN parties ON candidates.party_id = parties.id
		ORDER BY candidates.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Candidate, 0)
	for rows.Next() {
		var c model.Candidate
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.IndustryConnected, &c.PartyID, &c.PartyName); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetWithParty fetches a single candidate by id with the same join as
// ListWithParty. A missing id is not an error: the method returns
// (nil, nil) and the handler answers 200 with no data.
func (r *CandidateRepo) GetWithParty(ctx context.Context, id string) (*model.Candidate, error) {
	const q = `SELECT ` + candidateColumns + `
		FROM candidates
		LEFT JOIN parties ON candidates.party_id = parties.id
		WHERE candidates.id = ?`
	var c model.Candidate
	err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.FirstName, &c.LastName, &c.IndustryConnected, &c.PartyID, &c.PartyName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new candidate. On success the candidate's ID field is
// populated with the database-assigned value.
func (r *CandidateRepo) Create(ctx context.Context, c *model.Candidate) error {
	const q = `INSERT INTO candidates (first_name, last_name, industry_connected, party_id)
		VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, c.FirstName, c.LastName, c.IndustryConnected, c.PartyID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

// DeleteByID removes a candidate by id and reports the number of rows
// affected. Deleting an absent id is not an error; it reports zero.
func (r *CandidateRepo) DeleteByID(ctx context.Context, id string) (int64, error) {
	const q = `DELETE FROM candidates WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
