// Package saudirepo manages repository layer of saudi entries.
package saudirepo

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/mkbukhari/hisaab-kitaab/internal/domain"
	"github.com/mkbukhari/hisaab-kitaab/pkg/dbpkg"
	"github.com/mkbukhari/hisaab-kitaab/pkg/errorspkg"
)

// RepoPGS facilitates saudi entry repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns saudi entry RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO saudi_hisaab_entries (
	date,
	time,
	ref_no,
	pkr_amount,
	riyal_rate,
	riyal_amount,
	submitted_sar,
	reference2,
	balance
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9
) RETURNING id, date, time, ref_no, pkr_amount, riyal_rate, riyal_amount, submitted_sar, reference2, balance, created_at
`

// Create creates the saudi entry and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateSaudiEntryParams) (domain.SaudiEntry, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.Date,
		arg.Time,
		arg.RefNo,
		arg.PkrAmount,
		arg.RiyalRate,
		arg.RiyalAmount,
		arg.SubmittedSar,
		arg.Reference2,
		arg.Balance,
	)

	e, err := scanEntry(row)
	if err != nil {
		l.Error().Err(err).Send()
		return e, errorspkg.ErrInternal
	}

	return e, nil
}

const getQuery = `
SELECT id, date, time, ref_no, pkr_amount, riyal_rate, riyal_amount, submitted_sar, reference2, balance, created_at
FROM saudi_hisaab_entries
WHERE id = $1
`

// Get returns the saudi entry with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.SaudiEntry, error) {
	l := zerolog.Ctx(ctx)

	e, err := scanEntry(r.db.QueryRowContext(ctx, getQuery, id))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return e, domain.ErrSaudiEntryNotFound
		}

		return e, errorspkg.ErrInternal
	}

	return e, nil
}

const listQuery = `
SELECT id, date, time, ref_no, pkr_amount, riyal_rate, riyal_amount, submitted_sar, reference2, balance, created_at
FROM saudi_hisaab_entries
ORDER BY date ASC, time ASC, created_at ASC
`

// List returns all saudi entries in chronological order.
func (r *RepoPGS) List(ctx context.Context) ([]domain.SaudiEntry, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.SaudiEntry{}

	for rows.Next() {
		var e domain.SaudiEntry
		if err := rows.Scan(
			&e.ID,
			&e.Date,
			&e.Time,
			&e.RefNo,
			&e.PkrAmount,
			&e.RiyalRate,
			&e.RiyalAmount,
			&e.SubmittedSar,
			&e.Reference2,
			&e.Balance,
			&e.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, e)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const updateQuery = `
UPDATE saudi_hisaab_entries
SET date = $1, time = $2, ref_no = $3, pkr_amount = $4, riyal_rate = $5, riyal_amount = $6, submitted_sar = $7, reference2 = $8, balance = $9
WHERE id = $10
RETURNING id, date, time, ref_no, pkr_amount, riyal_rate, riyal_amount, submitted_sar, reference2, balance, created_at
`

// Update replaces the entry's fields and returns the updated entry.
func (r *RepoPGS) Update(ctx context.Context, id int64, arg domain.CreateSaudiEntryParams) (domain.SaudiEntry, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery,
		arg.Date,
		arg.Time,
		arg.RefNo,
		arg.PkrAmount,
		arg.RiyalRate,
		arg.RiyalAmount,
		arg.SubmittedSar,
		arg.Reference2,
		arg.Balance,
		id,
	)

	e, err := scanEntry(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return e, domain.ErrSaudiEntryNotFound
		}

		return e, errorspkg.ErrInternal
	}

	return e, nil
}

const deleteQuery = `
DELETE FROM saudi_hisaab_entries
WHERE id = $1
`

// Delete removes the saudi entry with the given id.
func (r *RepoPGS) Delete(ctx context.Context, id int64) error {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, deleteQuery, id)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	affected, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if affected == 0 {
		return domain.ErrSaudiEntryNotFound
	}

	return nil
}

func scanEntry(row *sql.Row) (domain.SaudiEntry, error) {
	var e domain.SaudiEntry

	err := row.Scan(
		&e.ID,
		&e.Date,
		&e.Time,
		&e.RefNo,
		&e.PkrAmount,
		&e.RiyalRate,
		&e.RiyalAmount,
		&e.SubmittedSar,
		&e.Reference2,
		&e.Balance,
		&e.CreatedAt,
	)

	return e, err
}
