// Package specialrepo manages repository layer of special entries.
package specialrepo

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/mkbukhari/hisaab-kitaab/internal/domain"
	"github.com/mkbukhari/hisaab-kitaab/pkg/dbpkg"
	"github.com/mkbukhari/hisaab-kitaab/pkg/errorspkg"
)

// RepoPGS facilitates special entry repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns special entry RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO special_hisaab_entries (
	user_name,
	date,
	balance_type,
	name_rupees,
	submitted_rupees,
	reference_person,
	balance
) VALUES (
	$1, $2, $3, $4, $5, $6, $7
) RETURNING id, user_name, date, balance_type, name_rupees, submitted_rupees, reference_person, balance, created_at
`

// Create creates the special entry and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateSpecialEntryParams) (domain.SpecialEntry, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.UserName,
		arg.Date,
		arg.BalanceType,
		arg.NameRupees,
		arg.SubmittedRupees,
		arg.ReferencePerson,
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
SELECT id, user_name, date, balance_type, name_rupees, submitted_rupees, reference_person, balance, created_at
FROM special_hisaab_entries
WHERE id = $1
`

// Get returns the special entry with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.SpecialEntry, error) {
	l := zerolog.Ctx(ctx)

	e, err := scanEntry(r.db.QueryRowContext(ctx, getQuery, id))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return e, domain.ErrSpecialEntryNotFound
		}

		return e, errorspkg.ErrInternal
	}

	return e, nil
}

const listQuery = `
SELECT id, user_name, date, balance_type, name_rupees, submitted_rupees, reference_person, balance, created_at
FROM special_hisaab_entries
ORDER BY date ASC, created_at ASC
`

// List returns all special entries in chronological order.
func (r *RepoPGS) List(ctx context.Context) ([]domain.SpecialEntry, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.SpecialEntry{}

	for rows.Next() {
		var e domain.SpecialEntry
		if err := rows.Scan(
			&e.ID,
			&e.UserName,
			&e.Date,
			&e.BalanceType,
			&e.NameRupees,
			&e.SubmittedRupees,
			&e.ReferencePerson,
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
UPDATE special_hisaab_entries
SET user_name = $1, date = $2, balance_type = $3, name_rupees = $4, submitted_rupees = $5, reference_person = $6, balance = $7
WHERE id = $8
RETURNING id, user_name, date, balance_type, name_rupees, submitted_rupees, reference_person, balance, created_at
`

// Update replaces the entry's fields and returns the updated entry.
func (r *RepoPGS) Update(ctx context.Context, id int64, arg domain.CreateSpecialEntryParams) (domain.SpecialEntry, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery,
		arg.UserName,
		arg.Date,
		arg.BalanceType,
		arg.NameRupees,
		arg.SubmittedRupees,
		arg.ReferencePerson,
		arg.Balance,
		id,
	)

	e, err := scanEntry(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return e, domain.ErrSpecialEntryNotFound
		}

		return e, errorspkg.ErrInternal
	}

	return e, nil
}

const deleteQuery = `
DELETE FROM special_hisaab_entries
WHERE id = $1
`

// Delete removes the special entry with the given id.
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
		return domain.ErrSpecialEntryNotFound
	}

	return nil
}

func scanEntry(row *sql.Row) (domain.SpecialEntry, error) {
	var e domain.SpecialEntry

	err := row.Scan(
		&e.ID,
		&e.UserName,
		&e.Date,
		&e.BalanceType,
		&e.NameRupees,
		&e.SubmittedRupees,
		&e.ReferencePerson,
		&e.Balance,
		&e.CreatedAt,
	)

	return e, err
}
