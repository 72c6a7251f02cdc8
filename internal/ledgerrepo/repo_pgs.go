// Package ledgerrepo manages repository layer of bank ledger entries.
package ledgerrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/mkbukhari/hisaab-kitaab/internal/domain"
	"github.com/mkbukhari/hisaab-kitaab/pkg/dbpkg"
	"github.com/mkbukhari/hisaab-kitaab/pkg/errorspkg"
)

// RepoPGS facilitates ledger entry repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns ledger entry RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO bank_ledger_entries (
	bank_id,
	date,
	reference_type,
	amount_added,
	amount_withdrawn,
	reference_person,
	remaining_amount
) VALUES (
	$1, $2, $3, $4, $5, $6, $7
) RETURNING id, bank_id, date, reference_type, amount_added, amount_withdrawn, reference_person, remaining_amount, created_at
`

// Create creates the ledger entry and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateLedgerEntryParams) (domain.LedgerEntry, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.BankID,
		arg.Date,
		arg.ReferenceType,
		arg.AmountAdded,
		arg.AmountWithdrawn,
		arg.ReferencePerson,
		arg.RemainingAmount,
	)

	e, err := scanEntry(row)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "bank_ledger_entries_bank_id_fkey" {
				return e, domain.ErrBankNotFound
			}
		}

		return e, errorspkg.ErrInternal
	}

	return e, nil
}

const getQuery = `
SELECT id, bank_id, date, reference_type, amount_added, amount_withdrawn, reference_person, remaining_amount, created_at
FROM bank_ledger_entries
WHERE id = $1
`

// Get returns the ledger entry with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.LedgerEntry, error) {
	l := zerolog.Ctx(ctx)

	e, err := scanEntry(r.db.QueryRowContext(ctx, getQuery, id))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return e, domain.ErrLedgerEntryNotFound
		}

		return e, errorspkg.ErrInternal
	}

	return e, nil
}

const listByBankQuery = `
SELECT id, bank_id, date, reference_type, amount_added, amount_withdrawn, reference_person, remaining_amount, created_at
FROM bank_ledger_entries
WHERE bank_id = $1
ORDER BY date ASC, created_at ASC
`

// ListByBank returns the ledger entries of the given bank in chronological
// order.
func (r *RepoPGS) ListByBank(ctx context.Context, bankID int32) ([]domain.LedgerEntry, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByBankQuery, bankID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.LedgerEntry{}

	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(
			&e.ID,
			&e.BankID,
			&e.Date,
			&e.ReferenceType,
			&e.AmountAdded,
			&e.AmountWithdrawn,
			&e.ReferencePerson,
			&e.RemainingAmount,
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
UPDATE bank_ledger_entries
SET date = $1, reference_type = $2, amount_added = $3, amount_withdrawn = $4, reference_person = $5, remaining_amount = $6
WHERE id = $7
RETURNING id, bank_id, date, reference_type, amount_added, amount_withdrawn, reference_person, remaining_amount, created_at
`

// Update replaces the entry's fields and returns the updated entry.
func (r *RepoPGS) Update(ctx context.Context, id int64, arg domain.CreateLedgerEntryParams) (domain.LedgerEntry, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery,
		arg.Date,
		arg.ReferenceType,
		arg.AmountAdded,
		arg.AmountWithdrawn,
		arg.ReferencePerson,
		arg.RemainingAmount,
		id,
	)

	e, err := scanEntry(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return e, domain.ErrLedgerEntryNotFound
		}

		return e, errorspkg.ErrInternal
	}

	return e, nil
}

const deleteQuery = `
DELETE FROM bank_ledger_entries
WHERE id = $1
`

// Delete removes the ledger entry with the given id.
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
		return domain.ErrLedgerEntryNotFound
	}

	return nil
}

func scanEntry(row *sql.Row) (domain.LedgerEntry, error) {
	var e domain.LedgerEntry

	err := row.Scan(
		&e.ID,
		&e.BankID,
		&e.Date,
		&e.ReferenceType,
		&e.AmountAdded,
		&e.AmountWithdrawn,
		&e.ReferencePerson,
		&e.RemainingAmount,
		&e.CreatedAt,
	)

	return e, err
}
