// Package bankrepo manages repository layer of banks.
package bankrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/mkbukhari/hisaab-kitaab/internal/domain"
	"github.com/mkbukhari/hisaab-kitaab/pkg/dbpkg"
	"github.com/mkbukhari/hisaab-kitaab/pkg/errorspkg"
)

// RepoPGS facilitates bank repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns bank RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO banks (trader_id, name, code)
VALUES ($1, $2, $3)
RETURNING id, trader_id, name, code, created_at
`

// Create creates the bank and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateBankParams) (domain.Bank, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, arg.TraderID, arg.Name, arg.Code)

	var b domain.Bank

	err := row.Scan(&b.ID, &b.TraderID, &b.Name, &b.Code, &b.CreatedAt)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "banks_trader_id_fkey" {
				return b, domain.ErrTraderNotFound
			}
		}

		return b, errorspkg.ErrInternal
	}

	return b, nil
}

const getQuery = `
SELECT id, trader_id, name, code, created_at
FROM banks
WHERE id = $1
`

// Get returns the bank with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int32) (domain.Bank, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var b domain.Bank

	err := row.Scan(&b.ID, &b.TraderID, &b.Name, &b.Code, &b.CreatedAt)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return b, domain.ErrBankNotFound
		}

		return b, errorspkg.ErrInternal
	}

	return b, nil
}

const listByTraderQuery = `
SELECT id, trader_id, name, code, created_at
FROM banks
WHERE trader_id = $1
ORDER BY name ASC
`

// ListByTrader returns the banks of the given trader ordered by name.
func (r *RepoPGS) ListByTrader(ctx context.Context, traderID int32) ([]domain.Bank, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByTraderQuery, traderID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Bank{}

	for rows.Next() {
		var b domain.Bank
		if err := rows.Scan(&b.ID, &b.TraderID, &b.Name, &b.Code, &b.CreatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, b)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const updateQuery = `
UPDATE banks
SET name = $1, code = $2
WHERE id = $3
RETURNING id, trader_id, name, code, created_at
`

// Update replaces the bank's fields and returns the updated bank.
func (r *RepoPGS) Update(ctx context.Context, id int32, name, code string) (domain.Bank, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery, name, code, id)

	var b domain.Bank

	err := row.Scan(&b.ID, &b.TraderID, &b.Name, &b.Code, &b.CreatedAt)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return b, domain.ErrBankNotFound
		}

		return b, errorspkg.ErrInternal
	}

	return b, nil
}

const deleteQuery = `
DELETE FROM banks
WHERE id = $1
`

// Delete removes the bank with the given id. Ledger entries cascade via
// foreign keys.
func (r *RepoPGS) Delete(ctx context.Context, id int32) error {
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
		return domain.ErrBankNotFound
	}

	return nil
}
