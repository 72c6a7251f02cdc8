// Package traderrepo manages repository layer of traders.
package traderrepo

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/mkbukhari/hisaab-kitaab/internal/domain"
	"github.com/mkbukhari/hisaab-kitaab/pkg/dbpkg"
	"github.com/mkbukhari/hisaab-kitaab/pkg/errorspkg"
)

// RepoPGS facilitates trader repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns trader RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO traders (name, short_name, color)
VALUES ($1, $2, $3)
RETURNING id, name, short_name, color, created_at
`

// Create creates the trader and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateTraderParams) (domain.Trader, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, arg.Name, arg.ShortName, arg.Color)

	var t domain.Trader

	err := row.Scan(&t.ID, &t.Name, &t.ShortName, &t.Color, &t.CreatedAt)
	if err != nil {
		l.Error().Err(err).Send()
		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const getQuery = `
SELECT id, name, short_name, color, created_at
FROM traders
WHERE id = $1
`

// Get returns the trader with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int32) (domain.Trader, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var t domain.Trader

	err := row.Scan(&t.ID, &t.Name, &t.ShortName, &t.Color, &t.CreatedAt)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return t, domain.ErrTraderNotFound
		}

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const listQuery = `
SELECT id, name, short_name, color, created_at
FROM traders
ORDER BY name ASC
`

// List returns all traders ordered by name.
func (r *RepoPGS) List(ctx context.Context) ([]domain.Trader, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Trader{}

	for rows.Next() {
		var t domain.Trader
		if err := rows.Scan(&t.ID, &t.Name, &t.ShortName, &t.Color, &t.CreatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, t)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const updateQuery = `
UPDATE traders
SET name = $1, short_name = $2, color = $3
WHERE id = $4
RETURNING id, name, short_name, color, created_at
`

// Update replaces the trader's fields and returns the updated trader.
func (r *RepoPGS) Update(ctx context.Context, id int32, name, shortName, color string) (domain.Trader, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery, name, shortName, color, id)

	var t domain.Trader

	err := row.Scan(&t.ID, &t.Name, &t.ShortName, &t.Color, &t.CreatedAt)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return t, domain.ErrTraderNotFound
		}

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const deleteQuery = `
DELETE FROM traders
WHERE id = $1
`

// Delete removes the trader with the given id. Banks and their ledger
// entries cascade via foreign keys.
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
		return domain.ErrTraderNotFound
	}

	return nil
}
