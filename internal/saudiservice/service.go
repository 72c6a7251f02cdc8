// Package saudiservice manages business logic layer of saudi entries.
package saudiservice

import (
	"context"

	"github.com/mkbukhari/hisaab-kitaab/internal/calc"
	"github.com/mkbukhari/hisaab-kitaab/internal/domain"
)

// Repo provides data access layer interface needed by saudi service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package saudiservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateSaudiEntryParams) (domain.SaudiEntry, error)
	Get(ctx context.Context, id int64) (domain.SaudiEntry, error)
	List(ctx context.Context) ([]domain.SaudiEntry, error)
	Update(ctx context.Context, id int64, arg domain.CreateSaudiEntryParams) (domain.SaudiEntry, error)
	Delete(ctx context.Context, id int64) error
}

// Service facilitates saudi service layer logic.
type Service struct {
	repo Repo
}

// New returns saudi service struct to manage saudi business logic.
func New(r Repo) *Service {
	return &Service{repo: r}
}

func attachRunningBalance(e domain.SaudiEntry, runningBalance float64) domain.SaudiEntry {
	e.RunningBalance = runningBalance
	return e
}

// List returns all saudi entries in chronological order, each annotated
// with its running balance.
func (s *Service) List(ctx context.Context) ([]domain.SaudiEntry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return calc.WithRunningBalance(entries, attachRunningBalance), nil
}

// Get returns the saudi entry with the given id.
func (s *Service) Get(ctx context.Context, id int64) (domain.SaudiEntry, error) {
	return s.repo.Get(ctx, id)
}

// CreateParams is the caller-supplied part of a new saudi entry. The riyal
// amount and balance are always derived server-side.
type CreateParams struct {
	Date         string
	Time         string
	RefNo        string
	PkrAmount    float64
	RiyalRate    float64
	SubmittedSar float64
	Reference2   string
}

// Create persists a new saudi entry with its derived riyal amount and
// balance.
func (s *Service) Create(ctx context.Context, arg CreateParams) (domain.SaudiEntry, error) {
	riyalAmount := calc.RiyalAmount(arg.PkrAmount, arg.RiyalRate)

	return s.repo.Create(ctx, domain.CreateSaudiEntryParams{
		Date:         arg.Date,
		Time:         arg.Time,
		RefNo:        arg.RefNo,
		PkrAmount:    arg.PkrAmount,
		RiyalRate:    arg.RiyalRate,
		RiyalAmount:  riyalAmount,
		SubmittedSar: arg.SubmittedSar,
		Reference2:   arg.Reference2,
		Balance:      calc.SaudiBalance(riyalAmount, arg.SubmittedSar),
	})
}

// Update merges the given fields into the stored entry and rederives the
// riyal amount and balance. Nil fields retain their stored values.
func (s *Service) Update(ctx context.Context, id int64, arg domain.UpdateSaudiEntryParams) (domain.SaudiEntry, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.SaudiEntry{}, err
	}

	merged := domain.CreateSaudiEntryParams{
		Date:         existing.Date,
		Time:         existing.Time,
		RefNo:        existing.RefNo,
		PkrAmount:    existing.PkrAmount,
		RiyalRate:    existing.RiyalRate,
		SubmittedSar: existing.SubmittedSar,
		Reference2:   existing.Reference2,
	}

	if arg.Date != nil {
		merged.Date = *arg.Date
	}

	if arg.Time != nil {
		merged.Time = *arg.Time
	}

	if arg.RefNo != nil {
		merged.RefNo = *arg.RefNo
	}

	if arg.PkrAmount != nil {
		merged.PkrAmount = *arg.PkrAmount
	}

	if arg.RiyalRate != nil {
		merged.RiyalRate = *arg.RiyalRate
	}

	if arg.SubmittedSar != nil {
		merged.SubmittedSar = *arg.SubmittedSar
	}

	if arg.Reference2 != nil {
		merged.Reference2 = *arg.Reference2
	}

	merged.RiyalAmount = calc.RiyalAmount(merged.PkrAmount, merged.RiyalRate)
	merged.Balance = calc.SaudiBalance(merged.RiyalAmount, merged.SubmittedSar)

	return s.repo.Update(ctx, id, merged)
}

// Delete removes the saudi entry with the given id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
