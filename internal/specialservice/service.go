// Package specialservice manages business logic layer of special entries.
package specialservice

import (
	"context"

	"github.com/mkbukhari/hisaab-kitaab/internal/calc"
	"github.com/mkbukhari/hisaab-kitaab/internal/domain"
)

// Repo provides data access layer interface needed by special service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package specialservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateSpecialEntryParams) (domain.SpecialEntry, error)
	Get(ctx context.Context, id int64) (domain.SpecialEntry, error)
	List(ctx context.Context) ([]domain.SpecialEntry, error)
	Update(ctx context.Context, id int64, arg domain.CreateSpecialEntryParams) (domain.SpecialEntry, error)
	Delete(ctx context.Context, id int64) error
}

// Service facilitates special service layer logic.
type Service struct {
	repo Repo
}

// New returns special service struct to manage special business logic.
func New(r Repo) *Service {
	return &Service{repo: r}
}

func attachRunningBalance(e domain.SpecialEntry, runningBalance float64) domain.SpecialEntry {
	e.RunningBalance = runningBalance
	return e
}

// List returns all special entries in chronological order, each annotated
// with its running balance.
func (s *Service) List(ctx context.Context) ([]domain.SpecialEntry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return calc.WithRunningBalance(entries, attachRunningBalance), nil
}

// Get returns the special entry with the given id.
func (s *Service) Get(ctx context.Context, id int64) (domain.SpecialEntry, error) {
	return s.repo.Get(ctx, id)
}

// CreateParams is the caller-supplied part of a new special entry. The
// balance is always derived server-side.
type CreateParams struct {
	UserName        string
	Date            string
	BalanceType     string
	NameRupees      float64
	SubmittedRupees float64
	ReferencePerson string
}

// Create persists a new special entry with its derived balance.
func (s *Service) Create(ctx context.Context, arg CreateParams) (domain.SpecialEntry, error) {
	return s.repo.Create(ctx, domain.CreateSpecialEntryParams{
		UserName:        arg.UserName,
		Date:            arg.Date,
		BalanceType:     arg.BalanceType,
		NameRupees:      arg.NameRupees,
		SubmittedRupees: arg.SubmittedRupees,
		ReferencePerson: arg.ReferencePerson,
		Balance:         calc.SpecialBalance(arg.NameRupees, arg.SubmittedRupees),
	})
}

// Update merges the given fields into the stored entry and rederives the
// balance. Nil fields retain their stored values.
func (s *Service) Update(ctx context.Context, id int64, arg domain.UpdateSpecialEntryParams) (domain.SpecialEntry, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.SpecialEntry{}, err
	}

	merged := domain.CreateSpecialEntryParams{
		UserName:        existing.UserName,
		Date:            existing.Date,
		BalanceType:     existing.BalanceType,
		NameRupees:      existing.NameRupees,
		SubmittedRupees: existing.SubmittedRupees,
		ReferencePerson: existing.ReferencePerson,
	}

	if arg.UserName != nil {
		merged.UserName = *arg.UserName
	}

	if arg.Date != nil {
		merged.Date = *arg.Date
	}

	if arg.BalanceType != nil {
		merged.BalanceType = *arg.BalanceType
	}

	if arg.NameRupees != nil {
		merged.NameRupees = *arg.NameRupees
	}

	if arg.SubmittedRupees != nil {
		merged.SubmittedRupees = *arg.SubmittedRupees
	}

	if arg.ReferencePerson != nil {
		merged.ReferencePerson = *arg.ReferencePerson
	}

	merged.Balance = calc.SpecialBalance(merged.NameRupees, merged.SubmittedRupees)

	return s.repo.Update(ctx, id, merged)
}

// Delete removes the special entry with the given id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
