// Package ledgerservice manages business logic layer of bank ledger entries.
package ledgerservice

import (
	"context"

	"github.com/mkbukhari/hisaab-kitaab/internal/calc"
	"github.com/mkbukhari/hisaab-kitaab/internal/domain"
)

// Repo provides data access layer interface needed by ledger service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package ledgerservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateLedgerEntryParams) (domain.LedgerEntry, error)
	Get(ctx context.Context, id int64) (domain.LedgerEntry, error)
	ListByBank(ctx context.Context, bankID int32) ([]domain.LedgerEntry, error)
	Update(ctx context.Context, id int64, arg domain.CreateLedgerEntryParams) (domain.LedgerEntry, error)
	Delete(ctx context.Context, id int64) error
}

// BankRepo provides the bank lookup needed to scope ledger operations.
type BankRepo interface {
	Get(ctx context.Context, id int32) (domain.Bank, error)
}

// Service facilitates ledger service layer logic.
type Service struct {
	repo  Repo
	banks BankRepo
}

// New returns ledger service struct to manage ledger business logic.
func New(r Repo, br BankRepo) *Service {
	return &Service{
		repo:  r,
		banks: br,
	}
}

func (s *Service) verifyBank(ctx context.Context, traderID, bankID int32) error {
	bank, err := s.banks.Get(ctx, bankID)
	if err != nil {
		return err
	}

	if bank.TraderID != traderID {
		return domain.ErrBankNotFound
	}

	return nil
}

func attachRunningBalance(e domain.LedgerEntry, runningBalance float64) domain.LedgerEntry {
	e.RunningBalance = runningBalance
	return e
}

// List returns the bank's entries in chronological order, each annotated
// with its running balance, together with the scope totals.
func (s *Service) List(ctx context.Context, traderID, bankID int32) ([]domain.LedgerEntry, domain.LedgerSummary, error) {
	var summary domain.LedgerSummary

	if err := s.verifyBank(ctx, traderID, bankID); err != nil {
		return nil, summary, err
	}

	entries, err := s.repo.ListByBank(ctx, bankID)
	if err != nil {
		return nil, summary, err
	}

	annotated := calc.WithRunningBalance(entries, attachRunningBalance)

	for _, e := range entries {
		summary.TotalCredit += e.AmountAdded
		summary.TotalDebit += e.AmountWithdrawn
	}

	summary.RemainingBalance = summary.TotalCredit - summary.TotalDebit

	return annotated, summary, nil
}

// Get returns the entry with the given id scoped to the bank and trader.
func (s *Service) Get(ctx context.Context, traderID, bankID int32, entryID int64) (domain.LedgerEntry, error) {
	if err := s.verifyBank(ctx, traderID, bankID); err != nil {
		return domain.LedgerEntry{}, err
	}

	entry, err := s.repo.Get(ctx, entryID)
	if err != nil {
		return entry, err
	}

	if entry.BankID != bankID {
		return domain.LedgerEntry{}, domain.ErrLedgerEntryNotFound
	}

	return entry, nil
}

// CreateParams is the caller-supplied part of a new ledger entry.
type CreateParams struct {
	Date            string
	ReferenceType   string
	AmountAdded     float64
	AmountWithdrawn float64
	ReferencePerson string
}

// Create validates and persists a new entry, recomputing its remaining
// amount server-side, and returns it annotated with its running balance.
func (s *Service) Create(ctx context.Context, traderID, bankID int32, arg CreateParams) (domain.LedgerEntry, error) {
	if err := s.verifyBank(ctx, traderID, bankID); err != nil {
		return domain.LedgerEntry{}, err
	}

	if arg.AmountAdded == 0 && arg.AmountWithdrawn == 0 {
		return domain.LedgerEntry{}, domain.ErrNoAmount
	}

	entry, err := s.repo.Create(ctx, domain.CreateLedgerEntryParams{
		BankID:          bankID,
		Date:            arg.Date,
		ReferenceType:   arg.ReferenceType,
		AmountAdded:     arg.AmountAdded,
		AmountWithdrawn: arg.AmountWithdrawn,
		ReferencePerson: arg.ReferencePerson,
		RemainingAmount: calc.RemainingAmount(arg.AmountAdded, arg.AmountWithdrawn),
	})
	if err != nil {
		return entry, err
	}

	return s.annotateOne(ctx, bankID, entry)
}

// Update merges the given fields into the stored entry, recomputes the
// remaining amount and returns the updated entry annotated with its running
// balance. Nil fields retain their stored values.
func (s *Service) Update(ctx context.Context, traderID, bankID int32, entryID int64, arg domain.UpdateLedgerEntryParams) (domain.LedgerEntry, error) {
	existing, err := s.Get(ctx, traderID, bankID, entryID)
	if err != nil {
		return domain.LedgerEntry{}, err
	}

	merged := domain.CreateLedgerEntryParams{
		BankID:          bankID,
		Date:            existing.Date,
		ReferenceType:   existing.ReferenceType,
		AmountAdded:     existing.AmountAdded,
		AmountWithdrawn: existing.AmountWithdrawn,
		ReferencePerson: existing.ReferencePerson,
	}

	if arg.Date != nil {
		merged.Date = *arg.Date
	}

	if arg.ReferenceType != nil {
		merged.ReferenceType = *arg.ReferenceType
	}

	if arg.AmountAdded != nil {
		merged.AmountAdded = *arg.AmountAdded
	}

	if arg.AmountWithdrawn != nil {
		merged.AmountWithdrawn = *arg.AmountWithdrawn
	}

	if arg.ReferencePerson != nil {
		merged.ReferencePerson = *arg.ReferencePerson
	}

	if merged.AmountAdded == 0 && merged.AmountWithdrawn == 0 {
		return domain.LedgerEntry{}, domain.ErrNoAmount
	}

	merged.RemainingAmount = calc.RemainingAmount(merged.AmountAdded, merged.AmountWithdrawn)

	entry, err := s.repo.Update(ctx, entryID, merged)
	if err != nil {
		return entry, err
	}

	return s.annotateOne(ctx, bankID, entry)
}

// Delete removes the entry with the given id scoped to the bank and trader.
func (s *Service) Delete(ctx context.Context, traderID, bankID int32, entryID int64) error {
	if _, err := s.Get(ctx, traderID, bankID, entryID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, entryID)
}

// annotateOne recomputes the bank's running balances and returns the given
// entry with its cumulative balance attached.
func (s *Service) annotateOne(ctx context.Context, bankID int32, entry domain.LedgerEntry) (domain.LedgerEntry, error) {
	entries, err := s.repo.ListByBank(ctx, bankID)
	if err != nil {
		return entry, err
	}

	for _, e := range calc.WithRunningBalance(entries, attachRunningBalance) {
		if e.ID == entry.ID {
			return e, nil
		}
	}

	return entry, nil
}
