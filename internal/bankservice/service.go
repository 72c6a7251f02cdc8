// Package bankservice manages business logic layer of banks.
package bankservice

import (
	"context"

	"github.com/mkbukhari/hisaab-kitaab/internal/calc"
	"github.com/mkbukhari/hisaab-kitaab/internal/domain"
)

// Repo provides data access layer interface needed by bank service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package bankservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateBankParams) (domain.Bank, error)
	Get(ctx context.Context, id int32) (domain.Bank, error)
	ListByTrader(ctx context.Context, traderID int32) ([]domain.Bank, error)
	Update(ctx context.Context, id int32, name, code string) (domain.Bank, error)
	Delete(ctx context.Context, id int32) error
}

// EntryRepo provides the ledger entry listing needed to derive bank balances.
type EntryRepo interface {
	ListByBank(ctx context.Context, bankID int32) ([]domain.LedgerEntry, error)
}

// TraderRepo provides the trader lookup needed to scope bank operations.
type TraderRepo interface {
	Get(ctx context.Context, id int32) (domain.Trader, error)
}

// Service facilitates bank service layer logic.
type Service struct {
	repo    Repo
	entries EntryRepo
	traders TraderRepo
}

// New returns bank service struct to manage bank business logic.
func New(r Repo, er EntryRepo, tr TraderRepo) *Service {
	return &Service{
		repo:    r,
		entries: er,
		traders: tr,
	}
}

// Create creates a bank under the given trader.
func (s *Service) Create(ctx context.Context, arg domain.CreateBankParams) (domain.Bank, error) {
	return s.repo.Create(ctx, arg)
}

// Get returns the bank with its entries and derived total balance, scoped
// to the given trader.
func (s *Service) Get(ctx context.Context, traderID, bankID int32) (domain.Bank, error) {
	bank, err := s.repo.Get(ctx, bankID)
	if err != nil {
		return bank, err
	}

	if bank.TraderID != traderID {
		return domain.Bank{}, domain.ErrBankNotFound
	}

	return s.withEntries(ctx, bank)
}

// ListWithBalance returns the trader's banks, each with its entries and
// derived total balance.
func (s *Service) ListWithBalance(ctx context.Context, traderID int32) ([]domain.Bank, error) {
	if _, err := s.traders.Get(ctx, traderID); err != nil {
		return nil, err
	}

	banks, err := s.repo.ListByTrader(ctx, traderID)
	if err != nil {
		return nil, err
	}

	for i, bank := range banks {
		banks[i], err = s.withEntries(ctx, bank)
		if err != nil {
			return nil, err
		}
	}

	return banks, nil
}

// Update merges the given fields into the stored bank; nil fields retain
// their stored values.
func (s *Service) Update(ctx context.Context, traderID, bankID int32, arg domain.UpdateBankParams) (domain.Bank, error) {
	bank, err := s.repo.Get(ctx, bankID)
	if err != nil {
		return bank, err
	}

	if bank.TraderID != traderID {
		return domain.Bank{}, domain.ErrBankNotFound
	}

	name, code := bank.Name, bank.Code

	if arg.Name != nil {
		name = *arg.Name
	}

	if arg.Code != nil {
		code = *arg.Code
	}

	updated, err := s.repo.Update(ctx, bankID, name, code)
	if err != nil {
		return updated, err
	}

	return s.withEntries(ctx, updated)
}

// Delete removes the bank and its ledger entries, scoped to the given trader.
func (s *Service) Delete(ctx context.Context, traderID, bankID int32) error {
	bank, err := s.repo.Get(ctx, bankID)
	if err != nil {
		return err
	}

	if bank.TraderID != traderID {
		return domain.ErrBankNotFound
	}

	return s.repo.Delete(ctx, bankID)
}

func (s *Service) withEntries(ctx context.Context, bank domain.Bank) (domain.Bank, error) {
	entries, err := s.entries.ListByBank(ctx, bank.ID)
	if err != nil {
		return bank, err
	}

	bank.Entries = entries
	bank.TotalBalance = calc.Total(entries)

	return bank, nil
}
