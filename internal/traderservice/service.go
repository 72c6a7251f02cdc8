// Package traderservice manages business logic layer of traders.
package traderservice

import (
	"context"

	"github.com/mkbukhari/hisaab-kitaab/internal/domain"
)

// Repo provides data access layer interface needed by trader service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package traderservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateTraderParams) (domain.Trader, error)
	Get(ctx context.Context, id int32) (domain.Trader, error)
	List(ctx context.Context) ([]domain.Trader, error)
	Update(ctx context.Context, id int32, name, shortName, color string) (domain.Trader, error)
	Delete(ctx context.Context, id int32) error
}

// BankService provides the bank listing needed to derive trader balances.
type BankService interface {
	ListWithBalance(ctx context.Context, traderID int32) ([]domain.Bank, error)
}

// Service facilitates trader service layer logic.
type Service struct {
	repo  Repo
	banks BankService
}

// New returns trader service struct to manage trader business logic.
func New(r Repo, bs BankService) *Service {
	return &Service{
		repo:  r,
		banks: bs,
	}
}

// Create creates and returns a trader.
func (s *Service) Create(ctx context.Context, arg domain.CreateTraderParams) (domain.Trader, error) {
	return s.repo.Create(ctx, arg)
}

// Get returns the trader with its banks and derived total balance.
func (s *Service) Get(ctx context.Context, id int32) (domain.Trader, error) {
	trader, err := s.repo.Get(ctx, id)
	if err != nil {
		return trader, err
	}

	return s.withBanks(ctx, trader)
}

// List returns all traders with their banks and derived total balances.
func (s *Service) List(ctx context.Context) ([]domain.Trader, error) {
	traders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i, trader := range traders {
		traders[i], err = s.withBanks(ctx, trader)
		if err != nil {
			return nil, err
		}
	}

	return traders, nil
}

// Update merges the given fields into the stored trader; nil fields retain
// their stored values.
func (s *Service) Update(ctx context.Context, id int32, arg domain.UpdateTraderParams) (domain.Trader, error) {
	trader, err := s.repo.Get(ctx, id)
	if err != nil {
		return trader, err
	}

	name, shortName, color := trader.Name, trader.ShortName, trader.Color

	if arg.Name != nil {
		name = *arg.Name
	}

	if arg.ShortName != nil {
		shortName = *arg.ShortName
	}

	if arg.Color != nil {
		color = *arg.Color
	}

	updated, err := s.repo.Update(ctx, id, name, shortName, color)
	if err != nil {
		return updated, err
	}

	return s.withBanks(ctx, updated)
}

// Delete removes the trader; its banks and their ledger entries cascade.
func (s *Service) Delete(ctx context.Context, id int32) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) withBanks(ctx context.Context, trader domain.Trader) (domain.Trader, error) {
	banks, err := s.banks.ListWithBalance(ctx, trader.ID)
	if err != nil {
		return trader, err
	}

	trader.Banks = banks

	trader.TotalBalance = 0
	for _, bank := range banks {
		trader.TotalBalance += bank.TotalBalance
	}

	return trader, nil
}
