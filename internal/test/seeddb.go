// Package test provides shared test helpers.
package test

import (
	"context"
	"testing"

	"github.com/mkbukhari/hisaab-kitaab/internal/bankrepo"
	"github.com/mkbukhari/hisaab-kitaab/internal/domain"
	"github.com/mkbukhari/hisaab-kitaab/internal/ledgerrepo"
	"github.com/mkbukhari/hisaab-kitaab/internal/traderrepo"
	"github.com/mkbukhari/hisaab-kitaab/internal/userrepo"
	"github.com/mkbukhari/hisaab-kitaab/pkg/dbpkg"
	"github.com/mkbukhari/hisaab-kitaab/pkg/passpkg"
	"github.com/mkbukhari/hisaab-kitaab/pkg/randompkg"
)

// SeedUser creates a random user inside a test transaction.
func SeedUser(t *testing.T, tx dbpkg.SQLInterface) domain.User {
	t.Helper()

	hashedPassword, err := passpkg.Hash(randompkg.String(32))
	if err != nil {
		t.Fatalf("passpkg.Hash(randompkg.String(32)) returned error: %v", err)
	}

	arg := domain.CreateUserParams{
		Name:           randompkg.Name(),
		Email:          randompkg.Email(),
		HashedPassword: hashedPassword,
		Role:           "user",
	}

	userRepo := userrepo.NewRepoPGS(tx)

	user, err := userRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("userRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return user
}

// SeedTrader creates a random trader inside a test transaction.
func SeedTrader(t *testing.T, tx dbpkg.SQLInterface) domain.Trader {
	t.Helper()

	arg := domain.CreateTraderParams{
		Name:      randompkg.Name(),
		ShortName: randompkg.String(3),
		Color:     randompkg.HexColor(),
	}

	traderRepo := traderrepo.NewRepoPGS(tx)

	trader, err := traderRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("traderRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return trader
}

// SeedBank creates a random bank under the given trader inside a test
// transaction.
func SeedBank(t *testing.T, tx dbpkg.SQLInterface, traderID int32) domain.Bank {
	t.Helper()

	arg := domain.CreateBankParams{
		TraderID: traderID,
		Name:     randompkg.Name() + " Bank",
		Code:     randompkg.String(4),
	}

	bankRepo := bankrepo.NewRepoPGS(tx)

	bank, err := bankRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("bankRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return bank
}

// SeedLedgerEntry creates a ledger entry with the given amounts inside a
// test transaction.
func SeedLedgerEntry(t *testing.T, tx dbpkg.SQLInterface, bankID int32, date string, added, withdrawn float64) domain.LedgerEntry {
	t.Helper()

	arg := domain.CreateLedgerEntryParams{
		BankID:          bankID,
		Date:            date,
		AmountAdded:     added,
		AmountWithdrawn: withdrawn,
		RemainingAmount: added - withdrawn,
	}

	ledgerRepo := ledgerrepo.NewRepoPGS(tx)

	entry, err := ledgerRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("ledgerRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return entry
}

// SeedLedgerEntries creates entries with random amounts inside a test
// transaction.
func SeedLedgerEntries(t *testing.T, tx dbpkg.SQLInterface, count int, bankID int32) []domain.LedgerEntry {
	t.Helper()

	entries := make([]domain.LedgerEntry, count)

	for i := range entries {
		entries[i] = SeedLedgerEntry(t, tx, bankID, randompkg.Date(),
			randompkg.FloatBetween(0, 1000), randompkg.FloatBetween(0, 1000))
	}

	return entries
}
