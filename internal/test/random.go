package test

import (
	"time"

	"github.com/mkbukhari/hisaab-kitaab/internal/calc"
	"github.com/mkbukhari/hisaab-kitaab/internal/domain"
	"github.com/mkbukhari/hisaab-kitaab/pkg/randompkg"
)

// RandomTrader returns a random trader without banks.
func RandomTrader() domain.Trader {
	return domain.Trader{
		ID:        randompkg.IntBetween(1, 100),
		Name:      randompkg.Name(),
		ShortName: randompkg.String(3),
		Color:     randompkg.HexColor(),
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}

// RandomBank returns a random bank owned by the given trader.
func RandomBank(traderID int32) domain.Bank {
	return domain.Bank{
		ID:        randompkg.IntBetween(1, 100),
		TraderID:  traderID,
		Name:      randompkg.Name() + " Bank",
		Code:      randompkg.String(4),
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}

// RandomLedgerEntry returns a random ledger entry under the given bank with
// its remaining amount derived the same way the service derives it.
func RandomLedgerEntry(bankID int32) domain.LedgerEntry {
	added := randompkg.FloatBetween(0, 10_000)
	withdrawn := randompkg.FloatBetween(0, 5_000)

	return domain.LedgerEntry{
		ID:              int64(randompkg.IntBetween(1, 1000)),
		BankID:          bankID,
		Date:            randompkg.Date(),
		ReferenceType:   "cash",
		AmountAdded:     added,
		AmountWithdrawn: withdrawn,
		ReferencePerson: randompkg.Name(),
		RemainingAmount: calc.RemainingAmount(added, withdrawn),
		CreatedAt:       time.Now().Truncate(time.Second).UTC(),
	}
}

// RandomSaudiEntry returns a random saudi entry with its derived fields
// filled in.
func RandomSaudiEntry() domain.SaudiEntry {
	pkr := randompkg.FloatBetween(1000, 100_000)
	rate := randompkg.FloatBetween(60, 80)
	submitted := randompkg.FloatBetween(0, 1000)
	riyal := calc.RiyalAmount(pkr, rate)

	return domain.SaudiEntry{
		ID:           int64(randompkg.IntBetween(1, 1000)),
		Date:         randompkg.Date(),
		Time:         randompkg.ClockTime(),
		RefNo:        randompkg.String(8),
		PkrAmount:    pkr,
		RiyalRate:    rate,
		RiyalAmount:  riyal,
		SubmittedSar: submitted,
		Reference2:   randompkg.Name(),
		Balance:      calc.SaudiBalance(riyal, submitted),
		CreatedAt:    time.Now().Truncate(time.Second).UTC(),
	}
}

// RandomSpecialEntry returns a random special entry with its derived
// balance filled in.
func RandomSpecialEntry() domain.SpecialEntry {
	name := randompkg.FloatBetween(0, 50_000)
	submitted := randompkg.FloatBetween(0, 50_000)

	return domain.SpecialEntry{
		ID:              int64(randompkg.IntBetween(1, 1000)),
		UserName:        randompkg.Name(),
		Date:            randompkg.Date(),
		BalanceType:     "jama",
		NameRupees:      name,
		SubmittedRupees: submitted,
		ReferencePerson: randompkg.Name(),
		Balance:         calc.SpecialBalance(name, submitted),
		CreatedAt:       time.Now().Truncate(time.Second).UTC(),
	}
}

// RandomUserWithoutPassword returns a random user as delivered to clients.
func RandomUserWithoutPassword() domain.UserWithoutPassword {
	return domain.UserWithoutPassword{
		ID:        int64(randompkg.IntBetween(1, 100)),
		Name:      randompkg.Name(),
		Email:     randompkg.Email(),
		Role:      "user",
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}
