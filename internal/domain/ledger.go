package domain

import (
	"errors"
	"time"

	"github.com/mkbukhari/hisaab-kitaab/internal/calc"
)

var (
	// ErrLedgerEntryNotFound indicates that the ledger entry is not found under the given bank.
	ErrLedgerEntryNotFound = errors.New("Ledger entry not found")
	// ErrNoAmount indicates that neither amount added nor amount withdrawn is positive.
	ErrNoAmount = errors.New("Either amount added or amount withdrawn must be greater than zero")
)

// LedgerEntry is a single movement on a bank ledger. RemainingAmount is the
// entry's own net effect, recomputed server-side on every write.
// RunningBalance is the cumulative balance in chronological order; it is
// attached on reads and never persisted.
type LedgerEntry struct {
	ID              int64     `json:"id"`
	BankID          int32     `json:"bank"`
	Date            string    `json:"date"`
	ReferenceType   string    `json:"referenceType"`
	AmountAdded     float64   `json:"amountAdded"`
	AmountWithdrawn float64   `json:"amountWithdrawn"`
	ReferencePerson string    `json:"referencePerson"`
	RemainingAmount float64   `json:"remainingAmount"`
	RunningBalance  float64   `json:"runningBalance"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NetChange returns the entry's signed contribution to the bank balance.
func (e LedgerEntry) NetChange() float64 {
	return calc.RemainingAmount(e.AmountAdded, e.AmountWithdrawn)
}

// EntryDate returns the entry date in YYYY-MM-DD form.
func (e LedgerEntry) EntryDate() string { return e.Date }

// EntryTime returns an empty string; bank ledger entries carry no clock time.
func (e LedgerEntry) EntryTime() string { return "" }

// InsertedAt returns the insertion timestamp used as the same-date tiebreak.
func (e LedgerEntry) InsertedAt() time.Time { return e.CreatedAt }

// CreateLedgerEntryParams is the input data to create a ledger entry.
type CreateLedgerEntryParams struct {
	BankID          int32
	Date            string
	ReferenceType   string
	AmountAdded     float64
	AmountWithdrawn float64
	ReferencePerson string
	RemainingAmount float64
}

// UpdateLedgerEntryParams carries partial entry updates; nil fields retain
// their stored values.
type UpdateLedgerEntryParams struct {
	Date            *string
	ReferenceType   *string
	AmountAdded     *float64
	AmountWithdrawn *float64
	ReferencePerson *string
}

// LedgerSummary holds bank-scope totals alongside the annotated entries.
// RemainingBalance always equals the running balance of the chronologically
// last entry.
type LedgerSummary struct {
	TotalCredit      float64 `json:"totalCredit"`
	TotalDebit       float64 `json:"totalDebit"`
	RemainingBalance float64 `json:"remainingBalance"`
}
