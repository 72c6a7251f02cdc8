package domain

import (
	"errors"
	"time"
)

// ErrBankNotFound indicates that the bank is not found under the given trader.
var ErrBankNotFound = errors.New("Bank not found")

// Bank holds a single bank ledger under a trader. TotalBalance is the sum
// of its entries' net changes, derived at read time.
type Bank struct {
	ID           int32         `json:"id"`
	TraderID     int32         `json:"trader"`
	Name         string        `json:"name"`
	Code         string        `json:"code"`
	TotalBalance float64       `json:"totalBalance"`
	Entries      []LedgerEntry `json:"entries,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// CreateBankParams is the input data to create a bank.
type CreateBankParams struct {
	TraderID int32
	Name     string
	Code     string
}

// UpdateBankParams carries partial bank updates; nil fields retain their
// stored values.
type UpdateBankParams struct {
	Name *string
	Code *string
}
