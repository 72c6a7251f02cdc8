package domain

import (
	"errors"
	"time"
)

// ErrTraderNotFound indicates that the trader is not found.
var ErrTraderNotFound = errors.New("Trader not found")

// Trader owns a set of banks. TotalBalance is derived from the ledger
// entries of its banks at read time and is never trusted from storage.
type Trader struct {
	ID           int32     `json:"id"`
	Name         string    `json:"name"`
	ShortName    string    `json:"shortName"`
	Color        string    `json:"color"`
	TotalBalance float64   `json:"totalBalance"`
	Banks        []Bank    `json:"banks,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreateTraderParams is the input data to create a trader.
type CreateTraderParams struct {
	Name      string
	ShortName string
	Color     string
}

// UpdateTraderParams carries partial trader updates; nil fields retain
// their stored values.
type UpdateTraderParams struct {
	Name      *string
	ShortName *string
	Color     *string
}
