package domain

import (
	"errors"
	"time"

	"github.com/mkbukhari/hisaab-kitaab/internal/calc"
)

// ErrSpecialEntryNotFound indicates that the special entry is not found.
var ErrSpecialEntryNotFound = errors.New("Special entry not found")

// SpecialEntry tracks rupee balances against a named person. Balance is
// derived server-side on every write; RunningBalance is attached on reads.
type SpecialEntry struct {
	ID              int64     `json:"id"`
	UserName        string    `json:"userName"`
	Date            string    `json:"date"`
	BalanceType     string    `json:"balanceType"`
	NameRupees      float64   `json:"nameRupees"`
	SubmittedRupees float64   `json:"submittedRupees"`
	ReferencePerson string    `json:"referencePerson"`
	Balance         float64   `json:"balance"`
	RunningBalance  float64   `json:"runningBalance"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NetChange returns the entry's signed contribution to the special balance.
func (e SpecialEntry) NetChange() float64 {
	return calc.SpecialBalance(e.NameRupees, e.SubmittedRupees)
}

// EntryDate returns the entry date in YYYY-MM-DD form.
func (e SpecialEntry) EntryDate() string { return e.Date }

// EntryTime returns an empty string; special entries carry no clock time.
func (e SpecialEntry) EntryTime() string { return "" }

// InsertedAt returns the insertion timestamp used as the same-date tiebreak.
func (e SpecialEntry) InsertedAt() time.Time { return e.CreatedAt }

// CreateSpecialEntryParams is the input data to create a special entry.
type CreateSpecialEntryParams struct {
	UserName        string
	Date            string
	BalanceType     string
	NameRupees      float64
	SubmittedRupees float64
	ReferencePerson string
	Balance         float64
}

// UpdateSpecialEntryParams carries partial entry updates; nil fields retain
// their stored values.
type UpdateSpecialEntryParams struct {
	UserName        *string
	Date            *string
	BalanceType     *string
	NameRupees      *float64
	SubmittedRupees *float64
	ReferencePerson *string
}
