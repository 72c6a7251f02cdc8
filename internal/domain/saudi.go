package domain

import (
	"errors"
	"time"

	"github.com/mkbukhari/hisaab-kitaab/internal/calc"
)

// ErrSaudiEntryNotFound indicates that the saudi entry is not found.
var ErrSaudiEntryNotFound = errors.New("Saudi entry not found")

// SaudiEntry converts PKR orders to SAR at a given rate. RiyalAmount and
// Balance are derived server-side on every write; RunningBalance is
// attached on reads only.
type SaudiEntry struct {
	ID             int64     `json:"id"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	RefNo          string    `json:"refNo"`
	PkrAmount      float64   `json:"pkrAmount"`
	RiyalRate      float64   `json:"riyalRate"`
	RiyalAmount    float64   `json:"riyalAmount"`
	SubmittedSar   float64   `json:"submittedSar"`
	Reference2     string    `json:"reference2"`
	Balance        float64   `json:"balance"`
	RunningBalance float64   `json:"runningBalance"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NetChange returns the entry's signed contribution to the saudi balance,
// recomputed from the raw fields rather than trusted from storage.
func (e SaudiEntry) NetChange() float64 {
	return calc.SaudiBalance(calc.RiyalAmount(e.PkrAmount, e.RiyalRate), e.SubmittedSar)
}

// EntryDate returns the entry date in YYYY-MM-DD form.
func (e SaudiEntry) EntryDate() string { return e.Date }

// EntryTime returns the optional clock time used as the same-date tiebreak.
func (e SaudiEntry) EntryTime() string { return e.Time }

// InsertedAt returns the insertion timestamp, the final tiebreak.
func (e SaudiEntry) InsertedAt() time.Time { return e.CreatedAt }

// CreateSaudiEntryParams is the input data to create a saudi entry.
type CreateSaudiEntryParams struct {
	Date         string
	Time         string
	RefNo        string
	PkrAmount    float64
	RiyalRate    float64
	RiyalAmount  float64
	SubmittedSar float64
	Reference2   string
	Balance      float64
}

// UpdateSaudiEntryParams carries partial entry updates; nil fields retain
// their stored values.
type UpdateSaudiEntryParams struct {
	Date         *string
	Time         *string
	RefNo        *string
	PkrAmount    *float64
	RiyalRate    *float64
	SubmittedSar *float64
	Reference2   *string
}
