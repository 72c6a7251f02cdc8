// Package calc provides the balance formulas and the running-balance fold
// shared by the write path (persisted per-record balance) and the read path
// (runningBalance annotation). Keeping them here is the single source of
// truth for all three ledger types.
package calc

import (
	"sort"
	"time"
)

// RiyalAmount converts a PKR order amount to SAR at the given rate.
//
// When either pkrAmount or riyalRate is zero the record is a pure
// payment/settlement and the riyal amount is forced to 0 so that the net
// change reduces the balance by exactly submittedSar. Do not substitute
// submittedSar here. Product owners flagged this branch as correcting
// legacy data; preserve it until they confirm otherwise.
func RiyalAmount(pkrAmount, riyalRate float64) float64 {
	if pkrAmount > 0 && riyalRate > 0 {
		return pkrAmount / riyalRate
	}

	return 0
}

// SaudiBalance is the net change of a saudi entry.
func SaudiBalance(riyalAmount, submittedSar float64) float64 {
	return riyalAmount - submittedSar
}

// SpecialBalance is the net change of a special entry.
func SpecialBalance(nameRupees, submittedRupees float64) float64 {
	return nameRupees - submittedRupees
}

// RemainingAmount is the net change of a bank ledger entry.
func RemainingAmount(amountAdded, amountWithdrawn float64) float64 {
	return amountAdded - amountWithdrawn
}

// Record is a ledger row that contributes a signed net change to the
// running balance of its scope.
type Record interface {
	// NetChange returns the signed contribution of the record.
	NetChange() float64
	// EntryDate returns the record date in YYYY-MM-DD form.
	EntryDate() string
	// EntryTime returns the optional clock time used as a same-date
	// tiebreak; empty when the entity has no time field.
	EntryTime() string
	// InsertedAt returns the insertion timestamp, the final tiebreak.
	InsertedAt() time.Time
}

func before(a, b Record) bool {
	if d1, d2 := a.EntryDate(), b.EntryDate(); d1 != d2 {
		return d1 < d2
	}

	if t1, t2 := a.EntryTime(), b.EntryTime(); t1 != t2 {
		return t1 < t2
	}

	return a.InsertedAt().Before(b.InsertedAt())
}

// WithRunningBalance returns the records sorted chronologically, each copy
// annotated with its cumulative balance via set. The input slice is not
// mutated; a stable sort keeps fully tied records in input order, which is
// acceptable since ties do not change the final total.
func WithRunningBalance[R Record](records []R, set func(r R, runningBalance float64) R) []R {
	sorted := make([]R, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		return before(sorted[i], sorted[j])
	})

	var cumulative float64
	for i, r := range sorted {
		cumulative += r.NetChange()
		sorted[i] = set(r, cumulative)
	}

	return sorted
}

// Total sums the net changes of the records. It equals the running balance
// of the chronologically last record regardless of input order.
func Total[R Record](records []R) float64 {
	var total float64
	for _, r := range records {
		total += r.NetChange()
	}

	return total
}
