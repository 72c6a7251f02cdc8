package calc

import (
	"math"
	"testing"
	"time"
)

const tolerance = 0.01

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestRiyalAmount(t *testing.T) {
	testCases := []struct {
		name      string
		pkrAmount float64
		riyalRate float64
		want      float64
	}{
		{"BothPositive", 28000, 75, 373.3333},
		{"ZeroRate", 28000, 0, 0},
		{"ZeroPkr", 0, 75, 0},
		{"BothZero", 0, 0, 0},
		{"NegativeRate", 28000, -75, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RiyalAmount(tc.pkrAmount, tc.riyalRate); !approxEqual(got, tc.want) {
				t.Errorf("RiyalAmount(%v, %v) = %v, want %v", tc.pkrAmount, tc.riyalRate, got, tc.want)
			}
		})
	}
}

func TestSaudiBalancePurePayment(t *testing.T) {
	// A settlement row carries no order: pkr and rate are zero but SAR was
	// submitted. The net change must be exactly -submittedSar, never
	// -submittedSar substituted into the riyal amount.
	riyal := RiyalAmount(0, 0)

	if got := SaudiBalance(riyal, 500); !approxEqual(got, -500) {
		t.Errorf("SaudiBalance(RiyalAmount(0, 0), 500) = %v, want -500", got)
	}
}

func TestSpecialBalance(t *testing.T) {
	if got := SpecialBalance(5000, 1500); !approxEqual(got, 3500) {
		t.Errorf("SpecialBalance(5000, 1500) = %v, want 3500", got)
	}
}

func TestRemainingAmount(t *testing.T) {
	if got := RemainingAmount(1000, 300); !approxEqual(got, 700) {
		t.Errorf("RemainingAmount(1000, 300) = %v, want 700", got)
	}
}

type record struct {
	date      string
	time      string
	createdAt time.Time
	net       float64
	running   float64
}

func (r record) NetChange() float64    { return r.net }
func (r record) EntryDate() string     { return r.date }
func (r record) EntryTime() string     { return r.time }
func (r record) InsertedAt() time.Time { return r.createdAt }

func setRunning(r record, runningBalance float64) record {
	r.running = runningBalance
	return r
}

func TestWithRunningBalance(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		records     []record
		wantRunning []float64
	}{
		{
			name:        "Empty",
			records:     []record{},
			wantRunning: []float64{},
		},
		{
			name:        "Single",
			records:     []record{{date: "2024-01-05", createdAt: base, net: 250}},
			wantRunning: []float64{250},
		},
		{
			name: "BankScenario",
			records: []record{
				{date: "2024-01-01", createdAt: base, net: 1000},
				{date: "2024-01-02", createdAt: base.Add(time.Hour), net: -300},
				{date: "2024-01-03", createdAt: base.Add(2 * time.Hour), net: 500},
			},
			wantRunning: []float64{1000, 700, 1200},
		},
		{
			name: "OutOfOrderInput",
			records: []record{
				{date: "2024-01-03", createdAt: base.Add(2 * time.Hour), net: 500},
				{date: "2024-01-01", createdAt: base, net: 1000},
				{date: "2024-01-02", createdAt: base.Add(time.Hour), net: -300},
			},
			wantRunning: []float64{1000, 700, 1200},
		},
		{
			name: "SameDateTimeTiebreak",
			records: []record{
				{date: "2024-01-01", time: "14:30", createdAt: base, net: -5},
				{date: "2024-01-01", time: "09:15", createdAt: base.Add(time.Hour), net: 10},
			},
			wantRunning: []float64{10, 5},
		},
		{
			name: "SameDateCreatedAtTiebreak",
			records: []record{
				{date: "2024-01-01", createdAt: base.Add(time.Hour), net: -5},
				{date: "2024-01-01", createdAt: base, net: 10},
			},
			wantRunning: []float64{10, 5},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := WithRunningBalance(tc.records, setRunning)

			if len(got) != len(tc.wantRunning) {
				t.Fatalf("len(got) = %v, want %v", len(got), len(tc.wantRunning))
			}

			for i, want := range tc.wantRunning {
				if !approxEqual(got[i].running, want) {
					t.Errorf("got[%d].running = %v, want %v", i, got[i].running, want)
				}
			}

			for i := 1; i < len(got); i++ {
				if before(got[i], got[i-1]) {
					t.Errorf("records not in chronological order at %d", i)
				}
			}
		})
	}
}

func TestWithRunningBalanceDoesNotMutateInput(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	records := []record{
		{date: "2024-01-03", createdAt: base, net: 500},
		{date: "2024-01-01", createdAt: base, net: 1000},
	}

	WithRunningBalance(records, setRunning)

	if records[0].date != "2024-01-03" || records[1].date != "2024-01-01" {
		t.Errorf("input slice was reordered: %v", records)
	}

	if records[0].running != 0 || records[1].running != 0 {
		t.Errorf("input slice was annotated: %v", records)
	}
}

func TestTotal(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	records := []record{
		{date: "2024-01-03", createdAt: base, net: 500},
		{date: "2024-01-01", createdAt: base, net: 1000},
		{date: "2024-01-02", createdAt: base, net: -300},
	}

	want := 1200.0

	if got := Total(records); !approxEqual(got, want) {
		t.Errorf("Total(records) = %v, want %v", got, want)
	}

	annotated := WithRunningBalance(records, setRunning)
	if last := annotated[len(annotated)-1].running; !approxEqual(last, want) {
		t.Errorf("last running balance = %v, want Total = %v", last, want)
	}
}

func TestSaudiOrderThenSettlement(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	order := RiyalAmount(28000, 75)

	records := []record{
		{date: "2024-01-01", time: "09:00", createdAt: base, net: SaudiBalance(order, 0)},
		{date: "2024-01-02", time: "10:00", createdAt: base.Add(time.Hour), net: SaudiBalance(RiyalAmount(0, 0), order)},
	}

	annotated := WithRunningBalance(records, setRunning)

	if got := annotated[0].running; !approxEqual(got, 373.33) {
		t.Errorf("running balance after order = %v, want 373.33", got)
	}

	if got := annotated[1].running; !approxEqual(got, 0) {
		t.Errorf("running balance after settlement = %v, want 0", got)
	}
}
