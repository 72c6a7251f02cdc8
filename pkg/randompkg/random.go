// Package randompkg provides generators for random application data used in tests.
package randompkg

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// Float64 is a shortcut for generating a random float between 0 and 1 using crypto/rand.
func Float64() float64 {
	return float64(Intn(1<<32)) / (1 << 32)
}

// IntBetween generates a random integer between min and max.
func IntBetween(min, max int) int32 {
	return int32(min) + int32(Intn(max-min))
}

// FloatBetween generates a random decimal number between min and max rounded to 4 decimals.
func FloatBetween(min, max float64) float64 {
	numInRange := min + Float64()*(max-min)
	return math.Floor(numInRange*10_000) / 10_000
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// Name generates a random person or entity name.
func Name() string {
	return String(6)
}

// Email generates a random email address.
func Email() string {
	return fmt.Sprintf("%s@%s.com", String(6), String(5))
}

// Date generates a random date in YYYY-MM-DD form within the last year.
func Date() string {
	day := time.Now().AddDate(0, 0, -int(Intn(365)))
	return day.Format("2006-01-02")
}

// ClockTime generates a random clock time in HH:MM form.
func ClockTime() string {
	return fmt.Sprintf("%02d:%02d", Intn(24), Intn(60))
}

// HexColor generates a random #RRGGBB color.
func HexColor() string {
	return fmt.Sprintf("#%06x", Intn(1<<24))
}

// MoneyAmountBetween generates a random amount of money between min and max rounded to 4 decimals.
func MoneyAmountBetween(min, max float64) string {
	return decimal.NewFromFloat(FloatBetween(min, max)).String()
}
