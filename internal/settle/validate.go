// Package settle implements session validation and the greedy debt
// settlement engine. All functions are pure: they perform no I/O and keep
// no state between calls, so they are safe to call concurrently.
//
// Currency amounts are handled as integer cents internally. Inputs are
// converted once at the boundary (round to the nearest cent), all matching
// arithmetic is exact from there, and transfer amounts are converted back
// to 2-decimal floats on output.
//
// Balance checking rounds each session total, while settlement rounds each
// player's fields, so a session that passes IsBalanced can still carry up
// to one cent of per-player rounding skew. The engine absorbs such a
// residual rather than emitting a sub-cent transfer for it.
package settle

import (
	"math"
	"strconv"
	"strings"

	"github.com/pokertally/pokertally/internal/models"
)

// maxAmount bounds a single buy-in or cash-out so cent conversion cannot
// overflow int64.
const maxAmount = 1e12

// ValidationStatus enumerates the outcome of session validation.
type ValidationStatus int

const (
	// StatusOK means the entries are complete, unique, and balanced.
	StatusOK ValidationStatus = iota

	// StatusDuplicateNames means two or more entries share a name after
	// trimming and lowercasing.
	StatusDuplicateNames

	// StatusIncompleteFields means an entry has an empty name or a
	// buy-in/cash-out that does not parse as a non-negative number.
	StatusIncompleteFields

	// StatusUnbalanced means total buy-in and total cash-out disagree
	// after rounding each to cents.
	StatusUnbalanced
)

// String returns the wire/display name of the status.
func (s ValidationStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusDuplicateNames:
		return "duplicate_names"
	case StatusIncompleteFields:
		return "incomplete_fields"
	case StatusUnbalanced:
		return "unbalanced"
	default:
		return "unknown"
	}
}

// ValidationResult is the structured outcome of ValidateSession. Totals are
// populated only for StatusUnbalanced, so the caller can show the operator
// both sides of the mismatch.
type ValidationResult struct {
	Status       ValidationStatus
	TotalBuyIn   float64
	TotalCashOut float64
}

// RawEntry is one player row as collected from input, before any parsing.
// Amount fields are kept as strings so that an empty or non-numeric field
// fails completeness instead of silently becoming zero.
type RawEntry struct {
	Name    string
	BuyIn   string
	CashOut string
}

// normalizeName is the comparison key for uniqueness checks.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// parseAmount parses a buy-in or cash-out field. Negative amounts are
// rejected (the data model declares both fields non-negative), as are
// NaN, infinities, and values beyond maxAmount — ParseFloat accepts all
// of those, and any of them would void the balance comparison.
func parseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > maxAmount {
		return 0, false
	}
	return v, true
}

// ValidateUniqueNames reports whether all entry names are distinct after
// trimming whitespace and lowercasing.
func ValidateUniqueNames(entries []RawEntry) bool {
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		key := normalizeName(e.Name)
		if seen[key] {
			return false
		}
		seen[key] = true
	}
	return true
}

// ValidateComplete reports whether every entry has a non-empty name and
// amounts that parse as non-negative numbers.
func ValidateComplete(entries []RawEntry) bool {
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			return false
		}
		if _, ok := parseAmount(e.BuyIn); !ok {
			return false
		}
		if _, ok := parseAmount(e.CashOut); !ok {
			return false
		}
	}
	return true
}

// IsBalanced reports whether total buy-in equals total cash-out. Each sum
// is rounded to cents independently before comparison, so the sums must
// agree at cent precision: 100.00 vs 100.01 is unbalanced.
func IsBalanced(entries []models.PlayerEntry) bool {
	var buyIn, cashOut float64
	for _, e := range entries {
		buyIn += e.BuyIn
		cashOut += e.CashOut
	}
	return toCents(buyIn) == toCents(cashOut)
}

// ValidateSession runs all checks in order — duplicates, completeness,
// balance — and returns the first failure. On StatusOK the parsed entries
// are returned in input order, ready for Settle.
func ValidateSession(entries []RawEntry) (ValidationResult, []models.PlayerEntry) {
	if !ValidateUniqueNames(entries) {
		return ValidationResult{Status: StatusDuplicateNames}, nil
	}
	if !ValidateComplete(entries) {
		return ValidationResult{Status: StatusIncompleteFields}, nil
	}

	parsed := make([]models.PlayerEntry, len(entries))
	var buyIn, cashOut float64
	for i, e := range entries {
		b, _ := parseAmount(e.BuyIn)
		c, _ := parseAmount(e.CashOut)
		parsed[i] = models.PlayerEntry{
			Name:    strings.TrimSpace(e.Name),
			BuyIn:   b,
			CashOut: c,
		}
		buyIn += b
		cashOut += c
	}

	if toCents(buyIn) != toCents(cashOut) {
		return ValidationResult{
			Status:       StatusUnbalanced,
			TotalBuyIn:   buyIn,
			TotalCashOut: cashOut,
		}, nil
	}

	return ValidationResult{Status: StatusOK}, parsed
}
