package settle

import (
	"math"
	"sort"

	"github.com/pokertally/pokertally/internal/models"
)

// account is a working copy of one player's residual balance in cents.
// The engine mutates these copies, never the caller's entries.
type account struct {
	name  string
	cents int64
}

// toCents converts a currency amount to integer cents, rounding to the
// nearest cent.
func toCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

// fromCents converts integer cents back to a 2-decimal currency amount.
func fromCents(c int64) float64 {
	return float64(c) / 100
}

// Settle computes the transfer list that zeroes every player's balance.
//
// Callers must validate the entries first (unique names, complete fields,
// balanced totals); behavior on an unbalanced session is unspecified.
//
// The matching is greedy: creditors sorted by largest credit first, debtors
// by largest debt first, and a single creditor pointer that only advances —
// a creditor's residual balance carries over from one debtor to the next.
// Ties keep input order. Players who broke even appear in no transfer.
func Settle(entries []models.PlayerEntry) []models.Transfer {
	var creditors, debtors []account
	for _, e := range entries {
		c := toCents(e.CashOut) - toCents(e.BuyIn)
		switch {
		case c > 0:
			creditors = append(creditors, account{name: e.Name, cents: c})
		case c < 0:
			debtors = append(debtors, account{name: e.Name, cents: c})
		}
	}

	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].cents > creditors[j].cents
	})
	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].cents < debtors[j].cents
	})

	var transfers []models.Transfer
	j := 0
	for _, d := range debtors {
		remaining := -d.cents
		for remaining > 0 && j < len(creditors) {
			c := &creditors[j]
			payment := remaining
			if c.cents < payment {
				payment = c.cents
			}
			if payment > 0 {
				transfers = append(transfers, models.Transfer{
					From:   d.name,
					To:     c.name,
					Amount: fromCents(payment),
				})
				remaining -= payment
				c.cents -= payment
			}
			if c.cents == 0 {
				j++
			}
		}
	}

	return transfers
}
