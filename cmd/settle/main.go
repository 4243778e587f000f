// Command settle computes a settlement for one session without the server.
//
// Each argument is one player as name:buyin:cashout, e.g.
//
//	settle alice:50:100 bob:100:50
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/pokertally/pokertally/internal/settle"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		pterm.Error.Println("usage: settle name:buyin:cashout [name:buyin:cashout ...]")
		os.Exit(2)
	}

	entries := make([]settle.RawEntry, 0, len(args))
	for _, arg := range args {
		parts := strings.SplitN(arg, ":", 3)
		if len(parts) != 3 {
			pterm.Error.Printfln("bad entry %q: want name:buyin:cashout", arg)
			os.Exit(2)
		}
		entries = append(entries, settle.RawEntry{
			Name:    parts[0],
			BuyIn:   parts[1],
			CashOut: parts[2],
		})
	}

	result, players := settle.ValidateSession(entries)
	switch result.Status {
	case settle.StatusOK:
	case settle.StatusUnbalanced:
		pterm.Error.Printfln("session is not balanced: buy-in %.2f vs cash-out %.2f",
			result.TotalBuyIn, result.TotalCashOut)
		os.Exit(1)
	default:
		pterm.Error.Printfln("invalid session: %s", result.Status)
		os.Exit(1)
	}

	balanceRows := pterm.TableData{{"Player", "Buy-in", "Cash-out", "Balance"}}
	for _, p := range players {
		balanceRows = append(balanceRows, []string{
			p.Name,
			fmt.Sprintf("%.2f", p.BuyIn),
			fmt.Sprintf("%.2f", p.CashOut),
			fmt.Sprintf("%+.2f", p.Balance()),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(balanceRows).Render()

	transfers := settle.Settle(players)
	if len(transfers) == 0 {
		pterm.Success.Println("Everyone broke even, nothing to settle.")
		return
	}

	transferRows := pterm.TableData{{"From", "To", "Amount"}}
	for _, tr := range transfers {
		transferRows = append(transferRows, []string{tr.From, tr.To, fmt.Sprintf("%.2f", tr.Amount)})
	}
	pterm.DefaultSection.Println("Settlement")
	pterm.DefaultTable.WithHasHeader().WithData(transferRows).Render()
}
