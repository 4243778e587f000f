package settle

import (
	"math"
	"testing"

	"github.com/pokertally/pokertally/internal/models"
)

func TestSettle(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.PlayerEntry
		want    []models.Transfer
	}{
		{
			name: "single debtor pays single creditor",
			entries: []models.PlayerEntry{
				{Name: "A", BuyIn: 50, CashOut: 100},
				{Name: "B", BuyIn: 100, CashOut: 50},
			},
			want: []models.Transfer{
				{From: "B", To: "A", Amount: 50.00},
			},
		},
		{
			name: "debt split across creditors largest first",
			entries: []models.PlayerEntry{
				{Name: "A", BuyIn: 0, CashOut: 30},
				{Name: "B", BuyIn: 0, CashOut: 20},
				{Name: "C", BuyIn: 50, CashOut: 0},
			},
			want: []models.Transfer{
				{From: "C", To: "A", Amount: 30.00},
				{From: "C", To: "B", Amount: 20.00},
			},
		},
		{
			name: "everyone breaks even",
			entries: []models.PlayerEntry{
				{Name: "A", BuyIn: 20, CashOut: 20},
				{Name: "B", BuyIn: 40, CashOut: 40},
				{Name: "C", BuyIn: 0, CashOut: 0},
			},
			want: nil,
		},
		{
			name: "break-even player excluded from transfers",
			entries: []models.PlayerEntry{
				{Name: "A", BuyIn: 10, CashOut: 40},
				{Name: "B", BuyIn: 25, CashOut: 25},
				{Name: "C", BuyIn: 40, CashOut: 10},
			},
			want: []models.Transfer{
				{From: "C", To: "A", Amount: 30.00},
			},
		},
		{
			name: "creditor residual carries across debtors",
			entries: []models.PlayerEntry{
				{Name: "A", BuyIn: 0, CashOut: 70},
				{Name: "B", BuyIn: 40, CashOut: 0},
				{Name: "C", BuyIn: 30, CashOut: 0},
			},
			want: []models.Transfer{
				{From: "B", To: "A", Amount: 40.00},
				{From: "C", To: "A", Amount: 30.00},
			},
		},
		{
			name: "largest debt settled first",
			entries: []models.PlayerEntry{
				{Name: "A", BuyIn: 0, CashOut: 100},
				{Name: "B", BuyIn: 60, CashOut: 0},
				{Name: "C", BuyIn: 40, CashOut: 0},
			},
			want: []models.Transfer{
				{From: "B", To: "A", Amount: 60.00},
				{From: "C", To: "A", Amount: 40.00},
			},
		},
		{
			// Totals balance at 10.008 on both sides, but per-player
			// rounding leaves the debtor one cent short of the
			// creditors; the engine absorbs the residual instead of
			// emitting a sub-cent transfer.
			name: "one cent of rounding skew absorbed",
			entries: []models.PlayerEntry{
				{Name: "A", BuyIn: 0, CashOut: 5.004},
				{Name: "B", BuyIn: 0, CashOut: 5.004},
				{Name: "C", BuyIn: 10.008, CashOut: 0},
			},
			want: []models.Transfer{
				{From: "C", To: "A", Amount: 5.00},
				{From: "C", To: "B", Amount: 5.00},
			},
		},
		{
			name: "fractional cents round cleanly",
			entries: []models.PlayerEntry{
				{Name: "A", BuyIn: 33.33, CashOut: 50.00},
				{Name: "B", BuyIn: 33.33, CashOut: 16.66},
			},
			want: []models.Transfer{
				{From: "B", To: "A", Amount: 16.67},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Settle(tt.entries)
			if len(got) != len(tt.want) {
				t.Fatalf("Settle() returned %d transfers, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("transfer %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestSettleConservation checks that each player's transfers sum to the
// absolute value of their balance, with no self-payments and no zero or
// negative amounts.
func TestSettleConservation(t *testing.T) {
	entries := []models.PlayerEntry{
		{Name: "A", BuyIn: 100, CashOut: 212.50},
		{Name: "B", BuyIn: 150, CashOut: 75.25},
		{Name: "C", BuyIn: 50, CashOut: 95.00},
		{Name: "D", BuyIn: 200, CashOut: 117.25},
		{Name: "E", BuyIn: 80, CashOut: 80},
	}

	transfers := Settle(entries)

	paid := make(map[string]float64)
	received := make(map[string]float64)
	for _, tr := range transfers {
		if tr.From == tr.To {
			t.Errorf("self-payment: %+v", tr)
		}
		if tr.Amount <= 0 {
			t.Errorf("non-positive transfer: %+v", tr)
		}
		paid[tr.From] += tr.Amount
		received[tr.To] += tr.Amount
	}

	for _, e := range entries {
		balance := e.Balance()
		switch {
		case balance < 0:
			if math.Abs(paid[e.Name]+balance) > 0.01 {
				t.Errorf("%s paid %.2f, want %.2f", e.Name, paid[e.Name], -balance)
			}
		case balance > 0:
			if math.Abs(received[e.Name]-balance) > 0.01 {
				t.Errorf("%s received %.2f, want %.2f", e.Name, received[e.Name], balance)
			}
		default:
			if paid[e.Name] != 0 || received[e.Name] != 0 {
				t.Errorf("break-even player %s appears in transfers", e.Name)
			}
		}
	}
}

// TestSettleDoesNotMutateInput verifies the engine works on its own copies.
func TestSettleDoesNotMutateInput(t *testing.T) {
	entries := []models.PlayerEntry{
		{Name: "A", BuyIn: 10, CashOut: 60},
		{Name: "B", BuyIn: 60, CashOut: 10},
	}

	Settle(entries)
	Settle(entries)

	if entries[0].BuyIn != 10 || entries[0].CashOut != 60 ||
		entries[1].BuyIn != 60 || entries[1].CashOut != 10 {
		t.Errorf("input entries mutated: %+v", entries)
	}
}
