package settle

import "testing"

func TestValidateUniqueNames(t *testing.T) {
	tests := []struct {
		name    string
		entries []RawEntry
		want    bool
	}{
		{
			name: "distinct names",
			entries: []RawEntry{
				{Name: "Alice", BuyIn: "50", CashOut: "50"},
				{Name: "Bob", BuyIn: "50", CashOut: "50"},
			},
			want: true,
		},
		{
			name: "duplicate after trim and case fold",
			entries: []RawEntry{
				{Name: "Alice", BuyIn: "50", CashOut: "50"},
				{Name: "alice ", BuyIn: "50", CashOut: "50"},
			},
			want: false,
		},
		{
			name:    "empty input",
			entries: nil,
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateUniqueNames(tt.entries); got != tt.want {
				t.Errorf("ValidateUniqueNames() = %v, want %v", got, tt.want)
			}
			// Pure function: a second call must agree.
			if got := ValidateUniqueNames(tt.entries); got != tt.want {
				t.Errorf("second ValidateUniqueNames() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateComplete(t *testing.T) {
	tests := []struct {
		name    string
		entries []RawEntry
		want    bool
	}{
		{
			name:    "valid entries",
			entries: []RawEntry{{Name: "Alice", BuyIn: "50", CashOut: "75.50"}},
			want:    true,
		},
		{
			name:    "empty name",
			entries: []RawEntry{{Name: "  ", BuyIn: "50", CashOut: "50"}},
			want:    false,
		},
		{
			name:    "empty buy-in does not default to zero",
			entries: []RawEntry{{Name: "Alice", BuyIn: "", CashOut: "50"}},
			want:    false,
		},
		{
			name:    "non-numeric cash-out",
			entries: []RawEntry{{Name: "Alice", BuyIn: "50", CashOut: "fifty"}},
			want:    false,
		},
		{
			name:    "negative buy-in rejected",
			entries: []RawEntry{{Name: "Alice", BuyIn: "-10", CashOut: "50"}},
			want:    false,
		},
		{
			name:    "NaN buy-in rejected",
			entries: []RawEntry{{Name: "Alice", BuyIn: "NaN", CashOut: "50"}},
			want:    false,
		},
		{
			name:    "infinite cash-out rejected",
			entries: []RawEntry{{Name: "Alice", BuyIn: "50", CashOut: "+Inf"}},
			want:    false,
		},
		{
			name:    "buy-in beyond cent range rejected",
			entries: []RawEntry{{Name: "Alice", BuyIn: "1e18", CashOut: "50"}},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateComplete(tt.entries); got != tt.want {
				t.Errorf("ValidateComplete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateSession(t *testing.T) {
	t.Run("valid session parses entries in order", func(t *testing.T) {
		result, parsed := ValidateSession([]RawEntry{
			{Name: " Alice ", BuyIn: "50", CashOut: "100"},
			{Name: "Bob", BuyIn: "100", CashOut: "50"},
		})
		if result.Status != StatusOK {
			t.Fatalf("status = %v, want ok", result.Status)
		}
		if len(parsed) != 2 {
			t.Fatalf("parsed %d entries, want 2", len(parsed))
		}
		if parsed[0].Name != "Alice" {
			t.Errorf("name not trimmed: %q", parsed[0].Name)
		}
		if parsed[0].BuyIn != 50 || parsed[0].CashOut != 100 {
			t.Errorf("parsed amounts = %+v", parsed[0])
		}
	})

	t.Run("unbalanced reports both totals", func(t *testing.T) {
		result, parsed := ValidateSession([]RawEntry{
			{Name: "Alice", BuyIn: "100", CashOut: "60"},
			{Name: "Bob", BuyIn: "0", CashOut: "30"},
		})
		if result.Status != StatusUnbalanced {
			t.Fatalf("status = %v, want unbalanced", result.Status)
		}
		if parsed != nil {
			t.Error("expected no parsed entries on failure")
		}
		if result.TotalBuyIn != 100 || result.TotalCashOut != 90 {
			t.Errorf("totals = %.2f/%.2f, want 100.00/90.00", result.TotalBuyIn, result.TotalCashOut)
		}
	})

	t.Run("non-finite amounts are incomplete, not ok", func(t *testing.T) {
		for _, amount := range []string{"NaN", "Inf", "+Inf", "-Inf"} {
			result, parsed := ValidateSession([]RawEntry{
				{Name: "Alice", BuyIn: amount, CashOut: amount},
			})
			if result.Status != StatusIncompleteFields {
				t.Errorf("%s: status = %v, want incomplete_fields", amount, result.Status)
			}
			if parsed != nil {
				t.Errorf("%s: expected no parsed entries", amount)
			}
		}
	})

	t.Run("duplicates reported before incomplete fields", func(t *testing.T) {
		result, _ := ValidateSession([]RawEntry{
			{Name: "Alice", BuyIn: "nope", CashOut: "50"},
			{Name: "ALICE", BuyIn: "50", CashOut: "50"},
		})
		if result.Status != StatusDuplicateNames {
			t.Errorf("status = %v, want duplicate_names", result.Status)
		}
	})
}

func TestIsBalanced(t *testing.T) {
	tests := []struct {
		name string
		raw  []RawEntry
		want bool
	}{
		{
			name: "exact match",
			raw: []RawEntry{
				{Name: "A", BuyIn: "50", CashOut: "100"},
				{Name: "B", BuyIn: "100", CashOut: "50"},
			},
			want: true,
		},
		{
			name: "one cent off is unbalanced",
			raw: []RawEntry{
				{Name: "A", BuyIn: "100.00", CashOut: "100.01"},
			},
			want: false,
		},
		{
			name: "sub-cent noise rounds away",
			raw: []RawEntry{
				{Name: "A", BuyIn: "33.333333", CashOut: "0"},
				{Name: "B", BuyIn: "33.333333", CashOut: "0"},
				{Name: "C", BuyIn: "33.333334", CashOut: "100"},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, parsed := ValidateSession(tt.raw)
			if tt.want {
				if result.Status != StatusOK {
					t.Fatalf("status = %v, want ok", result.Status)
				}
				if !IsBalanced(parsed) {
					t.Error("IsBalanced() = false, want true")
				}
			} else if result.Status != StatusUnbalanced {
				t.Errorf("status = %v, want unbalanced", result.Status)
			}
		})
	}
}
