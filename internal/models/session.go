package models

// PlayerEntry represents one player's result for a session.
type PlayerEntry struct {
	// Name is the player's display name, unique within the session.
	Name string

	// BuyIn is the total amount the player bought in for (non-negative).
	BuyIn float64

	// CashOut is the amount the player left the table with (non-negative).
	CashOut float64
}

// Balance returns the player's net result: cash-out minus buy-in.
// Positive means the player is owed money, negative means they owe.
func (p PlayerEntry) Balance() float64 {
	return p.CashOut - p.BuyIn
}

// Session represents one recorded poker game with its computed settlement.
// A session is immutable once created.
type Session struct {
	// ID is the unique identifier for the session (UUID format).
	ID string

	// PlayedAt is the Unix timestamp of the game date.
	PlayedAt int64

	// CreatedAt is the Unix timestamp when the session was recorded.
	CreatedAt int64

	// Players are the session's entries in seating (input) order.
	Players []PlayerEntry

	// Transfers is the settlement computed at creation time, in the order
	// the engine emitted them.
	Transfers []Transfer
}

// SessionSummary is the listing view of a session, without players or
// transfers loaded.
type SessionSummary struct {
	ID          string
	PlayedAt    int64
	PlayerCount int
	TotalBuyIn  float64
}
