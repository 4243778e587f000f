package rpc

// PlayerEntryInput is one player row as entered by the operator. Amounts
// travel as strings so the validator can distinguish an empty or malformed
// field from a zero.
type PlayerEntryInput struct {
	Name    string `json:"name"`
	BuyIn   string `json:"buy_in"`
	CashOut string `json:"cash_out"`
}

// PlayerEntry is a validated player entry with parsed amounts.
type PlayerEntry struct {
	Name    string  `json:"name"`
	BuyIn   float64 `json:"buy_in"`
	CashOut float64 `json:"cash_out"`
	Balance float64 `json:"balance"`
}

// Transfer is one settlement payment.
type Transfer struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// SessionSummary is the listing view of a stored session.
type SessionSummary struct {
	SessionID   string  `json:"session_id"`
	PlayedAt    int64   `json:"played_at"`
	PlayerCount int     `json:"player_count"`
	TotalBuyIn  float64 `json:"total_buy_in"`
}

// ValidateSessionRequest carries raw entries to check.
type ValidateSessionRequest struct {
	Players []PlayerEntryInput `json:"players"`
}

// ValidateSessionResponse reports the validation status. Totals are set
// only when the status is "unbalanced".
type ValidateSessionResponse struct {
	Status       string  `json:"status"`
	TotalBuyIn   float64 `json:"total_buy_in,omitempty"`
	TotalCashOut float64 `json:"total_cash_out,omitempty"`
}

// SettleRequest asks for a settlement preview without persisting anything.
type SettleRequest struct {
	Players []PlayerEntryInput `json:"players"`
}

// SettleResponse returns the computed transfer list in engine order.
type SettleResponse struct {
	Transfers []Transfer `json:"transfers"`
}

// CreateSessionRequest validates, settles, and freezes a session.
type CreateSessionRequest struct {
	PlayedAt int64              `json:"played_at,omitempty"`
	Players  []PlayerEntryInput `json:"players"`
}

// CreateSessionResponse returns the stored session's id and transfers.
type CreateSessionResponse struct {
	SessionID string     `json:"session_id"`
	Transfers []Transfer `json:"transfers"`
}

// GetSessionRequest retrieves a stored session by id.
type GetSessionRequest struct {
	SessionID string `json:"session_id"`
}

// GetSessionResponse returns the frozen session.
type GetSessionResponse struct {
	SessionID string        `json:"session_id"`
	PlayedAt  int64         `json:"played_at"`
	CreatedAt int64         `json:"created_at"`
	Players   []PlayerEntry `json:"players"`
	Transfers []Transfer    `json:"transfers"`
}

// ListSessionsRequest lists all stored sessions.
type ListSessionsRequest struct{}

// ListSessionsResponse returns session summaries, newest first.
type ListSessionsResponse struct {
	Sessions []SessionSummary `json:"sessions"`
}

// DeleteSessionRequest deletes a stored session wholesale.
type DeleteSessionRequest struct {
	SessionID string `json:"session_id"`
}

// DeleteSessionResponse is empty on success.
type DeleteSessionResponse struct{}
