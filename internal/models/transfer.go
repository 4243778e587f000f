package models

// Transfer represents a point-to-point payment that moves one player's
// negative balance and another's positive balance toward zero.
type Transfer struct {
	// From is the paying player (net balance below zero).
	From string

	// To is the receiving player (net balance above zero).
	To string

	// Amount is the payment amount, rounded to 2 fractional digits,
	// strictly positive.
	Amount float64
}
