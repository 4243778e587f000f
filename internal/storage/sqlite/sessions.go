package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pokertally/pokertally/internal/models"
)

// CreateSession persists a session with its players and transfers in one
// transaction.
func (s *SQLiteStore) CreateSession(ctx context.Context, session *models.Session) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.CreatedAt == 0 {
		session.CreatedAt = time.Now().Unix()
	}
	if session.PlayedAt == 0 {
		session.PlayedAt = session.CreatedAt
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO sessions (id, played_at, created_at) VALUES (?, ?, ?)",
		session.ID, session.PlayedAt, session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	for seat, p := range session.Players {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO session_players (session_id, seat, name, buy_in, cash_out) VALUES (?, ?, ?, ?, ?)",
			session.ID, seat, p.Name, p.BuyIn, p.CashOut,
		)
		if err != nil {
			return fmt.Errorf("failed to insert player: %w", err)
		}
	}

	for pos, tr := range session.Transfers {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO session_transfers (session_id, position, from_name, to_name, amount) VALUES (?, ?, ?, ?, ?)",
			session.ID, pos, tr.From, tr.To, tr.Amount,
		)
		if err != nil {
			return fmt.Errorf("failed to insert transfer: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetSession retrieves a session by ID, including players in seating order
// and transfers in the order the engine emitted them.
func (s *SQLiteStore) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session := &models.Session{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, played_at, created_at FROM sessions WHERE id = ?",
		sessionID,
	).Scan(&session.ID, &session.PlayedAt, &session.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session not found: %s", sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	playerRows, err := s.db.QueryContext(ctx,
		"SELECT name, buy_in, cash_out FROM session_players WHERE session_id = ? ORDER BY seat",
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}
	defer playerRows.Close()

	for playerRows.Next() {
		var p models.PlayerEntry
		if err := playerRows.Scan(&p.Name, &p.BuyIn, &p.CashOut); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		session.Players = append(session.Players, p)
	}
	if err := playerRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate players: %w", err)
	}

	transferRows, err := s.db.QueryContext(ctx,
		"SELECT from_name, to_name, amount FROM session_transfers WHERE session_id = ? ORDER BY position",
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get transfers: %w", err)
	}
	defer transferRows.Close()

	for transferRows.Next() {
		var tr models.Transfer
		if err := transferRows.Scan(&tr.From, &tr.To, &tr.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan transfer: %w", err)
		}
		session.Transfers = append(session.Transfers, tr)
	}
	if err := transferRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transfers: %w", err)
	}

	return session, nil
}

// ListSessions returns summaries of all sessions, newest game first.
func (s *SQLiteStore) ListSessions(ctx context.Context) ([]models.SessionSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.played_at, COUNT(p.name), COALESCE(SUM(p.buy_in), 0)
		FROM sessions s
		LEFT JOIN session_players p ON p.session_id = s.id
		GROUP BY s.id
		ORDER BY s.played_at DESC, s.created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var summaries []models.SessionSummary
	for rows.Next() {
		var sum models.SessionSummary
		if err := rows.Scan(&sum.ID, &sum.PlayedAt, &sum.PlayerCount, &sum.TotalBuyIn); err != nil {
			return nil, fmt.Errorf("failed to scan session summary: %w", err)
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	return summaries, nil
}

// DeleteSession removes a session by ID; players and transfers cascade.
func (s *SQLiteStore) DeleteSession(ctx context.Context, sessionID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("session not found: %s", sessionID)
	}

	return nil
}
