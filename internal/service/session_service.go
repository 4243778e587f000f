package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/pokertally/pokertally/internal/models"
	"github.com/pokertally/pokertally/internal/rpc"
	"github.com/pokertally/pokertally/internal/settle"
	"github.com/pokertally/pokertally/internal/storage"
)

// SessionService implements rpc.SessionServiceHandler on top of the
// settlement engine and a storage backend.
type SessionService struct {
	store storage.Store
}

var _ rpc.SessionServiceHandler = (*SessionService)(nil)

// NewSessionService creates a new SessionService with the given storage backend.
func NewSessionService(store storage.Store) *SessionService {
	return &SessionService{store: store}
}

// toRawEntries converts wire inputs into validator entries.
func toRawEntries(players []rpc.PlayerEntryInput) []settle.RawEntry {
	entries := make([]settle.RawEntry, len(players))
	for i, p := range players {
		entries[i] = settle.RawEntry{
			Name:    p.Name,
			BuyIn:   p.BuyIn,
			CashOut: p.CashOut,
		}
	}
	return entries
}

// toRPCTransfers converts engine transfers to wire format.
func toRPCTransfers(transfers []models.Transfer) []rpc.Transfer {
	out := make([]rpc.Transfer, len(transfers))
	for i, tr := range transfers {
		out[i] = rpc.Transfer{From: tr.From, To: tr.To, Amount: tr.Amount}
	}
	return out
}

// validationError maps a failed validation result onto a connect error so
// mutating RPCs reject bad input with the status attached.
func validationError(result settle.ValidationResult) *connect.Error {
	if result.Status == settle.StatusUnbalanced {
		return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf(
			"session is not balanced: total buy-in %.2f, total cash-out %.2f",
			result.TotalBuyIn, result.TotalCashOut,
		))
	}
	return connect.NewError(connect.CodeInvalidArgument,
		fmt.Errorf("invalid session: %s", result.Status))
}

// ValidateSession runs the validator and reports the outcome without
// persisting anything. Validation failures are results, not RPC errors: the
// operator corrects the input and retries.
func (s *SessionService) ValidateSession(ctx context.Context, req *connect.Request[rpc.ValidateSessionRequest]) (*connect.Response[rpc.ValidateSessionResponse], error) {
	result, _ := settle.ValidateSession(toRawEntries(req.Msg.Players))

	resp := &rpc.ValidateSessionResponse{Status: result.Status.String()}
	if result.Status == settle.StatusUnbalanced {
		resp.TotalBuyIn = result.TotalBuyIn
		resp.TotalCashOut = result.TotalCashOut
	}
	return connect.NewResponse(resp), nil
}

// Settle validates the entries and returns the computed transfer list
// without persisting anything.
func (s *SessionService) Settle(ctx context.Context, req *connect.Request[rpc.SettleRequest]) (*connect.Response[rpc.SettleResponse], error) {
	result, entries := settle.ValidateSession(toRawEntries(req.Msg.Players))
	if result.Status != settle.StatusOK {
		slog.Warn("Settle rejected", "status", result.Status.String())
		return nil, validationError(result)
	}

	transfers := settle.Settle(entries)
	return connect.NewResponse(&rpc.SettleResponse{
		Transfers: toRPCTransfers(transfers),
	}), nil
}

// CreateSession validates the entries, computes the settlement, and freezes
// both into storage as an immutable session.
func (s *SessionService) CreateSession(ctx context.Context, req *connect.Request[rpc.CreateSessionRequest]) (*connect.Response[rpc.CreateSessionResponse], error) {
	result, entries := settle.ValidateSession(toRawEntries(req.Msg.Players))
	if result.Status != settle.StatusOK {
		slog.Warn("CreateSession rejected", "status", result.Status.String())
		return nil, validationError(result)
	}
	if len(entries) == 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("session needs at least one player"))
	}

	transfers := settle.Settle(entries)

	session := &models.Session{
		PlayedAt:  req.Msg.PlayedAt,
		Players:   entries,
		Transfers: transfers,
	}
	if err := s.store.CreateSession(ctx, session); err != nil {
		slog.Error("CreateSession failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Session created",
		"session_id", session.ID,
		"players", len(session.Players),
		"transfers", len(session.Transfers),
	)

	return connect.NewResponse(&rpc.CreateSessionResponse{
		SessionID: session.ID,
		Transfers: toRPCTransfers(transfers),
	}), nil
}

// GetSession retrieves a stored session by ID.
func (s *SessionService) GetSession(ctx context.Context, req *connect.Request[rpc.GetSessionRequest]) (*connect.Response[rpc.GetSessionResponse], error) {
	if req.Msg.SessionID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("session_id required"))
	}

	session, err := s.store.GetSession(ctx, req.Msg.SessionID)
	if err != nil {
		slog.Error("GetSession failed", "session_id", req.Msg.SessionID, "error", err)
		return nil, connect.NewError(connect.CodeNotFound, err)
	}

	players := make([]rpc.PlayerEntry, len(session.Players))
	for i, p := range session.Players {
		players[i] = rpc.PlayerEntry{
			Name:    p.Name,
			BuyIn:   p.BuyIn,
			CashOut: p.CashOut,
			Balance: p.Balance(),
		}
	}

	return connect.NewResponse(&rpc.GetSessionResponse{
		SessionID: session.ID,
		PlayedAt:  session.PlayedAt,
		CreatedAt: session.CreatedAt,
		Players:   players,
		Transfers: toRPCTransfers(session.Transfers),
	}), nil
}

// ListSessions returns summaries of all stored sessions.
func (s *SessionService) ListSessions(ctx context.Context, req *connect.Request[rpc.ListSessionsRequest]) (*connect.Response[rpc.ListSessionsResponse], error) {
	summaries, err := s.store.ListSessions(ctx)
	if err != nil {
		slog.Error("ListSessions failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	sessions := make([]rpc.SessionSummary, len(summaries))
	for i, sum := range summaries {
		sessions[i] = rpc.SessionSummary{
			SessionID:   sum.ID,
			PlayedAt:    sum.PlayedAt,
			PlayerCount: sum.PlayerCount,
			TotalBuyIn:  sum.TotalBuyIn,
		}
	}

	return connect.NewResponse(&rpc.ListSessionsResponse{Sessions: sessions}), nil
}

// DeleteSession removes a stored session wholesale.
func (s *SessionService) DeleteSession(ctx context.Context, req *connect.Request[rpc.DeleteSessionRequest]) (*connect.Response[rpc.DeleteSessionResponse], error) {
	if req.Msg.SessionID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("session_id required"))
	}

	if err := s.store.DeleteSession(ctx, req.Msg.SessionID); err != nil {
		slog.Error("DeleteSession failed", "session_id", req.Msg.SessionID, "error", err)
		return nil, connect.NewError(connect.CodeNotFound, err)
	}

	return connect.NewResponse(&rpc.DeleteSessionResponse{}), nil
}
