// Package rpc defines the Connect bindings for the SessionService: procedure
// names, request/response types, and handler/client constructors. The
// bindings are hand-written against plain structs with a JSON codec instead
// of generated protobuf code, but keep the same shape as generated
// connectrpc bindings so the service and its callers read the same way.
package rpc

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// SessionServiceName is the fully-qualified service name.
const SessionServiceName = "pokertally.v1.SessionService"

// Procedure paths for the SessionService RPCs.
const (
	SessionServiceValidateSessionProcedure = "/" + SessionServiceName + "/ValidateSession"
	SessionServiceSettleProcedure          = "/" + SessionServiceName + "/Settle"
	SessionServiceCreateSessionProcedure   = "/" + SessionServiceName + "/CreateSession"
	SessionServiceGetSessionProcedure      = "/" + SessionServiceName + "/GetSession"
	SessionServiceListSessionsProcedure    = "/" + SessionServiceName + "/ListSessions"
	SessionServiceDeleteSessionProcedure   = "/" + SessionServiceName + "/DeleteSession"
)

// SessionServiceHandler is the server-side interface for the SessionService.
type SessionServiceHandler interface {
	ValidateSession(context.Context, *connect.Request[ValidateSessionRequest]) (*connect.Response[ValidateSessionResponse], error)
	Settle(context.Context, *connect.Request[SettleRequest]) (*connect.Response[SettleResponse], error)
	CreateSession(context.Context, *connect.Request[CreateSessionRequest]) (*connect.Response[CreateSessionResponse], error)
	GetSession(context.Context, *connect.Request[GetSessionRequest]) (*connect.Response[GetSessionResponse], error)
	ListSessions(context.Context, *connect.Request[ListSessionsRequest]) (*connect.Response[ListSessionsResponse], error)
	DeleteSession(context.Context, *connect.Request[DeleteSessionRequest]) (*connect.Response[DeleteSessionResponse], error)
}

// NewSessionServiceHandler builds an HTTP handler for the service. It
// returns the path on which to mount the handler and the handler itself.
func NewSessionServiceHandler(svc SessionServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(SessionServiceValidateSessionProcedure, connect.NewUnaryHandler(
		SessionServiceValidateSessionProcedure, svc.ValidateSession, opts...,
	))
	mux.Handle(SessionServiceSettleProcedure, connect.NewUnaryHandler(
		SessionServiceSettleProcedure, svc.Settle, opts...,
	))
	mux.Handle(SessionServiceCreateSessionProcedure, connect.NewUnaryHandler(
		SessionServiceCreateSessionProcedure, svc.CreateSession, opts...,
	))
	mux.Handle(SessionServiceGetSessionProcedure, connect.NewUnaryHandler(
		SessionServiceGetSessionProcedure, svc.GetSession, opts...,
	))
	mux.Handle(SessionServiceListSessionsProcedure, connect.NewUnaryHandler(
		SessionServiceListSessionsProcedure, svc.ListSessions, opts...,
	))
	mux.Handle(SessionServiceDeleteSessionProcedure, connect.NewUnaryHandler(
		SessionServiceDeleteSessionProcedure, svc.DeleteSession, opts...,
	))

	return "/" + SessionServiceName + "/", mux
}

// SessionServiceClient is the client-side interface for the SessionService.
type SessionServiceClient interface {
	ValidateSession(context.Context, *connect.Request[ValidateSessionRequest]) (*connect.Response[ValidateSessionResponse], error)
	Settle(context.Context, *connect.Request[SettleRequest]) (*connect.Response[SettleResponse], error)
	CreateSession(context.Context, *connect.Request[CreateSessionRequest]) (*connect.Response[CreateSessionResponse], error)
	GetSession(context.Context, *connect.Request[GetSessionRequest]) (*connect.Response[GetSessionResponse], error)
	ListSessions(context.Context, *connect.Request[ListSessionsRequest]) (*connect.Response[ListSessionsResponse], error)
	DeleteSession(context.Context, *connect.Request[DeleteSessionRequest]) (*connect.Response[DeleteSessionResponse], error)
}

// NewSessionServiceClient builds a client for the service reachable at
// baseURL.
func NewSessionServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SessionServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)

	return &sessionServiceClient{
		validateSession: connect.NewClient[ValidateSessionRequest, ValidateSessionResponse](
			httpClient, baseURL+SessionServiceValidateSessionProcedure, opts...,
		),
		settle: connect.NewClient[SettleRequest, SettleResponse](
			httpClient, baseURL+SessionServiceSettleProcedure, opts...,
		),
		createSession: connect.NewClient[CreateSessionRequest, CreateSessionResponse](
			httpClient, baseURL+SessionServiceCreateSessionProcedure, opts...,
		),
		getSession: connect.NewClient[GetSessionRequest, GetSessionResponse](
			httpClient, baseURL+SessionServiceGetSessionProcedure, opts...,
		),
		listSessions: connect.NewClient[ListSessionsRequest, ListSessionsResponse](
			httpClient, baseURL+SessionServiceListSessionsProcedure, opts...,
		),
		deleteSession: connect.NewClient[DeleteSessionRequest, DeleteSessionResponse](
			httpClient, baseURL+SessionServiceDeleteSessionProcedure, opts...,
		),
	}
}

type sessionServiceClient struct {
	validateSession *connect.Client[ValidateSessionRequest, ValidateSessionResponse]
	settle          *connect.Client[SettleRequest, SettleResponse]
	createSession   *connect.Client[CreateSessionRequest, CreateSessionResponse]
	getSession      *connect.Client[GetSessionRequest, GetSessionResponse]
	listSessions    *connect.Client[ListSessionsRequest, ListSessionsResponse]
	deleteSession   *connect.Client[DeleteSessionRequest, DeleteSessionResponse]
}

func (c *sessionServiceClient) ValidateSession(ctx context.Context, req *connect.Request[ValidateSessionRequest]) (*connect.Response[ValidateSessionResponse], error) {
	return c.validateSession.CallUnary(ctx, req)
}

func (c *sessionServiceClient) Settle(ctx context.Context, req *connect.Request[SettleRequest]) (*connect.Response[SettleResponse], error) {
	return c.settle.CallUnary(ctx, req)
}

func (c *sessionServiceClient) CreateSession(ctx context.Context, req *connect.Request[CreateSessionRequest]) (*connect.Response[CreateSessionResponse], error) {
	return c.createSession.CallUnary(ctx, req)
}

func (c *sessionServiceClient) GetSession(ctx context.Context, req *connect.Request[GetSessionRequest]) (*connect.Response[GetSessionResponse], error) {
	return c.getSession.CallUnary(ctx, req)
}

func (c *sessionServiceClient) ListSessions(ctx context.Context, req *connect.Request[ListSessionsRequest]) (*connect.Response[ListSessionsResponse], error) {
	return c.listSessions.CallUnary(ctx, req)
}

func (c *sessionServiceClient) DeleteSession(ctx context.Context, req *connect.Request[DeleteSessionRequest]) (*connect.Response[DeleteSessionResponse], error) {
	return c.deleteSession.CallUnary(ctx, req)
}
