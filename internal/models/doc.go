// Package models defines the core domain models for pokertally.
//
// A Session is one recorded poker game: the players with their buy-in and
// cash-out amounts, plus the transfer list computed when the session was
// created. Sessions are frozen at creation time — there are no partial
// edits, a session is deleted wholesale by id.
//
// Players are identified by display name within a session (names are unique
// per session after trimming and case folding). There are no user accounts;
// each session is self-contained and settled independently.
package models
