// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuthEvent names a session transition reported by the auth gateway.
type AuthEvent string

const (
	AuthEventInitialSession AuthEvent = "INITIAL_SESSION"
	AuthEventSignedIn       AuthEvent = "SIGNED_IN"
	AuthEventSignedOut      AuthEvent = "SIGNED_OUT"
	AuthEventTokenRefreshed AuthEvent = "TOKEN_REFRESHED"
)

// SessionUser is the authenticated principal.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

// Session is an authenticated session issued by the auth backend.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in,omitempty"`
	// ExpiresAt is a unix timestamp in seconds.
	ExpiresAt int64        `json:"expires_at,omitempty"`
	User      *SessionUser `json:"user"`
}

// Expiry returns ExpiresAt as time. Zero when unknown.
func (s *Session) Expiry() time.Time {
	if s == nil || s.ExpiresAt == 0 {
		return time.Time{}
	}
	return time.Unix(s.ExpiresAt, 0)
}

// ExpiresWithin reports whether the access token expires before now+margin.
// Sessions without a known expiry never expire.
func (s *Session) ExpiresWithin(now time.Time, margin time.Duration) bool {
	exp := s.Expiry()
	if exp.IsZero() {
		return false
	}
	return !now.Add(margin).Before(exp)
}

// UserID returns the id of the session user or nil.
func (s *Session) UserID() *string {
	if s == nil || s.User == nil || s.User.ID == "" {
		return nil
	}
	id := s.User.ID
	return &id
}

// AuthCallback holds the query parameters delivered to the sign-in redirect
// target.
type AuthCallback struct {
	// Code is a PKCE authorization code.
	Code string
	// TokenHash and Type come from magic links verified by hash.
	TokenHash string
	Type      string

	Error            string
	ErrorDescription string
}
