// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const testRedirect = "http://localhost:54321/auth/callback"

func newTestAuthSvc(t *testing.T, providers ...string) (*authSessionService, *mock.MockAuthGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := mock.NewMockAuthGateway(ctrl)

	svc := NewClientAuthService(gw, testRedirect, providers, logger.Nop()).(*authSessionService)
	return svc, gw
}

func signedIn(userID string) *models.Session {
	return &models.Session{
		AccessToken:  "access-" + userID,
		RefreshToken: "refresh-" + userID,
		ExpiresAt:    t0.Add(time.Hour).Unix(),
		User:         &models.SessionUser{ID: userID, Email: userID + "@example.com"},
	}
}

// ── Activate / Close ─────────────────────────────────────────────────────────

func TestAuthSessionService_Activate(t *testing.T) {
	svc, gw := newTestAuthSvc(t)
	session := signedIn("u1")

	var onChange func(models.AuthEvent, *models.Session)
	unsubscribed := 0

	gomock.InOrder(
		gw.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(fn func(models.AuthEvent, *models.Session)) func() {
			onChange = fn
			return func() { unsubscribed++ }
		}),
		gw.EXPECT().GetSession(gomock.Any()).Return(session, nil),
	)

	require.True(t, svc.Initializing())
	require.NoError(t, svc.Activate(context.Background()))

	assert.False(t, svc.Initializing())
	assert.Equal(t, session, svc.Session())
	assert.Equal(t, "u1", svc.User().ID)

	// second activation is a no-op
	require.NoError(t, svc.Activate(context.Background()))

	require.NotNil(t, onChange)
	onChange(models.AuthEventSignedOut, nil)
	assert.Nil(t, svc.Session())
	assert.Nil(t, svc.User())

	next := signedIn("u2")
	onChange(models.AuthEventSignedIn, next)
	assert.Equal(t, next, svc.Session())

	svc.Close()
	svc.Close()
	assert.Equal(t, 1, unsubscribed)
}

func TestAuthSessionService_Activate_NotificationDuringSessionCheckWins(t *testing.T) {
	svc, gw := newTestAuthSvc(t)
	stale := signedIn("u1")
	fresh := signedIn("u2")

	var onChange func(models.AuthEvent, *models.Session)
	gw.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(fn func(models.AuthEvent, *models.Session)) func() {
		onChange = fn
		return func() {}
	})
	gw.EXPECT().GetSession(gomock.Any()).DoAndReturn(func(context.Context) (*models.Session, error) {
		// the callback listener completes a sign-in meanwhile
		onChange(models.AuthEventSignedIn, fresh)
		return stale, nil
	})

	var published []*models.Session
	svc.Subscribe(func(s *models.Session) { published = append(published, s) })

	require.NoError(t, svc.Activate(context.Background()))

	assert.Equal(t, fresh, svc.Session())
	require.NotEmpty(t, published)
	assert.Equal(t, "u2", published[len(published)-1].User.ID)
}

func TestAuthSessionService_Activate_SessionErrorIsSwallowed(t *testing.T) {
	svc, gw := newTestAuthSvc(t)

	gw.EXPECT().GetSession(gomock.Any()).Return(nil, fmt.Errorf("%w: refresh token revoked", adapter.ErrBadRequest))
	gw.EXPECT().Subscribe(gomock.Any()).Return(func() {})

	err := svc.Activate(context.Background())

	assert.ErrorIs(t, err, ErrAuth)
	assert.ErrorIs(t, err, adapter.ErrBadRequest)
	assert.Nil(t, svc.Session())
	assert.False(t, svc.Initializing())
}

func TestAuthSessionService_Subscribe(t *testing.T) {
	svc, gw := newTestAuthSvc(t)

	var onChange func(models.AuthEvent, *models.Session)
	gw.EXPECT().GetSession(gomock.Any()).Return(nil, nil)
	gw.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(fn func(models.AuthEvent, *models.Session)) func() {
		onChange = fn
		return func() {}
	})

	var seen []*models.Session
	unsubscribe := svc.Subscribe(func(s *models.Session) { seen = append(seen, s) })

	require.NoError(t, svc.Activate(context.Background()))
	onChange(models.AuthEventSignedIn, signedIn("u1"))
	unsubscribe()
	onChange(models.AuthEventSignedOut, nil)

	require.Len(t, seen, 2)
	assert.Nil(t, seen[0])
	assert.Equal(t, "u1", seen[1].User.ID)
}

// ── Sign-in / sign-out ───────────────────────────────────────────────────────

func TestAuthSessionService_SignInWithEmail(t *testing.T) {
	svc, gw := newTestAuthSvc(t)

	gw.EXPECT().SignInWithEmail(gomock.Any(), "me@example.com", testRedirect).Return(nil)
	require.NoError(t, svc.SignInWithEmail(context.Background(), "  me@example.com "))

	gwErr := fmt.Errorf("%w: email rate limit exceeded", adapter.ErrRateLimited)
	gw.EXPECT().SignInWithEmail(gomock.Any(), "me@example.com", testRedirect).Return(gwErr)

	err := svc.SignInWithEmail(context.Background(), "me@example.com")
	assert.ErrorIs(t, err, ErrAuth)
	assert.ErrorIs(t, err, gwErr, "gateway error must reach the caller")
}

func TestAuthSessionService_SignInWithEmail_Blank(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	err := svc.SignInWithEmail(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthSessionService_SignInWithOAuth(t *testing.T) {
	svc, gw := newTestAuthSvc(t, "github", "google")

	gw.EXPECT().SignInWithOAuth(gomock.Any(), "github", testRedirect).Return("https://x/authorize?provider=github", nil)
	gw.EXPECT().SignInWithOAuth(gomock.Any(), "google", testRedirect).Return("https://x/authorize?provider=google", nil)

	u, err := svc.SignInWithOAuth(context.Background(), "")
	require.NoError(t, err)
	assert.Contains(t, u, "provider=github")

	u, err = svc.SignInWithOAuth(context.Background(), "Google")
	require.NoError(t, err)
	assert.Contains(t, u, "provider=google")

	_, err = svc.SignInWithOAuth(context.Background(), "gitlab")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthSessionService_SignOut(t *testing.T) {
	svc, gw := newTestAuthSvc(t)

	gw.EXPECT().SignOut(gomock.Any()).Return(nil)
	require.NoError(t, svc.SignOut(context.Background()))

	gw.EXPECT().SignOut(gomock.Any()).Return(adapter.ErrUnavailable)
	err := svc.SignOut(context.Background())
	assert.ErrorIs(t, err, ErrAuth)
	assert.ErrorIs(t, err, adapter.ErrUnavailable)
}

func TestAuthSessionService_CompleteSignIn(t *testing.T) {
	tests := []struct {
		name     string
		callback models.AuthCallback
		expect   func(gw *mock.MockAuthGateway)
		wantErr  bool
	}{
		{
			name:     "pkce code",
			callback: models.AuthCallback{Code: "abc"},
			expect: func(gw *mock.MockAuthGateway) {
				gw.EXPECT().ExchangeCode(gomock.Any(), "abc").Return(signedIn("u1"), nil)
			},
		},
		{
			name:     "magic link hash",
			callback: models.AuthCallback{TokenHash: "h", Type: "magiclink"},
			expect: func(gw *mock.MockAuthGateway) {
				gw.EXPECT().VerifyMagicLink(gomock.Any(), "h", "magiclink").Return(signedIn("u1"), nil)
			},
		},
		{
			name:     "exchange fails",
			callback: models.AuthCallback{Code: "abc"},
			expect: func(gw *mock.MockAuthGateway) {
				gw.EXPECT().ExchangeCode(gomock.Any(), "abc").Return(nil, adapter.ErrMissingVerifier)
			},
			wantErr: true,
		},
		{
			name:     "provider error",
			callback: models.AuthCallback{Error: "access_denied", ErrorDescription: "user cancelled"},
			expect:   func(*mock.MockAuthGateway) {},
			wantErr:  true,
		},
		{
			name:     "empty",
			callback: models.AuthCallback{},
			expect:   func(*mock.MockAuthGateway) {},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, gw := newTestAuthSvc(t)
			tt.expect(gw)

			err := svc.CompleteSignIn(context.Background(), tt.callback)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrAuth)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ── RefreshSession / CurrentUser ─────────────────────────────────────────────

func TestAuthSessionService_RefreshSession(t *testing.T) {
	svc, gw := newTestAuthSvc(t)
	svc.now = func() time.Time { return t0 }

	refreshed, err := svc.RefreshSession(context.Background(), time.Minute)
	require.NoError(t, err)
	assert.False(t, refreshed, "signed out: nothing to refresh")

	svc.session = signedIn("u1") // expires at t0+1h

	refreshed, err = svc.RefreshSession(context.Background(), time.Minute)
	require.NoError(t, err)
	assert.False(t, refreshed)

	gw.EXPECT().RefreshSession(gomock.Any()).Return(signedIn("u1"), nil)
	refreshed, err = svc.RefreshSession(context.Background(), 2*time.Hour)
	require.NoError(t, err)
	assert.True(t, refreshed)

	gw.EXPECT().RefreshSession(gomock.Any()).Return(nil, adapter.ErrUnauthorized)
	_, err = svc.RefreshSession(context.Background(), 2*time.Hour)
	assert.ErrorIs(t, err, ErrAuth)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestAuthSessionService_CurrentUser(t *testing.T) {
	svc, gw := newTestAuthSvc(t)

	gw.EXPECT().GetUser(gomock.Any()).Return(&models.SessionUser{ID: "u1"}, nil)
	gw.EXPECT().GetUser(gomock.Any()).Return(nil, adapter.ErrNoSession)
	gw.EXPECT().Configured().Return(true)

	user, err := svc.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	_, err = svc.CurrentUser(context.Background())
	assert.True(t, errors.Is(err, adapter.ErrNoSession))

	assert.True(t, svc.Configured())
}
