package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type authSessionService struct {
	gateway    adapter.AuthGateway
	redirectTo string
	providers  []string
	now        func() time.Time
	logger     *logger.Logger

	mu           sync.RWMutex
	session      *models.Session
	initializing bool
	activated    bool
	changes      int // gateway notifications seen
	unsubscribe  func()

	subsMu  sync.Mutex
	subs    map[int]func(*models.Session)
	nextSub int
}

// NewClientAuthService returns a ClientAuthService over gateway. Sign-in
// flows return to redirectTo. When providers is non-empty, OAuth sign-in
// is limited to the listed providers.
func NewClientAuthService(gateway adapter.AuthGateway, redirectTo string, providers []string, log *logger.Logger) ClientAuthService {
	return &authSessionService{
		gateway:      gateway,
		redirectTo:   redirectTo,
		providers:    providers,
		now:          time.Now,
		logger:       log,
		initializing: true,
		subs:         make(map[int]func(*models.Session)),
	}
}

func (a *authSessionService) Activate(ctx context.Context) error {
	a.mu.Lock()
	if a.activated {
		a.mu.Unlock()
		return nil
	}
	a.activated = true
	seen := a.changes
	a.mu.Unlock()

	unsubscribe := a.gateway.Subscribe(a.onChange)

	a.mu.Lock()
	a.unsubscribe = unsubscribe
	a.mu.Unlock()

	session, err := a.gateway.GetSession(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "authSessionService.Activate").Msg("session check failed, continuing signed out")
		session = nil
	}

	a.mu.Lock()
	// a notification during GetSession is newer than its result
	if a.changes == seen {
		a.session = session
	}
	a.initializing = false
	a.mu.Unlock()

	a.publish(a.Session())

	return mapAuthError(err)
}

func (a *authSessionService) onChange(event models.AuthEvent, session *models.Session) {
	a.logger.Debug().Str("func", "authSessionService.onChange").Str("event", string(event)).
		Bool("signed_in", session != nil).Msg("session changed")

	a.mu.Lock()
	a.session = session
	a.initializing = false
	a.changes++
	a.mu.Unlock()

	a.publish(session)
}

func (a *authSessionService) Close() {
	a.mu.Lock()
	unsubscribe := a.unsubscribe
	a.unsubscribe = nil
	a.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

func (a *authSessionService) Session() *models.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.session == nil {
		return nil
	}
	s := *a.session
	if a.session.User != nil {
		u := *a.session.User
		s.User = &u
	}
	return &s
}

func (a *authSessionService) User() *models.SessionUser {
	if s := a.Session(); s != nil {
		return s.User
	}
	return nil
}

func (a *authSessionService) Initializing() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.initializing
}

func (a *authSessionService) Configured() bool {
	return a.gateway.Configured()
}

func (a *authSessionService) Subscribe(fn func(*models.Session)) func() {
	a.subsMu.Lock()
	id := a.nextSub
	a.nextSub++
	a.subs[id] = fn
	a.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			a.subsMu.Lock()
			delete(a.subs, id)
			a.subsMu.Unlock()
		})
	}
}

func (a *authSessionService) publish(session *models.Session) {
	a.subsMu.Lock()
	fns := make([]func(*models.Session), 0, len(a.subs))
	for _, fn := range a.subs {
		fns = append(fns, fn)
	}
	a.subsMu.Unlock()

	for _, fn := range fns {
		fn(session)
	}
}

func (a *authSessionService) SignInWithEmail(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}

	return mapAuthError(a.gateway.SignInWithEmail(ctx, email, a.redirectTo))
}

func (a *authSessionService) SignInWithOAuth(ctx context.Context, provider string) (string, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if provider == "" {
		provider = adapter.DefaultOAuthProvider
	}
	if len(a.providers) > 0 && !slices.Contains(a.providers, provider) {
		return "", fmt.Errorf("%w: provider %q is not enabled", ErrValidation, provider)
	}

	authURL, err := a.gateway.SignInWithOAuth(ctx, provider, a.redirectTo)
	if err != nil {
		return "", mapAuthError(err)
	}
	return authURL, nil
}

func (a *authSessionService) SignOut(ctx context.Context) error {
	return mapAuthError(a.gateway.SignOut(ctx))
}

func (a *authSessionService) CompleteSignIn(ctx context.Context, callback models.AuthCallback) error {
	var err error
	switch {
	case callback.Error != "":
		return fmt.Errorf("%w: %s: %s", ErrAuth, callback.Error, callback.ErrorDescription)
	case callback.Code != "":
		_, err = a.gateway.ExchangeCode(ctx, callback.Code)
	case callback.TokenHash != "":
		_, err = a.gateway.VerifyMagicLink(ctx, callback.TokenHash, callback.Type)
	default:
		return fmt.Errorf("%w: callback carries neither code nor token hash", ErrAuth)
	}

	if err != nil {
		a.logger.Err(err).Str("func", "authSessionService.CompleteSignIn").Msg("sign-in could not be completed")
		return mapAuthError(err)
	}
	return nil
}

func (a *authSessionService) RefreshSession(ctx context.Context, margin time.Duration) (bool, error) {
	session := a.Session()
	if session == nil || !session.ExpiresWithin(a.now(), margin) {
		return false, nil
	}

	if _, err := a.gateway.RefreshSession(ctx); err != nil {
		return false, mapAuthError(err)
	}
	return true, nil
}

func (a *authSessionService) CurrentUser(ctx context.Context) (*models.SessionUser, error) {
	user, err := a.gateway.GetUser(ctx)
	if err != nil {
		return nil, mapAuthError(err)
	}
	return user, nil
}
