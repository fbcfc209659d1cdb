package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-resty/resty/v2"
)

const authPathPrefix = "/auth/v1"

// DefaultOAuthProvider is used when SignInWithOAuth gets no provider.
const DefaultOAuthProvider = "github"

type goTrueAuthGateway struct {
	client  *utils.HTTPClient
	baseURL string
	key     string
	storage SessionStorage
	now     func() time.Time

	mu       sync.RWMutex
	session  *models.Session
	restored bool
	verifier string

	subsMu  sync.Mutex
	subs    map[uint64]func(models.AuthEvent, *models.Session)
	nextSub uint64

	logger *logger.Logger
}

// GoTrueAuthGateway is the GoTrue implementation of [AuthGateway]. It also
// serves as the [TokenSource] of the data gateways.
type GoTrueAuthGateway interface {
	AuthGateway
	TokenSource
}

// NewGoTrueAuthGateway constructs the auth gateway of a Supabase project.
// storage may be nil, in which case sessions live only in memory.
func NewGoTrueAuthGateway(cfg config.ClientRemote, storage SessionStorage, log *logger.Logger) (GoTrueAuthGateway, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote url: %w", err)
	}

	return &goTrueAuthGateway{
		client:  utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		baseURL: baseURL,
		key:     cfg.Key,
		storage: storage,
		now:     time.Now,
		subs:    make(map[uint64]func(models.AuthEvent, *models.Session)),
		logger:  log,
	}, nil
}

func (g *goTrueAuthGateway) Configured() bool { return true }

func (g *goTrueAuthGateway) request(ctx context.Context) *resty.Request {
	return g.client.R().
		SetContext(ctx).
		SetHeader(headerAPIKey, g.key).
		SetHeader("Content-Type", "application/json")
}

// AccessToken implements [TokenSource].
func (g *goTrueAuthGateway) AccessToken() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.session == nil {
		return ""
	}
	return g.session.AccessToken
}

func (g *goTrueAuthGateway) current() *models.Session {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return cloneSession(g.session)
}

func (g *goTrueAuthGateway) GetSession(ctx context.Context) (*models.Session, error) {
	g.restore(ctx)

	session := g.current()
	if session == nil {
		return nil, nil
	}

	if session.ExpiresWithin(g.now(), 0) {
		refreshed, err := g.RefreshSession(ctx)
		if err != nil {
			return nil, fmt.Errorf("refresh expired session: %w", err)
		}
		return refreshed, nil
	}

	return session, nil
}

// restore loads the persisted session once.
func (g *goTrueAuthGateway) restore(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.restored || g.storage == nil {
		g.restored = true
		return
	}
	g.restored = true

	session, err := g.storage.Load(ctx)
	if err != nil {
		g.logger.Warn().Err(err).Str("func", "goTrueAuthGateway.restore").Msg("stored session could not be loaded")
		return
	}
	g.session = session
}

func (g *goTrueAuthGateway) Subscribe(fn func(models.AuthEvent, *models.Session)) func() {
	g.subsMu.Lock()
	id := g.nextSub
	g.nextSub++
	g.subs[id] = fn
	g.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			g.subsMu.Lock()
			delete(g.subs, id)
			g.subsMu.Unlock()
		})
	}
}

func (g *goTrueAuthGateway) notify(event models.AuthEvent, session *models.Session) {
	g.subsMu.Lock()
	fns := make([]func(models.AuthEvent, *models.Session), 0, len(g.subs))
	for _, fn := range g.subs {
		fns = append(fns, fn)
	}
	g.subsMu.Unlock()

	for _, fn := range fns {
		fn(event, cloneSession(session))
	}
}

// setSession stores, persists and announces session. A nil session signs
// the user out locally.
func (g *goTrueAuthGateway) setSession(ctx context.Context, event models.AuthEvent, session *models.Session) {
	g.mu.Lock()
	g.session = cloneSession(session)
	g.restored = true
	g.mu.Unlock()

	if g.storage != nil {
		var err error
		if session == nil {
			err = g.storage.Clear(ctx)
		} else {
			err = g.storage.Save(ctx, session)
		}
		if err != nil {
			g.logger.Warn().Err(err).Str("func", "goTrueAuthGateway.setSession").Msg("session could not be persisted")
		}
	}

	g.notify(event, session)
}

func (g *goTrueAuthGateway) newVerifier() (utils.PKCE, error) {
	pkce, err := utils.NewPKCE()
	if err != nil {
		return utils.PKCE{}, err
	}

	g.mu.Lock()
	g.verifier = pkce.Verifier
	g.mu.Unlock()

	return pkce, nil
}

type otpRequest struct {
	Email               string `json:"email"`
	CreateUser          bool   `json:"create_user"`
	CodeChallenge       string `json:"code_challenge"`
	CodeChallengeMethod string `json:"code_challenge_method"`
}

func (g *goTrueAuthGateway) SignInWithEmail(ctx context.Context, email, redirectTo string) error {
	pkce, err := g.newVerifier()
	if err != nil {
		return err
	}

	req := g.request(ctx).
		SetBody(otpRequest{
			Email:               strings.TrimSpace(email),
			CreateUser:          true,
			CodeChallenge:       pkce.Challenge,
			CodeChallengeMethod: utils.ChallengeMethod,
		})
	if redirectTo != "" {
		req.SetQueryParam("redirect_to", redirectTo)
	}

	resp, err := req.Post(authPathPrefix + "/otp")
	if err != nil {
		return transportError("sign in with email", err)
	}
	return mapHTTPError(resp)
}

func (g *goTrueAuthGateway) SignInWithOAuth(_ context.Context, provider, redirectTo string) (string, error) {
	if provider == "" {
		provider = DefaultOAuthProvider
	}

	pkce, err := g.newVerifier()
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("provider", provider)
	params.Set("code_challenge", pkce.Challenge)
	params.Set("code_challenge_method", utils.ChallengeMethod)
	if redirectTo != "" {
		params.Set("redirect_to", redirectTo)
	}

	return g.baseURL + authPathPrefix + "/authorize?" + params.Encode(), nil
}

type pkceExchangeRequest struct {
	AuthCode     string `json:"auth_code"`
	CodeVerifier string `json:"code_verifier"`
}

func (g *goTrueAuthGateway) ExchangeCode(ctx context.Context, code string) (*models.Session, error) {
	g.mu.RLock()
	verifier := g.verifier
	g.mu.RUnlock()
	if verifier == "" {
		return nil, ErrMissingVerifier
	}

	session, err := g.tokenRequest(ctx, "pkce", pkceExchangeRequest{AuthCode: code, CodeVerifier: verifier})
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	g.verifier = ""
	g.mu.Unlock()

	g.setSession(ctx, models.AuthEventSignedIn, session)
	return cloneSession(session), nil
}

type verifyRequest struct {
	Type      string `json:"type"`
	TokenHash string `json:"token_hash"`
}

func (g *goTrueAuthGateway) VerifyMagicLink(ctx context.Context, tokenHash, linkType string) (*models.Session, error) {
	if linkType == "" {
		linkType = "magiclink"
	}

	var session models.Session
	resp, err := g.request(ctx).
		SetBody(verifyRequest{Type: linkType, TokenHash: tokenHash}).
		SetResult(&session).
		Post(authPathPrefix + "/verify")
	if err != nil {
		return nil, transportError("verify magic link", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	normalized, err := g.normalizeSession(&session)
	if err != nil {
		return nil, err
	}

	g.setSession(ctx, models.AuthEventSignedIn, normalized)
	return cloneSession(normalized), nil
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (g *goTrueAuthGateway) RefreshSession(ctx context.Context) (*models.Session, error) {
	current := g.current()
	if current == nil || current.RefreshToken == "" {
		return nil, ErrNoSession
	}

	session, err := g.tokenRequest(ctx, "refresh_token", refreshRequest{RefreshToken: current.RefreshToken})
	if err != nil {
		// A rejected refresh token will never work again.
		if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrUnauthorized) {
			g.setSession(ctx, models.AuthEventSignedOut, nil)
		}
		return nil, err
	}

	g.setSession(ctx, models.AuthEventTokenRefreshed, session)
	return cloneSession(session), nil
}

func (g *goTrueAuthGateway) tokenRequest(ctx context.Context, grantType string, body any) (*models.Session, error) {
	var session models.Session
	resp, err := g.request(ctx).
		SetQueryParam("grant_type", grantType).
		SetBody(body).
		SetResult(&session).
		Post(authPathPrefix + "/token")
	if err != nil {
		return nil, transportError("token "+grantType, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return g.normalizeSession(&session)
}

// normalizeSession fills expiry and user from the access token claims when
// the response left them out.
func (g *goTrueAuthGateway) normalizeSession(session *models.Session) (*models.Session, error) {
	if session.AccessToken == "" {
		return nil, fmt.Errorf("%w: response carries no access token", ErrBadRequest)
	}

	if session.ExpiresAt == 0 && session.ExpiresIn > 0 {
		session.ExpiresAt = g.now().Add(time.Duration(session.ExpiresIn) * time.Second).Unix()
	}

	if session.ExpiresAt == 0 || session.User == nil || session.User.ID == "" {
		claims, err := utils.ParseAccessTokenClaims(session.AccessToken)
		if err != nil {
			g.logger.Debug().Err(err).Str("func", "goTrueAuthGateway.normalizeSession").Msg("access token claims unreadable")
			return session, nil
		}
		if session.ExpiresAt == 0 && !claims.ExpiresAt.IsZero() {
			session.ExpiresAt = claims.ExpiresAt.Unix()
		}
		if session.User == nil || session.User.ID == "" {
			session.User = &models.SessionUser{ID: claims.Subject, Email: claims.Email}
		}
	}

	return session, nil
}

func (g *goTrueAuthGateway) SignOut(ctx context.Context) error {
	current := g.current()
	if current == nil {
		return nil
	}

	resp, err := g.request(ctx).
		SetAuthToken(current.AccessToken).
		Post(authPathPrefix + "/logout")
	if err != nil {
		return transportError("sign out", err)
	}
	if err = mapHTTPError(resp); err != nil {
		// The token is already unusable, forget it locally anyway.
		if !errors.Is(err, ErrUnauthorized) && !errors.Is(err, ErrForbidden) && !errors.Is(err, ErrNotFound) {
			return err
		}
	}

	g.setSession(ctx, models.AuthEventSignedOut, nil)
	return nil
}

func (g *goTrueAuthGateway) GetUser(ctx context.Context) (*models.SessionUser, error) {
	current := g.current()
	if current == nil {
		return nil, ErrNoSession
	}

	var user models.SessionUser
	resp, err := g.request(ctx).
		SetAuthToken(current.AccessToken).
		SetResult(&user).
		Get(authPathPrefix + "/user")
	if err != nil {
		return nil, transportError("get user", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return &user, nil
}

func cloneSession(s *models.Session) *models.Session {
	if s == nil {
		return nil
	}
	c := *s
	if s.User != nil {
		u := *s.User
		c.User = &u
	}
	return &c
}
