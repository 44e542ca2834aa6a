package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/kitchenhub/internal/adapter"
	"github.com/MKhiriev/kitchenhub/internal/logger"
	"github.com/MKhiriev/kitchenhub/models"
)

type tokenService struct {
	provider adapter.AuthProvider
	logger   *logger.Logger

	mu           sync.Mutex
	token        *models.Token
	signInFlight bool

	// now is replaceable in tests
	now func() time.Time
}

// NewTokenService creates the in-memory token holder. provider may be nil
// when no OAuth client identity is configured; every operation then reports
// the unconfigured state.
func NewTokenService(provider adapter.AuthProvider, log *logger.Logger) TokenService {
	return &tokenService{
		provider: provider,
		logger:   log,
		now:      time.Now,
	}
}

func (t *tokenService) Configured() bool {
	return t.provider != nil
}

func (t *tokenService) SignIn(ctx context.Context) (models.Token, error) {
	if t.provider == nil {
		return models.Token{}, ErrSyncNotConfigured
	}

	t.mu.Lock()
	if t.signInFlight {
		t.mu.Unlock()
		return models.Token{}, ErrSignInInFlight
	}
	t.signInFlight = true
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.signInFlight = false
		t.mu.Unlock()
	}()

	provided, err := t.provider.Authorize(ctx)
	if err != nil {
		t.logger.Err(err).Str("func", "tokenService.SignIn").Msg("authorization failed")
		return models.Token{}, fmt.Errorf("authorize: %w", err)
	}

	token := t.buildToken(provided)

	t.mu.Lock()
	t.token = &token
	t.mu.Unlock()

	t.logger.Info().
		Str("func", "tokenService.SignIn").
		Str("email", token.Email).
		Time("expiry", token.Expiry).
		Msg("signed in")

	return token, nil
}

// EnsureToken returns a valid access token, refreshing behind the mutex so
// concurrent callers share a single refresh. The held token is re-checked
// after the lock is taken: another caller may have refreshed it already.
func (t *tokenService) EnsureToken(ctx context.Context) (string, error) {
	if t.provider == nil {
		return "", ErrSyncNotConfigured
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.token.Valid(t.now()) {
		return t.token.AccessToken, nil
	}

	if t.token == nil || t.token.RefreshToken == "" {
		return "", ErrSessionExpired
	}

	provided, err := t.provider.Refresh(ctx, t.token.RefreshToken)
	if err != nil {
		t.logger.Err(err).Str("func", "tokenService.EnsureToken").Msg("silent refresh rejected")
		t.token = nil
		return "", fmt.Errorf("%w: %v", ErrSessionExpired, err)
	}

	refreshed := t.buildToken(provided)
	if refreshed.Email == "" && t.token != nil {
		refreshed.Email = t.token.Email
	}
	t.token = &refreshed

	t.logger.Debug().
		Str("func", "tokenService.EnsureToken").
		Time("expiry", refreshed.Expiry).
		Msg("token refreshed")

	return refreshed.AccessToken, nil
}

func (t *tokenService) CurrentToken() *models.Token {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.token == nil {
		return nil
	}
	held := *t.token
	return &held
}

// SignOut revokes the access token best-effort and always drops the held
// token: a failed revocation must not keep the user signed in.
func (t *tokenService) SignOut(ctx context.Context) {
	t.mu.Lock()
	held := t.token
	t.token = nil
	t.mu.Unlock()

	if t.provider == nil || held == nil || held.AccessToken == "" {
		return
	}

	if err := t.provider.Revoke(ctx, held.AccessToken); err != nil {
		t.logger.Warn().Err(err).Str("func", "tokenService.SignOut").Msg("token revocation failed")
	}
}

func (t *tokenService) buildToken(provided models.ProviderToken) models.Token {
	token := models.Token{
		AccessToken:  provided.AccessToken,
		RefreshToken: provided.RefreshToken,
		Expiry:       t.now().Add(time.Duration(provided.ExpiresIn) * time.Second),
	}
	if provided.IDToken != "" {
		if email, err := adapter.EmailFromIDToken(provided.IDToken); err == nil {
			token.Email = email
		}
	}
	return token
}
