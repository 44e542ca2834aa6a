package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"github.com/MKhiriev/kitchenhub/internal/config"
	"github.com/MKhiriev/kitchenhub/internal/logger"
	"github.com/MKhiriev/kitchenhub/internal/utils"
	"github.com/MKhiriev/kitchenhub/models"
)

// Default provider endpoints. Overridable on the struct for tests.
const (
	defaultAuthURL   = "https://accounts.google.com/o/oauth2/v2/auth"
	defaultTokenURL  = "https://oauth2.googleapis.com/token"
	defaultRevokeURL = "https://oauth2.googleapis.com/revoke"

	// driveFileScope grants access only to files this application created.
	driveFileScope = "https://www.googleapis.com/auth/drive.file"
)

var (
	// ErrNotConfigured is returned when no OAuth client identity was
	// supplied. The rest of the application keeps working locally; only
	// sync features are unavailable.
	ErrNotConfigured = errors.New("oauth client identity is not configured")

	// ErrAuthDenied is returned when the provider reports an error during
	// the consent flow (e.g. the user rejected the consent screen).
	ErrAuthDenied = errors.New("authorization denied by provider")
)

type oauthProvider struct {
	oauthCfg  *oauth2.Config
	client    *utils.HTTPClient
	revokeURL string

	// onConsentURL is invoked with the consent page URL once the loopback
	// listener is ready. Defaults to a log entry; the UI replaces it.
	onConsentURL func(url string)

	logger *logger.Logger
}

// NewOAuthProvider constructs an [AuthProvider] for the configured client
// identity, using the authorization-code flow with PKCE and a loopback
// redirect listener.
//
// Fails with [ErrNotConfigured] when cfg.ClientID is empty.
func NewOAuthProvider(cfg config.ClientAuth, log *logger.Logger) (AuthProvider, error) {
	if cfg.ClientID == "" {
		return nil, ErrNotConfigured
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  defaultAuthURL,
			TokenURL: defaultTokenURL,
		},
		RedirectURL: fmt.Sprintf("http://127.0.0.1:%d/callback", cfg.RedirectPort),
		Scopes:      []string{driveFileScope, "openid", "email"},
	}

	p := &oauthProvider{
		oauthCfg:  oauthCfg,
		client:    utils.NewHTTPClient(),
		revokeURL: defaultRevokeURL,
		logger:    log,
	}
	p.onConsentURL = func(url string) {
		log.Info().Str("url", url).Msg("open the consent page to sign in")
	}

	return p, nil
}

// SetConsentURLHandler replaces the callback that surfaces the consent page
// URL to the user. Must be called before Authorize.
func (p *oauthProvider) SetConsentURLHandler(fn func(url string)) {
	if fn != nil {
		p.onConsentURL = fn
	}
}

// Authorize implements [AuthProvider]. It starts the loopback listener,
// hands the consent URL to the UI, waits for the provider to redirect back
// with an authorization code, and exchanges the code for token material.
func (p *oauthProvider) Authorize(ctx context.Context) (models.ProviderToken, error) {
	verifier := oauth2.GenerateVerifier()
	state := oauth2.GenerateVerifier() // random URL-safe string, reused as CSRF state

	listener, err := newLoopbackListener(p.oauthCfg.RedirectURL, state, p.logger)
	if err != nil {
		return models.ProviderToken{}, fmt.Errorf("start redirect listener: %w", err)
	}
	defer listener.Close()

	authURL := p.oauthCfg.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.S256ChallengeOption(verifier),
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
	p.onConsentURL(authURL)

	code, err := listener.WaitForCode(ctx)
	if err != nil {
		return models.ProviderToken{}, err
	}

	tok, err := p.oauthCfg.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return models.ProviderToken{}, fmt.Errorf("%w: %v", ErrAuthDenied, err)
	}

	return providerTokenFromOAuth2(tok), nil
}

// Refresh implements [AuthProvider]. It performs a refresh_token grant
// against the token endpoint without any user interaction.
func (p *oauthProvider) Refresh(ctx context.Context, refreshToken string) (models.ProviderToken, error) {
	if refreshToken == "" {
		return models.ProviderToken{}, errors.New("no refresh token held")
	}

	var tok models.ProviderToken
	resp, err := p.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"client_id":     p.oauthCfg.ClientID,
			"client_secret": p.oauthCfg.ClientSecret,
			"grant_type":    "refresh_token",
			"refresh_token": refreshToken,
		}).
		SetResult(&tok).
		Post(p.oauthCfg.Endpoint.TokenURL)
	if err != nil {
		return models.ProviderToken{}, fmt.Errorf("refresh request: %w", wrapTransportError(err))
	}
	if resp.IsError() {
		return models.ProviderToken{}, fmt.Errorf("refresh rejected: %w",
			&RemoteError{Status: resp.StatusCode(), Body: string(resp.Body())})
	}

	// The provider omits the refresh token on refresh responses; the
	// caller keeps using the one it already holds.
	if tok.RefreshToken == "" {
		tok.RefreshToken = refreshToken
	}

	return tok, nil
}

// Revoke implements [AuthProvider]. Failures are returned but callers treat
// revocation as best-effort.
func (p *oauthProvider) Revoke(ctx context.Context, accessToken string) error {
	resp, err := p.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"token": accessToken}).
		Post(p.revokeURL)
	if err != nil {
		return fmt.Errorf("revoke request: %w", wrapTransportError(err))
	}
	if resp.IsError() {
		return fmt.Errorf("revoke rejected: %w",
			&RemoteError{Status: resp.StatusCode(), Body: string(resp.Body())})
	}

	return nil
}

func providerTokenFromOAuth2(tok *oauth2.Token) models.ProviderToken {
	pt := models.ProviderToken{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		ExpiresIn:    tok.ExpiresIn,
	}
	if idToken, ok := tok.Extra("id_token").(string); ok {
		pt.IDToken = idToken
	}
	return pt
}

// EmailFromIDToken extracts the "email" claim from the provider's ID token.
// The signature is not verified: the token arrived over TLS directly from
// the token endpoint and is used for display only.
func EmailFromIDToken(idToken string) (string, error) {
	if idToken == "" {
		return "", errors.New("empty id token")
	}

	token, _, err := jwt.NewParser().ParseUnverified(idToken, jwt.MapClaims{})
	if err != nil {
		return "", fmt.Errorf("parse id token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid id token claims")
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", errors.New("id token has no email claim")
	}

	return email, nil
}
