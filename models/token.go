package models

import "time"

// TokenExpiryMargin is subtracted from the provider-declared expiry before a
// token is considered usable. It covers the race between the validity check
// and the moment the token actually reaches the remote API.
const TokenExpiryMargin = 60 * time.Second

// Token is the in-memory representation of the provider access credential.
//
// Tokens are held only in process memory for the lifetime of the session.
// They are never written to the local database or any other durable storage;
// sign-out, refresh failure, or process exit destroys them.
type Token struct {
	// AccessToken is the opaque bearer credential sent to the remote API.
	AccessToken string `json:"-"`

	// RefreshToken is the long-lived credential used for silent refresh.
	// Empty when the provider did not grant offline access.
	RefreshToken string `json:"-"`

	// Expiry is the absolute instant, as declared by the provider, after
	// which AccessToken stops working. Validity checks apply
	// [TokenExpiryMargin] on top of this value.
	Expiry time.Time `json:"-"`

	// Email is the display identity of the signed-in account, extracted
	// from the provider's ID token.
	Email string `json:"-"`
}

// Valid reports whether the access token can still be used at instant now,
// taking the safety margin into account. A token expiring in 59 seconds is
// already considered invalid; one expiring in 61 seconds is not.
func (t *Token) Valid(now time.Time) bool {
	if t == nil || t.AccessToken == "" {
		return false
	}
	return now.Add(TokenExpiryMargin).Before(t.Expiry)
}

// ProviderToken is the raw token material returned by the OAuth provider
// before it is normalised into a [Token].
type ProviderToken struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	IDToken      string `json:"id_token,omitempty"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type,omitempty"`
}
