package credentials

import (
	"time"

	"golang.org/x/oauth2"
)

// Credentials is the persisted credential document for a single application.
// ExpiryDate is in milliseconds since the Unix epoch; zero means no expiry
// has been recorded yet.
type Credentials struct {
	AccessToken  string `json:"access_token,omitempty"`
	ExpiryDate   int64  `json:"expiry_date,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// FromToken converts a token set returned by the OAuth2 collaborator.
func FromToken(token *oauth2.Token) Credentials {
	creds := Credentials{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}
	if !token.Expiry.IsZero() {
		creds.ExpiryDate = token.Expiry.UnixMilli()
	}
	return creds
}

// Token converts to the OAuth2 collaborator's token type.
func (c Credentials) Token() *oauth2.Token {
	token := &oauth2.Token{
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		TokenType:    "Bearer",
	}
	if c.ExpiryDate != 0 {
		token.Expiry = time.UnixMilli(c.ExpiryDate)
	}
	return token
}

// ExpiresAt returns the recorded expiry as a time.Time.
func (c Credentials) ExpiresAt() time.Time {
	return time.UnixMilli(c.ExpiryDate)
}

// UsableAt reports whether the cached access token can still be used at now.
// A token is usable only when an expiry is recorded and now plus the safety
// margin is still before it; every other case requires a refresh.
func (c Credentials) UsableAt(now time.Time, margin time.Duration) bool {
	if c.ExpiryDate == 0 {
		return false
	}
	return now.Add(margin).Before(c.ExpiresAt())
}

// MinutesLeft reports the whole minutes of validity remaining at now.
func (c Credentials) MinutesLeft(now time.Time) int64 {
	return (c.ExpiryDate - now.UnixMilli()) / 60000
}

// Overlay returns c overwritten by a stored document. The stored refresh
// token wins only when present, so a configured default survives a cache
// file that never held one.
func (c Credentials) Overlay(stored Credentials) Credentials {
	c.AccessToken = stored.AccessToken
	c.ExpiryDate = stored.ExpiryDate
	if stored.RefreshToken != "" {
		c.RefreshToken = stored.RefreshToken
	}
	return c
}

// WithAccessToken returns a copy carrying the access token and expiry from a
// refresh response, leaving the refresh token untouched. Refresh responses do
// not reissue the refresh token.
func (c Credentials) WithAccessToken(token *oauth2.Token) Credentials {
	c.AccessToken = token.AccessToken
	if token.Expiry.IsZero() {
		c.ExpiryDate = 0
	} else {
		c.ExpiryDate = token.Expiry.UnixMilli()
	}
	return c
}
