package config

import "time"

type AuthConfig interface {
	GetExpiryMargin() time.Duration
	GetGoogleIssuer() string
}

type Auth struct{}

var _ AuthConfig = Auth{}

// GetExpiryMargin is the safety window before expiry within which a cached
// access token is already treated as stale.
func (Auth) GetExpiryMargin() time.Duration {
	return 300 * time.Second
}

func (Auth) GetGoogleIssuer() string {
	return "https://accounts.google.com"
}
