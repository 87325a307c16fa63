package googleauth

import (
	"github.com/rs/zerolog"

	"github.com/jrsteele09/go-offline-auth/internal/config"
	"github.com/jrsteele09/go-offline-auth/internal/errors"
)

// Options configures a Manager. Empty fields fall back to environment
// variables and then to built-in defaults; Scopes is required and has no
// fallback.
type Options struct {
	// Scopes are the permission scopes requested during authorization.
	Scopes []string
	// ClientSecretFile is the path of the client secret JSON.
	ClientSecretFile string
	// AuthStateFile is the path of the cached credentials JSON.
	// config.StoreDisabledSentinel turns persistence off entirely.
	AuthStateFile string
	// DefaultRefreshToken seeds the refresh token for environments without a
	// cache file, such as CI.
	DefaultRefreshToken string
	// Logger overrides the package-global logger.
	Logger *zerolog.Logger
	// Verifier, when set, checks the ID token returned at login.
	Verifier IdentityVerifier
}

// resolve applies the environment and default layers once, at construction.
func (o Options) resolve(cfg config.Config) (Options, error) {
	if len(o.Scopes) == 0 {
		return Options{}, errors.ErrNoScopes
	}
	if o.ClientSecretFile == "" {
		o.ClientSecretFile = cfg.GetClientSecretFile()
	}
	if o.AuthStateFile == "" {
		o.AuthStateFile = cfg.GetAuthStateFile()
	}
	if o.DefaultRefreshToken == "" {
		o.DefaultRefreshToken = cfg.GetDefaultRefreshToken()
	}
	return o, nil
}
