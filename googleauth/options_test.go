package googleauth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-offline-auth/internal/config"
	"github.com/jrsteele09/go-offline-auth/internal/errors"
)

func TestResolveRequiresScopes(t *testing.T) {
	_, err := Options{}.resolve(config.New())
	require.ErrorIs(t, err, errors.ErrNoScopes)
}

func TestResolveAppliesBuiltInDefaults(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_SECRET_FILE", "")
	t.Setenv("GOOGLE_AUTH_STATE_FILE", "")
	t.Setenv("GOOGLE_REFRESH_TOKEN", "")

	resolved, err := Options{Scopes: []string{"scope-a"}}.resolve(config.New())
	require.NoError(t, err)

	assert.Equal(t, ".data/google_client_secret.json", resolved.ClientSecretFile)
	assert.Equal(t, ".data/google_auth.json", resolved.AuthStateFile)
	assert.Empty(t, resolved.DefaultRefreshToken)
}

func TestResolveEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_SECRET_FILE", "/etc/secret.json")
	t.Setenv("GOOGLE_AUTH_STATE_FILE", "/var/auth.json")
	t.Setenv("GOOGLE_REFRESH_TOKEN", "env-rt")

	resolved, err := Options{Scopes: []string{"scope-a"}}.resolve(config.New())
	require.NoError(t, err)

	assert.Equal(t, "/etc/secret.json", resolved.ClientSecretFile)
	assert.Equal(t, "/var/auth.json", resolved.AuthStateFile)
	assert.Equal(t, "env-rt", resolved.DefaultRefreshToken)
}

func TestResolveExplicitValuesOverrideEnvironment(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_SECRET_FILE", "/etc/secret.json")
	t.Setenv("GOOGLE_AUTH_STATE_FILE", "/var/auth.json")
	t.Setenv("GOOGLE_REFRESH_TOKEN", "env-rt")

	resolved, err := Options{
		Scopes:              []string{"scope-a"},
		ClientSecretFile:    "explicit-secret.json",
		AuthStateFile:       config.StoreDisabledSentinel,
		DefaultRefreshToken: "explicit-rt",
	}.resolve(config.New())
	require.NoError(t, err)

	assert.Equal(t, "explicit-secret.json", resolved.ClientSecretFile)
	assert.Equal(t, config.StoreDisabledSentinel, resolved.AuthStateFile)
	assert.Equal(t, "explicit-rt", resolved.DefaultRefreshToken)
}
