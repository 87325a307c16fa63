package config

import "os"

const (
	appNameVar          = "APP_NAME"
	clientSecretFileVar = "GOOGLE_CLIENT_SECRET_FILE"
	authStateFileVar    = "GOOGLE_AUTH_STATE_FILE"
	refreshTokenVar     = "GOOGLE_REFRESH_TOKEN"
)

// StoreDisabledSentinel disables credential persistence entirely when used
// as the auth state file path.
const StoreDisabledSentinel = "false"

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Google Auth")
}

func (EnvVars) GetClientSecretFile() string {
	return GetEnv(clientSecretFileVar, ".data/google_client_secret.json")
}

func (EnvVars) GetAuthStateFile() string {
	return GetEnv(authStateFileVar, ".data/google_auth.json")
}

func (EnvVars) GetDefaultRefreshToken() string {
	return GetEnv(refreshTokenVar, "")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
