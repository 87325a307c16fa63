package googleauth

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// OAuthClient is the contract with the external OAuth2 protocol
// implementation. The production implementation wraps golang.org/x/oauth2;
// tests substitute fakes.
type OAuthClient interface {
	// AuthCodeURL returns the consent URL for the offline access flow.
	AuthCodeURL(state string) string
	// Exchange trades a one-time authorization code for a token set.
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	// Refresh obtains a new access token and expiry using a refresh token.
	Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error)
	// HTTPClient returns an HTTP client authenticated with the token set.
	HTTPClient(ctx context.Context, token *oauth2.Token) *http.Client
}

// ClientFactory builds a fresh OAuthClient. The client secret file is read on
// every call rather than cached, so a replaced file takes effect immediately.
type ClientFactory func() (OAuthClient, error)

// NewGoogleClientFactory returns a factory reading the client secret JSON at
// secretFile and requesting the given scopes. Only the first redirect URI of
// the secret file is used.
func NewGoogleClientFactory(secretFile string, scopes []string) ClientFactory {
	return func() (OAuthClient, error) {
		data, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read client secret file: %w", err)
		}
		cfg, err := google.ConfigFromJSON(data, scopes...)
		if err != nil {
			return nil, fmt.Errorf("parse client secret file: %w", err)
		}
		return &googleClient{config: cfg}, nil
	}
}

type googleClient struct {
	config *oauth2.Config
}

var _ OAuthClient = (*googleClient)(nil)

func (c *googleClient) AuthCodeURL(state string) string {
	return c.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (c *googleClient) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := c.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	return token, nil
}

// Refresh asks the token endpoint for a fresh access token. The token source
// is seeded without an access token, which forces the round trip.
func (c *googleClient) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	seed := &oauth2.Token{RefreshToken: refreshToken}
	token, err := c.config.TokenSource(ctx, seed).Token()
	if err != nil {
		return nil, fmt.Errorf("refresh access token: %w", err)
	}
	return token, nil
}

func (c *googleClient) HTTPClient(ctx context.Context, token *oauth2.Token) *http.Client {
	return c.config.Client(ctx, token)
}
