package googleauth

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/jrsteele09/go-offline-auth/credentials"
	"github.com/jrsteele09/go-offline-auth/internal/config"
	"github.com/jrsteele09/go-offline-auth/internal/errors"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Manager handles the offline-access credential lifecycle: it turns a
// one-time authorization grant into a durable refresh token and decides, per
// call, whether a cached access token can be reused, must be refreshed, or
// cannot be recovered without new interactive consent.
type Manager struct {
	store               credentials.Store
	clients             ClientFactory
	verifier            IdentityVerifier
	defaultRefreshToken string
	expiryMargin        time.Duration
	log                 zerolog.Logger
}

// New builds a Manager from configuration. Option precedence is explicit
// value, then environment variable, then built-in default, resolved once
// here.
func New(cfg config.Config, opts Options) (*Manager, error) {
	resolved, err := opts.resolve(cfg)
	if err != nil {
		return nil, err
	}

	var store credentials.Store = credentials.NoopStore{}
	if resolved.AuthStateFile != config.StoreDisabledSentinel {
		store = credentials.NewFileStore(resolved.AuthStateFile)
	}

	return NewManager(store, NewGoogleClientFactory(resolved.ClientSecretFile, resolved.Scopes), resolved), nil
}

// NewManager wires a Manager from explicit dependencies. Most callers should
// use New; tests inject fakes here.
func NewManager(store credentials.Store, clients ClientFactory, opts Options) *Manager {
	logger := zlog.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Manager{
		store:               store,
		clients:             clients,
		verifier:            opts.Verifier,
		defaultRefreshToken: opts.DefaultRefreshToken,
		expiryMargin:        config.Auth{}.GetExpiryMargin(),
		log:                 logger,
	}
}

// AuthURL returns the consent URL requesting offline access for the
// configured scopes. The caller visits it out of band and comes back with a
// one-time authorization code for Login.
func (m *Manager) AuthURL() (string, error) {
	client, err := m.clients()
	if err != nil {
		return "", err
	}
	return client.AuthCodeURL(uuid.New().String()), nil
}

// Login exchanges a one-time authorization code for the first full token set
// and persists it. The exchange may succeed without granting a refresh token
// when offline consent was already given earlier; that result is persisted
// as-is, so callers needing the token should inspect the store afterwards.
func (m *Manager) Login(ctx context.Context, code string) error {
	client, err := m.clients()
	if err != nil {
		return err
	}

	token, err := client.Exchange(ctx, code)
	if err != nil {
		return err
	}

	if err := m.reportIdentity(ctx, token); err != nil {
		return err
	}

	creds := credentials.FromToken(token)
	if err := m.store.Write(creds); err != nil {
		return err
	}
	if creds.RefreshToken == "" {
		m.log.Warn().Msg("token response carried no refresh token, offline consent may have been granted before")
	}
	return nil
}

// AuthenticatedClient returns an HTTP client carrying a usable access token,
// refreshing and persisting it first when the cached one is missing or about
// to expire.
func (m *Manager) AuthenticatedClient(ctx context.Context) (*http.Client, error) {
	client, creds, err := m.authenticate(ctx)
	if err != nil {
		return nil, err
	}
	return client.HTTPClient(ctx, creds.Token()), nil
}

// Token runs the same lifecycle as AuthenticatedClient and returns the token
// set itself.
func (m *Manager) Token(ctx context.Context) (*oauth2.Token, error) {
	_, creds, err := m.authenticate(ctx)
	if err != nil {
		return nil, err
	}
	return creds.Token(), nil
}

// authenticate is the central decision: read the store once, reuse the
// cached token when it is still outside the expiry margin, otherwise refresh
// with whichever refresh token is available and persist the merged result.
func (m *Manager) authenticate(ctx context.Context) (OAuthClient, credentials.Credentials, error) {
	client, err := m.clients()
	if err != nil {
		return nil, credentials.Credentials{}, err
	}

	creds := credentials.Credentials{RefreshToken: m.defaultRefreshToken}
	if m.store.Exists() {
		stored, err := m.store.Read()
		if err != nil {
			return nil, credentials.Credentials{}, err
		}
		creds = creds.Overlay(stored)
	}

	now := NowTimeFunc()
	if creds.UsableAt(now, m.expiryMargin) {
		m.log.Info().Msgf("token is still valid for %d minutes", creds.MinutesLeft(now))
		return client, creds, nil
	}

	if creds.AccessToken == "" {
		m.log.Info().Msg("no token found, getting new one")
	} else {
		m.log.Info().Msg("token expired, renewing")
	}

	if creds.RefreshToken == "" {
		return nil, credentials.Credentials{}, errors.ErrNoRefreshToken
	}

	token, err := client.Refresh(ctx, creds.RefreshToken)
	if err != nil {
		return nil, credentials.Credentials{}, err
	}

	creds = creds.WithAccessToken(token)
	if err := m.store.Write(creds); err != nil {
		return nil, credentials.Credentials{}, err
	}
	return client, creds, nil
}

func (m *Manager) reportIdentity(ctx context.Context, token *oauth2.Token) error {
	raw, ok := token.Extra("id_token").(string)
	if !ok || raw == "" {
		return nil
	}
	if m.verifier != nil {
		if err := m.verifier.Verify(ctx, raw); err != nil {
			return errors.Wrapf(err, "id token verification")
		}
	}
	if subject, email, err := identityClaims(raw); err == nil {
		m.log.Info().Str("subject", subject).Str("email", email).Msg("authorized account")
	}
	return nil
}
