package credentials_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/jrsteele09/go-offline-auth/credentials"
)

const expiryMargin = 300 * time.Second

func TestUsableAt(t *testing.T) {
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry int64
		usable bool
	}{
		{"no expiry recorded", 0, false},
		{"already expired", now.Add(-time.Hour).UnixMilli(), false},
		{"inside the safety margin", now.Add(2 * time.Minute).UnixMilli(), false},
		{"exactly at the margin", now.Add(expiryMargin).UnixMilli(), false},
		{"just outside the margin", now.Add(expiryMargin + time.Second).UnixMilli(), true},
		{"well before expiry", now.Add(time.Hour).UnixMilli(), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			creds := credentials.Credentials{AccessToken: "at", ExpiryDate: tc.expiry}
			assert.Equal(t, tc.usable, creds.UsableAt(now, expiryMargin))
		})
	}
}

func TestMinutesLeftFloorsToWholeMinutes(t *testing.T) {
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	creds := credentials.Credentials{ExpiryDate: now.Add(50*time.Minute + 59*time.Second).UnixMilli()}

	assert.Equal(t, int64(50), creds.MinutesLeft(now))
}

func TestTokenConversionRoundTrip(t *testing.T) {
	expiry := time.Date(2025, time.March, 1, 13, 0, 0, 0, time.UTC)
	token := &oauth2.Token{
		AccessToken:  "at",
		RefreshToken: "rt",
		Expiry:       expiry,
	}

	creds := credentials.FromToken(token)
	require.Equal(t, expiry.UnixMilli(), creds.ExpiryDate)

	back := creds.Token()
	assert.Equal(t, "at", back.AccessToken)
	assert.Equal(t, "rt", back.RefreshToken)
	assert.True(t, back.Expiry.Equal(expiry))
}

func TestFromTokenWithoutExpiry(t *testing.T) {
	creds := credentials.FromToken(&oauth2.Token{AccessToken: "at"})

	assert.Zero(t, creds.ExpiryDate)
	assert.True(t, creds.Token().Expiry.IsZero())
}

func TestOverlayStoredRefreshTokenWins(t *testing.T) {
	seeded := credentials.Credentials{RefreshToken: "default-rt"}
	stored := credentials.Credentials{AccessToken: "at", ExpiryDate: 42, RefreshToken: "stored-rt"}

	merged := seeded.Overlay(stored)

	assert.Equal(t, "at", merged.AccessToken)
	assert.Equal(t, int64(42), merged.ExpiryDate)
	assert.Equal(t, "stored-rt", merged.RefreshToken)
}

func TestOverlayKeepsDefaultWhenStoreHasNoRefreshToken(t *testing.T) {
	seeded := credentials.Credentials{RefreshToken: "default-rt"}
	stored := credentials.Credentials{AccessToken: "at", ExpiryDate: 42}

	merged := seeded.Overlay(stored)

	assert.Equal(t, "default-rt", merged.RefreshToken)
}

func TestWithAccessTokenPreservesRefreshToken(t *testing.T) {
	expiry := time.Date(2025, time.March, 1, 13, 0, 0, 0, time.UTC)
	creds := credentials.Credentials{AccessToken: "old", ExpiryDate: 1, RefreshToken: "rt"}

	// Refresh responses often echo a refresh token; the stored one must not change.
	next := creds.WithAccessToken(&oauth2.Token{AccessToken: "new", RefreshToken: "other-rt", Expiry: expiry})

	assert.Equal(t, "new", next.AccessToken)
	assert.Equal(t, expiry.UnixMilli(), next.ExpiryDate)
	assert.Equal(t, "rt", next.RefreshToken)
}
