package errors

import (
	"errors"
	"fmt"
)

// Common error types for the credential lifecycle manager
var (
	// Token errors
	ErrNoRefreshToken = errors.New("no refresh token available: supply one via configuration or the GOOGLE_REFRESH_TOKEN environment variable, or complete the login flow again")

	// Configuration errors
	ErrNoScopes = errors.New("no scopes configured")

	// General errors
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
