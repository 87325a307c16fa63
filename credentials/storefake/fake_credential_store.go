package storefake

import (
	"sync"

	"github.com/jrsteele09/go-offline-auth/credentials"
	internalerrors "github.com/jrsteele09/go-offline-auth/internal/errors"
)

var _ credentials.Store = (*FakeCredentialStore)(nil)

type FakeCredentialStore struct {
	creds   *credentials.Credentials
	writes  int
	readErr error
	lock    sync.RWMutex
}

func NewFakeCredentialStore() *FakeCredentialStore {
	return &FakeCredentialStore{}
}

// Seed installs a document as if it had been persisted earlier.
func (s *FakeCredentialStore) Seed(creds credentials.Credentials) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.creds = &creds
}

// FailReads makes every Read return err, simulating a malformed file.
func (s *FakeCredentialStore) FailReads(err error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.readErr = err
}

func (s *FakeCredentialStore) Exists() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.creds != nil || s.readErr != nil
}

func (s *FakeCredentialStore) Read() (credentials.Credentials, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.readErr != nil {
		return credentials.Credentials{}, s.readErr
	}
	if s.creds == nil {
		return credentials.Credentials{}, internalerrors.ErrNotFound
	}
	return *s.creds, nil
}

func (s *FakeCredentialStore) Write(creds credentials.Credentials) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.creds = &creds
	s.writes++
	return nil
}

// Writes reports how many documents have been written.
func (s *FakeCredentialStore) Writes() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.writes
}

// Current returns the last written or seeded document.
func (s *FakeCredentialStore) Current() (credentials.Credentials, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.creds == nil {
		return credentials.Credentials{}, false
	}
	return *s.creds, true
}
