package credentials

// NoopStore is the store used when persistence is disabled. Nothing is ever
// read or written, so every call starts from empty state.
type NoopStore struct{}

var _ Store = NoopStore{}

func (NoopStore) Exists() bool {
	return false
}

func (NoopStore) Read() (Credentials, error) {
	return Credentials{}, nil
}

func (NoopStore) Write(Credentials) error {
	return nil
}
