package credentials

// Store manages durable persistence of one credential document.
type Store interface {
	// Exists reports whether a persisted document is present.
	Exists() bool
	// Read parses and returns the persisted document.
	Read() (Credentials, error)
	// Write replaces the persisted document, creating any missing parent
	// directories.
	Write(Credentials) error
}
