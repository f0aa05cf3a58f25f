package storage

import "io"

// FileStore persists measure image uploads. Implementations return a stable
// path on store; callers delete the prior file before storing a replacement
// so at most one file exists per measure at any time.
type FileStore interface {
	Store(filename string, content io.Reader) (string, error)
	Delete(path string) error
}
