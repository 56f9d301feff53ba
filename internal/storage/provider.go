// Package storage defines the project file-system abstraction.
package storage

// Provider is the interface for project file operations. All paths are
// relative to the project root.
type Provider interface {
	// Entries returns the names of the entries in dir, in enumeration order.
	Entries(dir string) ([]string, error)
	// Exists reports whether path exists.
	Exists(path string) (bool, error)
	// Read returns the raw bytes of the file at path.
	Read(path string) ([]byte, error)
	// Delete removes the file at path.
	Delete(path string) error
}
