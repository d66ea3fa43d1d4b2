package artifact

import "errors"

var (
	// ErrNotFound is returned when the requested artifact or version does
	// not exist.
	ErrNotFound = errors.New("artifact not found")

	// ErrInvalidKey is returned when the artifact key contains invalid
	// characters or fails security validation.
	ErrInvalidKey = errors.New("invalid artifact key")
)

// ValidateKey checks if the key is safe for use.
// Returns ErrInvalidKey if validation fails.
//
// Validation rules:
//   - Must not be empty
//   - Must not exceed 255 characters
//   - Must not contain path separators (/, \)
//   - Must not contain null bytes
//   - Must not be "." or ".." (path traversal)
func ValidateKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	if len(key) > 255 {
		return ErrInvalidKey
	}
	// Prevent path traversal
	for _, c := range key {
		if c == '/' || c == '\\' || c == '\x00' {
			return ErrInvalidKey
		}
	}
	if key == "." || key == ".." {
		return ErrInvalidKey
	}
	return nil
}
