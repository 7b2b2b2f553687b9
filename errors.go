package img2ascii

import (
	"errors"
	"fmt"
)

// Exit codes reported by the command line tool for each error kind.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitFileNotFound = 2
	ExitDecode       = 3
)

var (
	// ErrMissingPath is returned by ParseArgs when no image path is given.
	// It is informational: the caller shows usage and exits successfully.
	ErrMissingPath = errors.New("missing image path")

	// ErrFileNotFound matches any *FileNotFoundError via errors.Is.
	ErrFileNotFound = errors.New("file not found")
)

// FileNotFoundError reports an image path that does not exist.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("File not found: %s", e.Path)
}

// Is reports whether target is ErrFileNotFound.
func (e *FileNotFoundError) Is(target error) bool {
	return target == ErrFileNotFound
}

// DecodeError reports a file that exists but could not be read as an image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("Failed to open image: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by this package to a process exit code.
func ExitCode(err error) int {
	var decodeErr *DecodeError
	switch {
	case err == nil, errors.Is(err, ErrMissingPath):
		return ExitOK
	case errors.Is(err, ErrFileNotFound):
		return ExitFileNotFound
	case errors.As(err, &decodeErr):
		return ExitDecode
	default:
		return ExitFailure
	}
}
