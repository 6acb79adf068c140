package pathjail

import "errors"

var (
	// ErrInvalidRoot is returned when the root directory cannot be canonicalized.
	ErrInvalidRoot = errors.New("invalid root directory")
	// ErrInvalidEncoding is returned for malformed percent-encoding, invalid UTF-8,
	// or an embedded NUL byte in the request path.
	ErrInvalidEncoding = errors.New("invalid path encoding")
	// ErrPathTraversal is returned when a ".." segment would escape the root directory.
	ErrPathTraversal = errors.New("path escapes root directory")
	// ErrSymlinkEscape is returned when a symlink resolves outside the root directory.
	ErrSymlinkEscape = errors.New("symlink resolves outside root directory")
)
