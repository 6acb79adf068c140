package pathjail

import (
	"path/filepath"
	"strings"
)

// ResolvedPath is an absolute filesystem path guaranteed to lie within the
// root it was resolved against. Values are only constructed by a Resolver.
type ResolvedPath struct {
	path string
	root string
}

// Path returns the absolute filesystem path.
func (p ResolvedPath) Path() string {
	return p.path
}

// Root returns the canonical root the path is confined to.
func (p ResolvedPath) Root() string {
	return p.root
}

// Rel returns the path relative to the root, or "." for the root itself.
func (p ResolvedPath) Rel() string {
	rel := strings.TrimPrefix(p.path, p.root)
	rel = strings.TrimPrefix(rel, string(filepath.Separator))
	if rel == "" {
		return "."
	}
	return rel
}

// IsRoot reports whether the path is the root directory itself.
func (p ResolvedPath) IsRoot() bool {
	return p.path == p.root
}

// String implements fmt.Stringer.
func (p ResolvedPath) String() string {
	return p.path
}
