package pathjail

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Canonicalizer resolves a path to its canonical absolute form, following
// symlinks. It must return an error satisfying errors.Is(err, fs.ErrNotExist)
// when the path does not exist.
type Canonicalizer func(path string) (string, error)

// resolverConfig holds configuration applied by New.
type resolverConfig struct {
	followSymlinks bool
	canonicalize   Canonicalizer
}

// Option configures a Resolver.
type Option func(*resolverConfig)

// WithFollowSymlinks disables symlink escape checking. Symlinks inside the
// root may then point anywhere on the filesystem; only enable this for
// trusted content.
func WithFollowSymlinks() Option {
	return func(c *resolverConfig) {
		c.followSymlinks = true
	}
}

// WithCanonicalizer replaces the default filepath.EvalSymlinks with a custom
// canonicalization function. Intended for tests that run against an
// in-memory filesystem stand-in.
func WithCanonicalizer(fn Canonicalizer) Option {
	return func(c *resolverConfig) {
		if fn != nil {
			c.canonicalize = fn
		}
	}
}

// Resolver maps untrusted request paths onto a root directory.
// It is immutable after construction and safe for concurrent use.
type Resolver struct {
	root           string
	followSymlinks bool
	canonicalize   Canonicalizer
}

// New creates a Resolver jailed to root. The root is canonicalized once at
// construction; a root that does not exist or cannot be resolved fails with
// ErrInvalidRoot.
func New(root string, opts ...Option) (*Resolver, error) {
	cfg := &resolverConfig{
		canonicalize: filepath.EvalSymlinks,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	canonical, err := cfg.canonicalize(filepath.Clean(root))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidRoot, root, err)
	}

	return &Resolver{
		root:           canonical,
		followSymlinks: cfg.followSymlinks,
		canonicalize:   cfg.canonicalize,
	}, nil
}

// Root returns the canonical root directory the resolver is jailed to.
func (r *Resolver) Root() string {
	return r.root
}

// Resolve validates requestPath and returns the confined filesystem path.
//
// The request path is percent-decoded exactly once, checked for NUL bytes
// and invalid UTF-8, normalized segment by segment, and joined onto the
// root. Unless symlink following was enabled, the result is canonicalized
// and verified to stay inside the root.
//
// A missing target is not an error; callers handle not-found themselves.
func (r *Resolver) Resolve(requestPath string) (ResolvedPath, error) {
	decoded, err := url.PathUnescape(requestPath)
	if err != nil {
		return ResolvedPath{}, fmt.Errorf("%w: %q", ErrInvalidEncoding, requestPath)
	}
	if !utf8.ValidString(decoded) {
		return ResolvedPath{}, fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidEncoding, requestPath)
	}
	if strings.ContainsRune(decoded, 0) {
		return ResolvedPath{}, fmt.Errorf("%w: %q contains a NUL byte", ErrInvalidEncoding, requestPath)
	}

	segments, err := normalizeSegments(decoded)
	if err != nil {
		return ResolvedPath{}, fmt.Errorf("%w: %q", err, requestPath)
	}

	resolved := filepath.Join(append([]string{r.root}, segments...)...)

	if !r.followSymlinks {
		return r.verifyNoEscape(resolved)
	}

	return ResolvedPath{path: resolved, root: r.root}, nil
}

// normalizeSegments splits a decoded path on "/", drops empty and "."
// segments, and resolves ".." by popping the previous segment. A ".." with
// nothing left to pop means the request tried to climb above the root.
func normalizeSegments(decoded string) ([]string, error) {
	segments := make([]string, 0, 8)
	for _, seg := range strings.Split(decoded, "/") {
		switch seg {
		case "", ".":
			// skip
		case "..":
			if len(segments) == 0 {
				return nil, ErrPathTraversal
			}
			segments = segments[:len(segments)-1]
		default:
			segments = append(segments, seg)
		}
	}
	return segments, nil
}

// verifyNoEscape canonicalizes resolved and rejects it when the canonical
// form lies outside the root. When the target itself does not exist,
// intermediate symlinks could still escape, so the nearest existing
// ancestor is canonicalized and checked instead.
func (r *Resolver) verifyNoEscape(resolved string) (ResolvedPath, error) {
	canonical, err := r.canonicalize(resolved)
	switch {
	case err == nil:
		if !r.contains(canonical) {
			return ResolvedPath{}, fmt.Errorf("%w: %q resolves to %q", ErrSymlinkEscape, resolved, canonical)
		}
		return ResolvedPath{path: canonical, root: r.root}, nil

	case errors.Is(err, fs.ErrNotExist):
		for dir := filepath.Dir(resolved); dir != r.root; dir = filepath.Dir(dir) {
			canonical, err := r.canonicalize(dir)
			if err == nil {
				if !r.contains(canonical) {
					return ResolvedPath{}, fmt.Errorf("%w: %q resolves to %q", ErrSymlinkEscape, dir, canonical)
				}
				break
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return ResolvedPath{}, fmt.Errorf("canonicalizing %q: %w", dir, err)
			}
			if dir == filepath.Dir(dir) {
				break
			}
		}
		return ResolvedPath{path: resolved, root: r.root}, nil

	default:
		return ResolvedPath{}, fmt.Errorf("canonicalizing %q: %w", resolved, err)
	}
}

// contains reports whether canonical equals the root or lies beneath it.
func (r *Resolver) contains(canonical string) bool {
	return canonical == r.root || strings.HasPrefix(canonical, r.root+string(filepath.Separator))
}
