// Package pathjail confines untrusted URI paths to a root directory.
//
// A Resolver turns a percent-encoded request path into an absolute
// filesystem path that is guaranteed to stay inside the configured root,
// regardless of any combination of "..", encoded separators, or symlinks.
// It performs no file I/O of its own beyond optional symlink
// canonicalization, which is injected as a narrow capability so the core
// logic stays testable without a real filesystem.
//
// # Basic Usage
//
//	resolver, err := pathjail.New("/var/www/public")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resolved, err := resolver.Resolve(r.URL.EscapedPath())
//	if err != nil {
//		// ErrInvalidEncoding, ErrPathTraversal, or ErrSymlinkEscape
//		http.NotFound(w, r)
//		return
//	}
//
//	f, err := os.Open(resolved.Path())
//
// # Security Model
//
// Resolution is strict by design:
//
//   - Percent-decoding happens exactly once, so "%252e%252e" stays the
//     literal filename "%2e%2e" rather than becoming a traversal.
//   - A ".." that would climb above the root fails with ErrPathTraversal
//     instead of being silently clamped, so callers can log and alert on
//     probe attempts.
//   - Symlink following is disabled by default. Every resolved path (and,
//     for missing targets, its nearest existing ancestor) is canonicalized
//     and rejected with ErrSymlinkEscape if it leaves the root.
//
// A missing file is not an error: syntactically safe paths resolve
// successfully and the caller owns the 404 decision.
//
// # Testing Without a Filesystem
//
// The canonicalization step can be replaced for tests:
//
//	resolver, _ := pathjail.New("/srv/files",
//		pathjail.WithCanonicalizer(func(p string) (string, error) {
//			return fakeFS.Canonical(p)
//		}),
//	)
package pathjail
