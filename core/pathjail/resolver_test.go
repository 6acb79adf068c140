package pathjail_test

import (
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/statickit/core/pathjail"
)

// makeRoot builds a root directory with a small file tree.
func makeRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "assets", "images"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "assets", "images", "logo.png"), []byte("png"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<html>"), 0644))
	return root
}

func TestResolve(t *testing.T) {
	t.Parallel()

	root := makeRoot(t)
	resolver, err := pathjail.New(root)
	require.NoError(t, err)

	tests := []struct {
		name        string
		requestPath string
		wantRel     string
		wantErr     error
	}{
		{
			name:        "normal_path",
			requestPath: "/assets/images/logo.png",
			wantRel:     filepath.Join("assets", "images", "logo.png"),
		},
		{
			name:        "redundant_components",
			requestPath: "/assets//images/./logo.png",
			wantRel:     filepath.Join("assets", "images", "logo.png"),
		},
		{
			name:        "missing_file_resolves",
			requestPath: "/missing.html",
			wantRel:     "missing.html",
		},
		{
			name:        "absolute_uri_treated_as_relative",
			requestPath: "/etc/passwd",
			wantRel:     filepath.Join("etc", "passwd"),
		},
		{
			name:        "empty_path_is_root",
			requestPath: "",
			wantRel:     ".",
		},
		{
			name:        "slash_is_root",
			requestPath: "/",
			wantRel:     ".",
		},
		{
			name:        "dotdot_inside_root",
			requestPath: "/assets/images/../images/logo.png",
			wantRel:     filepath.Join("assets", "images", "logo.png"),
		},
		{
			name:        "double_encoding_stays_literal",
			requestPath: "/%252e%252e",
			wantRel:     "%2e%2e",
		},
		{
			name:        "unicode_filename",
			requestPath: "/%E4%B8%AD%E6%96%87.txt",
			wantRel:     "中文.txt",
		},
		{
			name:        "query_string_becomes_filename",
			requestPath: "/file.txt?key=value",
			wantRel:     "file.txt?key=value",
		},
		{
			name:        "deeply_nested_path",
			requestPath: "/a/b/c/d/e/f/g/h",
			wantRel:     filepath.Join("a", "b", "c", "d", "e", "f", "g", "h"),
		},
		{
			name:        "plain_traversal",
			requestPath: "/../../etc/passwd",
			wantErr:     pathjail.ErrPathTraversal,
		},
		{
			name:        "encoded_traversal",
			requestPath: "/%2e%2e/%2e%2e/etc/shadow",
			wantErr:     pathjail.ErrPathTraversal,
		},
		{
			name:        "traversal_then_descend",
			requestPath: "/../assets/images/logo.png",
			wantErr:     pathjail.ErrPathTraversal,
		},
		{
			name:        "pure_traversal",
			requestPath: "/../../../../..",
			wantErr:     pathjail.ErrPathTraversal,
		},
		{
			name:        "nul_byte_rejected",
			requestPath: "/file%00.txt",
			wantErr:     pathjail.ErrInvalidEncoding,
		},
		{
			name:        "invalid_utf8_rejected",
			requestPath: "/%C3%28",
			wantErr:     pathjail.ErrInvalidEncoding,
		},
		{
			name:        "incomplete_escape_rejected",
			requestPath: "/file%2",
			wantErr:     pathjail.ErrInvalidEncoding,
		},
		{
			name:        "stray_percent_rejected",
			requestPath: "/file%zz.txt",
			wantErr:     pathjail.ErrInvalidEncoding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resolved, err := resolver.Resolve(tt.requestPath)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRel, resolved.Rel())
			assert.Equal(t, resolver.Root(), resolved.Root())
			assert.True(t, resolved.Path() == resolver.Root() ||
				strings.HasPrefix(resolved.Path(), resolver.Root()+string(filepath.Separator)),
				"resolved path %q escapes root %q", resolved.Path(), resolver.Root())
		})
	}
}

func TestResolveRootPath(t *testing.T) {
	t.Parallel()

	root := makeRoot(t)
	resolver, err := pathjail.New(root)
	require.NoError(t, err)

	for _, requestPath := range []string{"", "/"} {
		resolved, err := resolver.Resolve(requestPath)
		require.NoError(t, err)
		assert.True(t, resolved.IsRoot())
		assert.Equal(t, resolver.Root(), resolved.Path())
	}
}

func TestNewInvalidRoot(t *testing.T) {
	t.Parallel()

	_, err := pathjail.New("/nonexistent_root_dir_xyz")
	require.ErrorIs(t, err, pathjail.ErrInvalidRoot)
}

func TestResolveSymlinks(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlink tests require unix")
	}

	t.Run("symlink_escape_blocked", func(t *testing.T) {
		t.Parallel()

		root := makeRoot(t)
		outside := t.TempDir()
		secret := filepath.Join(outside, "secret.txt")
		require.NoError(t, os.WriteFile(secret, []byte("secret"), 0644))
		require.NoError(t, os.Symlink(secret, filepath.Join(root, "link.txt")))

		resolver, err := pathjail.New(root)
		require.NoError(t, err)

		_, err = resolver.Resolve("/link.txt")
		require.ErrorIs(t, err, pathjail.ErrSymlinkEscape)
	})

	t.Run("symlink_dir_missing_target_blocked", func(t *testing.T) {
		t.Parallel()

		root := makeRoot(t)
		outside := t.TempDir()
		require.NoError(t, os.Symlink(outside, filepath.Join(root, "evil")))

		resolver, err := pathjail.New(root)
		require.NoError(t, err)

		// The requested file does not exist, so canonicalization of the
		// full path fails with not-found; the escaping ancestor must still
		// be caught.
		_, err = resolver.Resolve("/evil/nonexistent.txt")
		require.ErrorIs(t, err, pathjail.ErrSymlinkEscape)
	})

	t.Run("symlink_inside_root_allowed", func(t *testing.T) {
		t.Parallel()

		root := makeRoot(t)
		require.NoError(t, os.Symlink(
			filepath.Join(root, "index.html"),
			filepath.Join(root, "home.html"),
		))

		resolver, err := pathjail.New(root)
		require.NoError(t, err)

		resolved, err := resolver.Resolve("/home.html")
		require.NoError(t, err)
		assert.Equal(t, "index.html", resolved.Rel())
	})

	t.Run("symlink_allowed_when_following_enabled", func(t *testing.T) {
		t.Parallel()

		root := makeRoot(t)
		outside := t.TempDir()
		secret := filepath.Join(outside, "secret.txt")
		require.NoError(t, os.WriteFile(secret, []byte("secret"), 0644))
		require.NoError(t, os.Symlink(secret, filepath.Join(root, "link.txt")))

		resolver, err := pathjail.New(root, pathjail.WithFollowSymlinks())
		require.NoError(t, err)

		resolved, err := resolver.Resolve("/link.txt")
		require.NoError(t, err)
		assert.Equal(t, "link.txt", resolved.Rel())
	})
}

func TestWithCanonicalizer(t *testing.T) {
	t.Parallel()

	// In-memory filesystem stand-in: canonical forms keyed by path.
	canonical := map[string]string{
		"/srv/files":          "/srv/files",
		"/srv/files/link.txt": "/elsewhere/secret.txt",
		"/srv/files/real.txt": "/srv/files/real.txt",
	}
	fakeCanonicalize := func(path string) (string, error) {
		if c, ok := canonical[path]; ok {
			return c, nil
		}
		return "", fs.ErrNotExist
	}

	resolver, err := pathjail.New("/srv/files", pathjail.WithCanonicalizer(fakeCanonicalize))
	require.NoError(t, err)

	_, err = resolver.Resolve("/link.txt")
	require.ErrorIs(t, err, pathjail.ErrSymlinkEscape)

	resolved, err := resolver.Resolve("/real.txt")
	require.NoError(t, err)
	assert.Equal(t, "/srv/files/real.txt", resolved.Path())

	// Missing targets resolve as long as nothing on the way escapes.
	resolved, err = resolver.Resolve("/new.txt")
	require.NoError(t, err)
	assert.Equal(t, "new.txt", resolved.Rel())
}

func TestResolveRoundTrip(t *testing.T) {
	t.Parallel()

	root := makeRoot(t)
	resolver, err := pathjail.New(root)
	require.NoError(t, err)

	// Percent-encoding a resolved relative path and resolving it again
	// reproduces the same segments.
	resolved, err := resolver.Resolve("/assets/images/logo.png")
	require.NoError(t, err)

	encoded := "/" + strings.Join(func() []string {
		segs := strings.Split(filepath.ToSlash(resolved.Rel()), "/")
		for i, s := range segs {
			segs[i] = url.PathEscape(s)
		}
		return segs
	}(), "/")

	again, err := resolver.Resolve(encoded)
	require.NoError(t, err)
	assert.Equal(t, resolved.Path(), again.Path())
}
