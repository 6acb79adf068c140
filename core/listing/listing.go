// Package listing orders directory entries for presentation: directories
// first, then case-insensitive by name. Callers populate entries from their
// own I/O layer; rendering to HTML or JSON is equally the caller's concern.
package listing

import (
	"slices"
	"strings"
	"time"
)

// Entry is a single directory entry. Size below zero and a zero Modified
// mean unknown.
type Entry struct {
	// Name is the file or directory name without any path prefix.
	Name string
	// IsDir reports whether the entry is a directory.
	IsDir bool
	// Size is the file size in bytes, or -1 when unknown (e.g. directories).
	Size int64
	// Modified is the last modification time, zero when unknown.
	Modified time.Time
}

// Sort orders entries in place: directories before files, then
// case-insensitive lexicographic by name with case-sensitive ties for
// determinism. Entries themselves are never modified, only reordered.
// Sorting is stable and idempotent.
func Sort(entries []Entry) {
	slices.SortStableFunc(entries, compare)
}

// Sorted returns an ordered copy, leaving the input untouched.
func Sorted(entries []Entry) []Entry {
	out := slices.Clone(entries)
	Sort(out)
	return out
}

func compare(a, b Entry) int {
	if a.IsDir != b.IsDir {
		if a.IsDir {
			return -1
		}
		return 1
	}
	if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}
