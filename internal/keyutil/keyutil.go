// Package keyutil provides structural validation of object keys and their
// decomposition into filesystem path segments.
package keyutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Separator delimits path segments within an object key. It is fixed and
// platform-independent: keys always use forward slashes regardless of the
// OS the node runs on.
const Separator = "/"

// ErrInvalidKey is returned when an object key violates structural rules.
// Use [errors.Is] to check for it: all validation failures wrap it together
// with the violated rule.
var ErrInvalidKey = errors.New("invalid object key")

// Split checks the given object key against structural rules and decomposes
// it into an ordered sequence of path segments. The last segment names the
// object's file, preceding ones name its parent directories.
//
// Rules, checked in order:
//  1. key must not be empty;
//  2. key must not be an absolute path;
//  3. splitting on [Separator] must yield no empty segments (this rejects
//     leading and trailing slashes as well as "//");
//  4. no segment may be "." or "..".
//
// Segment content is not restricted beyond that: Unicode, spaces and other
// unusual characters pass through verbatim. Keys never reach the filesystem
// before Split accepts them, so a failed call has no side effects.
func Split(key string) ([]string, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: key is empty", ErrInvalidKey)
	}

	// filepath.IsAbs knows platform-specific roots (drive letters on
	// Windows), the explicit prefix check catches POSIX-rooted keys
	// everywhere else.
	if strings.HasPrefix(key, Separator) || filepath.IsAbs(key) {
		return nil, fmt.Errorf("%w: absolute paths are not allowed (%q)", ErrInvalidKey, key)
	}

	segments := strings.Split(key, Separator)

	for i := range segments {
		switch segments[i] {
		case "":
			return nil, fmt.Errorf("%w: empty path segment (%q)", ErrInvalidKey, key)
		case ".", "..":
			return nil, fmt.Errorf("%w: %q contains unsupported segments", ErrInvalidKey, key)
		}

		// On systems where the separator is not '/' a segment containing
		// it would silently span extra path components after the join.
		if os.PathSeparator != '/' && strings.ContainsRune(segments[i], os.PathSeparator) {
			return nil, fmt.Errorf("%w: %q contains unsupported segments", ErrInvalidKey, key)
		}
	}

	return segments, nil
}
