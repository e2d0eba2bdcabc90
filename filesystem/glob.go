package filesystem

import (
	"path/filepath"
	"strings"

	"emperror.dev/errors"
	"github.com/bmatcuk/doublestar/v4"
)

// hasMeta reports whether the pattern contains valid glob syntax. Paths with
// unbalanced brackets or braces are treated as literals.
func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{") && doublestar.ValidatePattern(filepath.ToSlash(pattern))
}

// Glob expands every pattern against the filesystem and returns the matches
// in the order the patterns were given. Patterns without glob syntax are
// returned as is, whether or not they exist, as are malformed patterns such
// as "a{b". Empty patterns are skipped.
// "**" matches any number of directories.
func Glob(patterns ...string) ([]Path, error) {
	var out []Path
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		if !hasMeta(pattern) {
			out = append(out, New(pattern))
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "filesystem: failed to expand pattern %q", pattern)
		}
		for _, m := range matches {
			out = append(out, New(m))
		}
	}
	return out, nil
}
