package filesystem

import (
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// IgnoreMatcher returns a function reporting whether a path matches one of
// the gitignore style patterns. Paths are matched relative to base, or as
// given when base is empty.
func IgnoreMatcher(base string, patterns ...string) func(p Path) bool {
	i := ignore.CompileIgnoreLines(patterns...)
	return func(p Path) bool {
		rel := p.String()
		if base != "" {
			if r, err := filepath.Rel(base, p.String()); err == nil && !strings.HasPrefix(r, "..") {
				rel = r
			}
		}
		return i.MatchesPath(filepath.ToSlash(rel))
	}
}

// IgnoreInterceptor returns an Interceptor that skips every source matching
// one of the gitignore style patterns, see IgnoreMatcher.
func IgnoreInterceptor(base string, patterns ...string) Interceptor {
	match := IgnoreMatcher(base, patterns...)
	return func(src, dst Path, o Options, perform func(dst Path) error) error {
		if match(src) {
			o.report("skip %s", src)
			return nil
		}
		return perform(dst)
	}
}
