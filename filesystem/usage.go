package filesystem

import (
	"os"

	"emperror.dev/errors"
)

// Usage returns the combined size of the regular files matching the patterns,
// including every regular file below the matched directories. Symbolic links
// are not followed unless followSymlinks is set.
func Usage(followSymlinks bool, patterns ...string) (uint64, error) {
	return UsageFunc(followSymlinks, nil, patterns...)
}

// UsageFunc is Usage leaving out every file for which skip returns true, such
// as the files an Interceptor will not copy.
func UsageFunc(followSymlinks bool, skip func(p Path) bool, patterns ...string) (uint64, error) {
	matches, err := Glob(patterns...)
	if err != nil {
		return 0, err
	}
	var size uint64
	add := func(p string) error {
		st, err := os.Lstat(p)
		if err != nil {
			return errors.WithStack(err)
		}
		if followSymlinks && st.Mode()&os.ModeSymlink != 0 {
			if st, err = os.Stat(p); err != nil {
				// Dangling links are copied as links.
				return nil
			}
		}
		if st.Mode().IsRegular() && (skip == nil || !skip(New(p))) {
			size += uint64(st.Size())
		}
		return nil
	}
	for _, m := range matches {
		if err := add(m.path); err != nil {
			return 0, err
		}
		if !isDirectory(m.path) {
			continue
		}
		err := EachR(m.path, func(e Entry) error {
			return add(e.Path.path)
		}, WalkOptions{FollowSymlink: followSymlinks})
		if err != nil {
			return 0, errors.WrapIf(err, "filesystem: usage: failed to walk directory")
		}
	}
	return size, nil
}
