package filesystem

import (
	"path/filepath"

	"emperror.dev/errors"
	"github.com/karrick/godirwalk"
)

// Each returns the immediate children of dir in the order the filesystem
// lists them. The returned entries only have their Path and Type set.
func Each(dir string) ([]Entry, error) {
	dirents, err := godirwalk.ReadDirents(dir, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	out := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		out = append(out, Entry{
			Path: New(Join(dir, de.Name())),
			Type: typeOf(de.ModeType()),
		})
	}
	return out, nil
}

type WalkOptions struct {
	// Visit directories after their children rather than before them.
	PostOrder bool
	// Descend into symbolic links pointing at directories.
	FollowSymlink bool
}

// WalkFunc is called for every entry found by EachR. Returning an error stops
// the walk and the error is returned from EachR.
type WalkFunc func(e Entry) error

// EachR recursively visits every entry below dir, not including dir itself.
func EachR(dir string, fn WalkFunc, o WalkOptions) error {
	root := filepath.Clean(dir)
	entry := func(p string, de *godirwalk.Dirent) Entry {
		return Entry{Path: New(p), Type: typeOf(de.ModeType())}
	}
	opts := &godirwalk.Options{
		Unsorted:            true,
		FollowSymbolicLinks: o.FollowSymlink,
		Callback: func(p string, de *godirwalk.Dirent) error {
			if p == root {
				return nil
			}
			// Directories are reported once their children have been visited.
			if o.PostOrder && descends(de, o.FollowSymlink) {
				return nil
			}
			return fn(entry(p, de))
		},
	}
	if o.PostOrder {
		opts.PostChildrenCallback = func(p string, de *godirwalk.Dirent) error {
			if p == root {
				return nil
			}
			return fn(entry(p, de))
		}
	}
	return errors.WithStackIf(godirwalk.Walk(root, opts))
}

// descends reports whether the walk enters the entry. Links that cannot be
// resolved are treated as leaves.
func descends(de *godirwalk.Dirent, followSymlink bool) bool {
	if de.IsDir() {
		return true
	}
	if !followSymlink || !de.IsSymlink() {
		return false
	}
	ok, err := de.IsDirOrSymlinkToDir()
	return err == nil && ok
}
