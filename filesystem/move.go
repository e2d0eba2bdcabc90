package filesystem

import (
	"os"

	"emperror.dev/errors"
	"github.com/apex/log"

	"github.com/pterodactyl/pa/internal/ufs"
)

// rename is replaced in tests to simulate renames across filesystems.
var rename = os.Rename

// Move moves the entries matching srcs to dst, resolving the final location
// of each source the same way Copy does. Entries are renamed when possible
// and copied then removed when the rename would cross a filesystem boundary.
//
// An existing destination returns ErrCodeExist unless Force is set. When
// forced, a source directory is merged into an existing destination
// directory one child at a time, while any other existing destination is
// removed before the move. A source that already sits at its destination is
// left alone.
func Move(srcs []string, dst string, o Options) error {
	return forEachTarget(srcs, dst, o, func(src, target Path) error {
		return move(src, target, o)
	})
}

// MoveF is Move with Force set.
func MoveF(srcs []string, dst string) error {
	return Move(srcs, dst, Options{Force: true})
}

func move(src, dst Path, o Options) error {
	dt, err := os.Lstat(dst.path)
	if err == nil && sameFile(src.path, dst.path) {
		return nil
	}
	if err == nil && !o.Force {
		return newFilesystemError(ErrCodeExist, dst.path, nil)
	}

	if err == nil && dt.IsDir() {
		st, err := os.Lstat(src.path)
		if err != nil {
			return errors.WithStack(err)
		}
		if st.IsDir() {
			return merge(src, dst, o)
		}
	}

	if err == nil {
		if err := rmR(dst.path); err != nil {
			return err
		}
	}

	o.report("mv %s %s", src, dst)
	if err := rename(src.path, dst.path); err != nil {
		if !ufs.IsCrossDevice(err) {
			return errors.WithStack(ufs.ConvertErrorType(err))
		}
		log.WithField("subsystem", "filesystem").
			WithField("from", src.path).
			WithField("to", dst.path).
			Debug("rename crosses filesystems, falling back to copy and remove")
		if err := copyEntry(src, dst, o, nil); err != nil {
			return err
		}
		return rmR(src.path)
	}
	return nil
}

// merge moves every child of the src directory into the existing dst
// directory and then removes src.
func merge(src, dst Path, o Options) error {
	entries, err := Each(src.path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := move(e.Path, dst.Join(e.Path.Base()), o); err != nil {
			return err
		}
	}
	return rmR(src.path)
}
