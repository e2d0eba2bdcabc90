package filesystem

import (
	"io"
	"os"

	"emperror.dev/errors"

	"github.com/pterodactyl/pa/internal/ufs"
)

// Interceptor is called in place of copying every non-directory entry, at
// any depth of the copy. It may change the destination before calling
// perform, skip the entry by not calling perform at all, or return an error
// to abort the copy.
type Interceptor func(src, dst Path, o Options, perform func(dst Path) error) error

// Copy copies the entries matching srcs to dst. With more than one source dst
// must be an existing directory and every source is copied into it, which is
// also the case for a single source when dst is a directory. Otherwise the
// single source is copied to dst itself.
//
// An existing destination returns ErrCodeExist unless Force is set, and
// ErrCodeSameFile when it is the source itself. Modes and times are copied
// from the sources once their data has been written.
func Copy(srcs []string, dst string, o Options) error {
	return CopyWith(srcs, dst, o, nil)
}

// CopyF is Copy with Force set.
func CopyF(srcs []string, dst string) error {
	return Copy(srcs, dst, Options{Force: true})
}

// CopyWith is Copy with every non-directory entry passed through the
// interceptor.
func CopyWith(srcs []string, dst string, o Options, ic Interceptor) error {
	return forEachTarget(srcs, dst, o, func(src, target Path) error {
		o.report("cp %s %s", src, target)
		return copyEntry(src, target, o, ic)
	})
}

// forEachTarget resolves the sources and calls fn with each of them and the
// location it should end up at.
func forEachTarget(srcs []string, dst string, o Options, fn func(src, target Path) error) error {
	matches, err := Glob(srcs...)
	if err != nil {
		return err
	}
	if o.Mkdir && !exists(dst) {
		if err := mkdirAll(dst, o.dirMode(), o); err != nil {
			return err
		}
	}
	d := New(dst)
	isDir := isDirectory(dst)
	if len(matches) > 1 && !isDir {
		return newFilesystemError(ErrCodeNotDirectory, dst, nil)
	}
	for _, src := range matches {
		target := d
		if isDir {
			target = d.Join(src.Base())
		}
		if err := fn(src, target); err != nil {
			return err
		}
	}
	return nil
}

func copyEntry(src, dst Path, o Options, ic Interceptor) error {
	st, err := os.Lstat(src.path)
	if err != nil {
		return errors.WithStack(err)
	}
	if o.FollowSymlink && st.Mode()&os.ModeSymlink != 0 {
		if st, err = os.Stat(src.path); err != nil {
			return errors.WithStack(err)
		}
	}

	switch typeOf(st.Mode()) {
	case TypeDirectory:
		if sameFile(src.path, dst.path) {
			return newFilesystemError(ErrCodeSameFile, dst.path, nil)
		}
		if !o.Force && exists(dst.path) {
			return newFilesystemError(ErrCodeExist, dst.path, nil)
		}
		return copyDir(src, dst, st, o, ic)
	case TypeFile, TypeSocket, TypeSymlink:
		perform := func(target Path) error {
			return copyLeaf(src, target, st, o)
		}
		if ic != nil {
			return ic(src, dst, o, perform)
		}
		return perform(dst)
	}
	return newFilesystemError(ErrCodeUnsupportedType, src.path, nil)
}

func copyDir(src, dst Path, st os.FileInfo, o Options, ic Interceptor) error {
	if err := mkdirOne(dst.path, o.dirMode()); err != nil && !IsErrorCode(err, ErrCodeExist) {
		return err
	}
	if o.Special {
		return nil
	}
	entries, err := Each(src.path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := copyEntry(e.Path, dst.Join(e.Path.Base()), o, ic); err != nil {
			return err
		}
	}
	return applyMetadata(dst.path, st)
}

func copyLeaf(src, dst Path, st os.FileInfo, o Options) error {
	if dt, err := os.Lstat(dst.path); err == nil {
		// Writing the destination would truncate the source before it is read.
		if os.SameFile(st, dt) || sameFile(src.path, dst.path) {
			return newFilesystemError(ErrCodeSameFile, dst.path, nil)
		}
		if !o.Force {
			return newFilesystemError(ErrCodeExist, dst.path, nil)
		}
		// Never write through a symbolic link sitting at the destination.
		if dt.Mode()&os.ModeSymlink != 0 {
			if err := os.Remove(dst.path); err != nil {
				return errors.WithStack(err)
			}
		}
	}

	if st.Mode()&os.ModeSymlink != 0 {
		target, err := os.Readlink(src.path)
		if err != nil {
			return errors.WithStack(err)
		}
		if exists(dst.path) {
			if err := rmR(dst.path); err != nil {
				return err
			}
		}
		if err := os.Symlink(target, dst.path); err != nil {
			return errors.WithStack(err)
		}
	} else if err := copyFile(src.path, dst.path, o); err != nil {
		return err
	}
	return applyMetadata(dst.path, st)
}

func copyFile(src, dst string, o Options) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.WithStack(err)
	}
	defer in.Close()

	out, err := openDestination(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	var w io.Writer = out
	if o.Progress != nil {
		w = io.MultiWriter(out, o.Progress)
	}
	buf := make([]byte, 1024*4)
	if _, err := io.CopyBuffer(w, in, buf); err != nil {
		return errors.Wrap(err, "filesystem: copy: failed to copy file contents")
	}
	if err := out.Close(); err != nil {
		return errors.WithStack(err)
	}
	if o.Progress != nil {
		o.Progress.Done()
	}
	return nil
}

// applyMetadata sets the mode and times of st on the destination. A
// destination that has disappeared in the meantime is ignored. Symbolic links
// only receive their times, since changing the mode would change the target.
func applyMetadata(dst string, st os.FileInfo) error {
	var err error
	if st.Mode()&os.ModeSymlink != 0 {
		err = ufs.Lchtimes(dst, atime(st), st.ModTime())
	} else if err = os.Chmod(dst, st.Mode()&modeBits); err == nil {
		err = os.Chtimes(dst, atime(st), st.ModTime())
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "filesystem: copy: failed to apply metadata")
	}
	return nil
}
