package filesystem

import (
	"os"

	"emperror.dev/errors"
)

// Rm removes files, sockets and symbolic links matching the given paths. A
// directory returns ErrCodeIsDirectory, or is skipped when Force is set.
func Rm(o Options, paths ...string) error {
	matches, err := Glob(paths...)
	if err != nil {
		return err
	}
	for _, p := range matches {
		st, err := os.Lstat(p.path)
		if err != nil {
			if o.Force && errors.Is(err, os.ErrNotExist) {
				continue
			}
			return errors.WithStack(err)
		}
		if st.IsDir() {
			if o.Force {
				continue
			}
			return newFilesystemError(ErrCodeIsDirectory, p.path, nil)
		}
		o.report("rm %s", p)
		if err := os.Remove(p.path); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// RmF is Rm with Force set.
func RmF(paths ...string) error {
	return Rm(Options{Force: true}, paths...)
}

// Rmdir removes the matching directories along with everything inside of
// them. Any other type of entry returns ErrCodeNotDirectory, or is skipped
// when Force is set.
func Rmdir(o Options, paths ...string) error {
	matches, err := Glob(paths...)
	if err != nil {
		return err
	}
	for _, p := range matches {
		st, err := os.Lstat(p.path)
		if err != nil {
			if o.Force && errors.Is(err, os.ErrNotExist) {
				continue
			}
			return errors.WithStack(err)
		}
		if !st.IsDir() {
			if o.Force {
				continue
			}
			return newFilesystemError(ErrCodeNotDirectory, p.path, nil)
		}
		o.report("rmdir %s", p)
		if err := removeTree(p.path); err != nil {
			return err
		}
	}
	return nil
}

// RmdirF is Rmdir with Force set.
func RmdirF(paths ...string) error {
	return Rmdir(Options{Force: true}, paths...)
}

// RmR removes every matching entry regardless of its type, recursively
// removing the contents of directories first.
func RmR(o Options, paths ...string) error {
	return RmIf(o, nil, paths...)
}

// RmIf removes the matching entries for which pred returns true in the same
// way as RmR. The predicate only sees the matches themselves, never the
// contents of a matching directory. A nil predicate matches everything.
func RmIf(o Options, pred func(p Path) bool, paths ...string) error {
	matches, err := Glob(paths...)
	if err != nil {
		return err
	}
	for _, p := range matches {
		if pred != nil && !pred(p) {
			continue
		}
		if o.Force && !exists(p.path) {
			continue
		}
		o.report("rm -r %s", p)
		if err := rmR(p.path); err != nil {
			return err
		}
	}
	return nil
}

// rmR removes a single entry of any type. Symbolic links are removed, never
// followed.
func rmR(p string) error {
	st, err := os.Lstat(p)
	if err != nil {
		return errors.WithStack(err)
	}
	if st.IsDir() {
		return removeTree(p)
	}
	return errors.WithStack(os.Remove(p))
}

// removeTree empties a directory depth first and then removes it.
func removeTree(dir string) error {
	entries, err := Each(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.Type == TypeDirectory {
			err = removeTree(e.Path.path)
		} else {
			err = os.Remove(e.Path.path)
		}
		if err != nil {
			return errors.WithStack(err)
		}
	}
	return errors.WithStack(os.Remove(dir))
}

// exists reports whether anything, including a dangling symbolic link, is
// present at the path.
func exists(p string) bool {
	_, err := os.Lstat(p)
	return err == nil
}

// sameFile reports whether both paths exist and refer to the same entry,
// without following a final symbolic link on either of them.
func sameFile(a, b string) bool {
	as, err := os.Lstat(a)
	if err != nil {
		return false
	}
	bs, err := os.Lstat(b)
	return err == nil && os.SameFile(as, bs)
}

// isDirectory reports whether the path is a directory or a symbolic link to
// one.
func isDirectory(p string) bool {
	st, err := os.Stat(p)
	return err == nil && st.IsDir()
}
