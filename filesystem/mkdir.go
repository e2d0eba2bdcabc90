package filesystem

import (
	"os"

	"emperror.dev/errors"

	"github.com/pterodactyl/pa/internal/ufs"
)

// Mkdir creates the given directories along with any missing parents. Every
// directory created receives the mode from the options, defaulting to 0744.
// A directory that already exists returns ErrCodeExist unless Force is set.
func Mkdir(o Options, paths ...string) error {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if exists(p) {
			if o.Force {
				continue
			}
			return newFilesystemError(ErrCodeExist, p, nil)
		}
		if err := mkdirAll(p, o.dirMode(), o); err != nil {
			return err
		}
	}
	return nil
}

// MkdirF is Mkdir with Force set.
func MkdirF(paths ...string) error {
	return Mkdir(Options{Force: true}, paths...)
}

// mkdirAll creates the directory and every missing parent, starting at the
// parent closest to the root.
func mkdirAll(p string, mode os.FileMode, o Options) error {
	var stack []string
	for dir := p; !exists(dir); {
		stack = append(stack, dir)
		parent, _ := ufs.SplitPath(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	for i := len(stack) - 1; i >= 0; i-- {
		o.report("mkdir %s", stack[i])
		if err := mkdirOne(stack[i], mode); err != nil {
			return err
		}
	}
	return nil
}

// mkdirOne creates a single directory and sets its mode explicitly, so that
// the umask of the process does not apply.
func mkdirOne(p string, mode os.FileMode) error {
	if err := os.Mkdir(p, mode); err != nil {
		if errors.Is(err, os.ErrExist) {
			return newFilesystemError(ErrCodeExist, p, nil)
		}
		return errors.WithStack(err)
	}
	return errors.WithStack(os.Chmod(p, mode))
}
