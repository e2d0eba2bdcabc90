package filesystem

import (
	"os"

	"emperror.dev/errors"

	"github.com/pterodactyl/pa/internal/ufs"
)

// Touch creates empty files at the given paths with the mode from the
// options, defaulting to 0644. An existing path returns ErrCodeExist unless
// Force is set, in which case it is left alone. With Mkdir set any missing
// parent directories are created first.
func Touch(o Options, paths ...string) error {
	mode := o.fileMode()
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
		if o.Mkdir {
			dir, _ := ufs.SplitPath(p)
			// Parents get the directory mode, not the mode of the file.
			if err := mkdirAll(dir, Options{}.dirMode(), o); err != nil {
				return err
			}
		}
		o.report("touch %s", p)
		f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
		if err != nil {
			if errors.Is(err, os.ErrExist) {
				return newFilesystemError(ErrCodeExist, p, nil)
			}
			return errors.WithStack(err)
		}
		if err := f.Close(); err != nil {
			return errors.WithStack(err)
		}
		if err := os.Chmod(p, mode); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// TouchF is Touch with Force set.
func TouchF(paths ...string) error {
	return Touch(Options{Force: true}, paths...)
}
