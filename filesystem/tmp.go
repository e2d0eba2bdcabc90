package filesystem

import (
	"encoding/hex"
	"os"
	"strconv"
	"strings"

	"emperror.dev/errors"
	"github.com/google/uuid"
)

// token returns six uppercase hexadecimal characters taken from the random
// bytes of a v4 UUID.
func token() string {
	u := uuid.New()
	return strings.ToUpper(hex.EncodeToString(u[:3]))
}

// TempName returns a path named "<dir>/<name>.<TOKEN>" that did not exist at
// the time of the call. The name defaults to the process id and the directory
// to Options.TmpDir, then the configured temporary directory and finally the
// system default. Nothing is created.
func TempName(name string, o Options) Path {
	if name == "" {
		name = strconv.Itoa(os.Getpid())
	}
	dir := o.tmpDir()
	for {
		p := New(Join(dir, name+"."+token()))
		if _, err := os.Lstat(p.path); err != nil {
			return p
		}
	}
}

// MkTmpDir creates a new directory with a unique name that only the current
// user can access and returns its path.
func MkTmpDir(name string, o Options) (Path, error) {
	for {
		p := TempName(name, o)
		err := os.Mkdir(p.path, 0o700)
		if err == nil {
			o.report("mkdir %s", p)
			return p, nil
		}
		// Lost a race against another process, pick a different name.
		if !errors.Is(err, os.ErrExist) {
			return Path{}, errors.WithStack(err)
		}
	}
}

// MkTmpFile creates a new empty file with a unique name that only the current
// user can access and returns its path.
func MkTmpFile(name string, o Options) (Path, error) {
	for {
		p := TempName(name, o)
		f, err := os.OpenFile(p.path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
		if err == nil {
			o.report("touch %s", p)
			return p, errors.WithStack(f.Close())
		}
		if !errors.Is(err, os.ErrExist) {
			return Path{}, errors.WithStack(err)
		}
	}
}

// WithTmpDir creates a temporary directory, calls fn with it and removes the
// directory again once fn returns or panics. The directory must be empty by
// then, a failure to remove it is returned along with any error from fn.
func WithTmpDir(name string, o Options, fn func(dir Path) error) (err error) {
	dir, err := MkTmpDir(name, o)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := os.Remove(dir.path); rerr != nil {
			err = errors.Combine(err, errors.Wrap(rerr, "filesystem: failed to remove temporary directory"))
		}
	}()
	return fn(dir)
}

// WithTmpFile creates a temporary file, calls fn with it and removes the file
// once fn returns or panics. A file that fn already removed is not an error.
func WithTmpFile(name string, o Options, fn func(file Path) error) (err error) {
	file, err := MkTmpFile(name, o)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := os.Remove(file.path); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
			err = errors.Combine(err, errors.Wrap(rerr, "filesystem: failed to remove temporary file"))
		}
	}()
	return fn(file)
}
