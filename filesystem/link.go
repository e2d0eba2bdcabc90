package filesystem

import (
	"os"

	"emperror.dev/errors"
)

// Link creates hard links to the entries matching srcs. Each link is created
// at dst, or inside of dst when it is an existing directory. An existing
// entry at the location of the link returns ErrCodeExist unless Force is set,
// in which case it is removed first.
func Link(srcs []string, dst string, o Options) error {
	return link(srcs, dst, o, false)
}

// LinkF is Link with Force set.
func LinkF(srcs []string, dst string) error {
	return Link(srcs, dst, Options{Force: true})
}

// Symlink creates symbolic links pointing at each of the entries matching
// srcs, following the same rules as Link. The link contains the source path
// exactly as it was provided, so relative sources are resolved relative to
// the location of the link.
func Symlink(srcs []string, dst string, o Options) error {
	return link(srcs, dst, o, true)
}

// SymlinkF is Symlink with Force set.
func SymlinkF(srcs []string, dst string) error {
	return Symlink(srcs, dst, Options{Force: true})
}

func link(srcs []string, dst string, o Options, symbolic bool) error {
	matches, err := Glob(srcs...)
	if err != nil {
		return err
	}
	d := New(dst)
	for _, src := range matches {
		target := d
		if isDirectory(dst) {
			target = d.Join(src.Base())
		}
		if exists(target.path) {
			if sameFile(src.path, target.path) {
				return newFilesystemError(ErrCodeSameFile, target.path, nil)
			}
			if !o.Force {
				return newFilesystemError(ErrCodeExist, target.path, nil)
			}
			if err := rmR(target.path); err != nil {
				return err
			}
		}
		if symbolic {
			o.report("ln -s %s %s", src, target)
			err = os.Symlink(src.path, target.path)
		} else {
			o.report("ln %s %s", src, target)
			err = os.Link(src.path, target.path)
		}
		if err != nil {
			if errors.Is(err, os.ErrExist) {
				return newFilesystemError(ErrCodeExist, target.path, err)
			}
			return errors.WithStack(err)
		}
	}
	return nil
}

// Readlink returns the destination of the named symbolic link.
func Readlink(p string) (Path, error) {
	t, err := os.Readlink(p)
	if err != nil {
		return Path{}, errors.WithStack(err)
	}
	return New(t), nil
}
