package filesystem

// The methods in this file expose the package level operations on a Path,
// using the path as the single source or target of the operation.

func (p Path) Copy(dst string, o Options) error {
	return Copy([]string{p.path}, dst, o)
}

func (p Path) CopyWith(dst string, o Options, ic Interceptor) error {
	return CopyWith([]string{p.path}, dst, o, ic)
}

func (p Path) Move(dst string, o Options) error {
	return Move([]string{p.path}, dst, o)
}

// Remove removes the path along with everything inside of it.
func (p Path) Remove(o Options) error {
	return RmR(o, p.path)
}

func (p Path) Link(dst string, o Options) error {
	return Link([]string{p.path}, dst, o)
}

func (p Path) Symlink(dst string, o Options) error {
	return Symlink([]string{p.path}, dst, o)
}

func (p Path) Mkdir(o Options) error {
	return Mkdir(o, p.path)
}

func (p Path) Touch(o Options) error {
	return Touch(o, p.path)
}

func (p Path) Each() ([]Entry, error) {
	return Each(p.path)
}

func (p Path) EachR(fn WalkFunc, o WalkOptions) error {
	return EachR(p.path, fn, o)
}

func (p Path) Readlink() (Path, error) {
	return Readlink(p.path)
}

func (p Path) Lstat() (Entry, error) {
	return Lstat(p.path)
}

// Exists reports whether anything is present at the path. A dangling
// symbolic link exists.
func (p Path) Exists() bool {
	return exists(p.path)
}

// IsDir reports whether the path is a directory, following symbolic links.
func (p Path) IsDir() bool {
	return isDirectory(p.path)
}
