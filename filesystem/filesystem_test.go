package filesystem

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type rootFs struct {
	root string
}

func newRootFs() *rootFs {
	tmpDir, err := os.MkdirTemp(os.TempDir(), "pa")
	if err != nil {
		panic(err)
	}
	rfs := &rootFs{root: tmpDir}
	rfs.reset()
	return rfs
}

// Path returns the absolute location of p inside the test root.
func (rfs *rootFs) Path(p ...string) string {
	return filepath.Join(append([]string{rfs.root, "files"}, p...)...)
}

func (rfs *rootFs) CreateFile(p string, c string) {
	full := rfs.Path(p)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		panic(err)
	}
	if err := os.WriteFile(full, []byte(c), 0o644); err != nil {
		panic(err)
	}
}

func (rfs *rootFs) CreateDir(p string) {
	if err := os.MkdirAll(rfs.Path(p), 0o755); err != nil {
		panic(err)
	}
}

func (rfs *rootFs) ReadFile(p string) string {
	b, err := os.ReadFile(rfs.Path(p))
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return string(b)
}

func (rfs *rootFs) Exists(p string) bool {
	_, err := os.Lstat(rfs.Path(p))
	return err == nil
}

// Tree returns every entry below p as a sorted list of relative paths, with
// the contents of regular files appended after a colon.
func (rfs *rootFs) Tree(p string) []string {
	base := rfs.Path(p)
	var out []string
	_ = filepath.Walk(base, func(path string, info os.FileInfo, err error) error {
		if err != nil || path == base {
			return err
		}
		rel, _ := filepath.Rel(base, path)
		if info.Mode().IsRegular() {
			b, _ := os.ReadFile(path)
			rel += ":" + string(b)
		} else if info.IsDir() {
			rel += "/"
		}
		out = append(out, rel)
		return nil
	})
	sort.Strings(out)
	return out
}

func (rfs *rootFs) reset() {
	if err := os.RemoveAll(filepath.Join(rfs.root, "files")); err != nil {
		if !os.IsNotExist(err) {
			panic(err)
		}
	}
	if err := os.Mkdir(filepath.Join(rfs.root, "files"), 0o755); err != nil {
		panic(err)
	}
}

func (rfs *rootFs) Cleanup() {
	_ = os.RemoveAll(rfs.root)
}

// sink collects the lines reported by verbose operations.
type sink struct {
	lines []string
}

func (s *sink) Options(o Options) Options {
	o.Verbose = true
	o.Sink = func(line string) {
		s.lines = append(s.lines, line)
	}
	return o
}

func (s *sink) String() string {
	return strings.Join(s.lines, "\n")
}
