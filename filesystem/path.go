package filesystem

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/pterodactyl/pa/internal/ufs"
)

// Splits a base name into its stem and extension. The extension is whatever
// follows the last dot, as long as the stem is not left empty.
var nameExtRegex = regexp.MustCompile(`^(.+?)(?:\.([^.]+))?$`)

// Matches paths that explicitly start in the current or parent directory.
var relativePrefixRegex = regexp.MustCompile(`^\.\.?/`)

// Path is an immutable filesystem path. The components derived from it are
// computed on first use and cached, so a Path should be passed around by
// value rather than rebuilt from its string.
type Path struct {
	path string
	c    *components
}

type components struct {
	once      sync.Once
	dir       string
	dirStrict string
	base      string
	name      string
	ext       string

	absOnce sync.Once
	abs     string
}

// Fields are the parts a path is assembled from by Build and Rename. Empty
// values are treated as unset.
type Fields struct {
	// The complete path. When set every other field is ignored.
	Path string
	Dir  string
	// The final element, including its extension.
	Base string
	// The final element without its extension.
	Name string
	// The extension without a leading dot.
	Ext string
	// The extension including its leading dot. Takes priority over Ext.
	Fext string
}

// New returns a Path for the given string.
func New(p string) Path {
	return Path{path: p, c: &components{}}
}

func (p Path) parts() *components {
	c := p.c
	if c == nil {
		c = &components{}
	}
	c.once.Do(func() {
		c.dir, c.base = ufs.SplitPath(p.path)
		if c.dir == "." || c.dir == ".." {
			if !relativePrefixRegex.MatchString(p.path) {
				c.dirStrict = ""
			} else {
				c.dirStrict = c.dir
			}
		} else {
			c.dirStrict = c.dir
		}
		c.name, c.ext = splitExt(c.base)
	})
	return c
}

func splitExt(base string) (string, string) {
	m := nameExtRegex.FindStringSubmatch(base)
	if m == nil {
		return base, ""
	}
	return m[1], m[2]
}

// String returns the path as it was provided.
func (p Path) String() string {
	return p.path
}

// Absolute returns the absolute representation of the path. If the working
// directory cannot be determined the path is returned unchanged.
func (p Path) Absolute() string {
	c := p.parts()
	c.absOnce.Do(func() {
		abs, err := filepath.Abs(p.path)
		if err != nil {
			abs = p.path
		}
		c.abs = abs
	})
	return c.abs
}

// Dir returns the parent directory of the path, which may be ".", ".." or "/".
func (p Path) Dir() string {
	return p.parts().dir
}

// DirStrict is Dir, except that it is empty when the parent is the implicit
// current directory. "foo" has a DirStrict of "" while "./foo" keeps ".".
func (p Path) DirStrict() string {
	return p.parts().dirStrict
}

// Base returns the final element of the path.
func (p Path) Base() string {
	return p.parts().base
}

// Name returns the final element of the path without its extension.
func (p Path) Name() string {
	return p.parts().name
}

// Ext returns the extension of the path without the leading dot.
func (p Path) Ext() string {
	return p.parts().ext
}

// Fext returns the extension of the path including the leading dot, or an
// empty string if the path has no extension.
func (p Path) Fext() string {
	if e := p.Ext(); e != "" {
		return "." + e
	}
	return ""
}

// Join returns a new Path with the given elements appended.
func (p Path) Join(elem ...string) Path {
	return New(Join(append([]string{p.path}, elem...)...))
}

// Add returns a new Path with the suffix appended to the string as is, so
// New("a.txt").Add("~") is "a.txt~".
func (p Path) Add(suffix string) Path {
	return New(p.path + suffix)
}

// Replace returns a new Path with every match of re replaced by repl.
func (p Path) Replace(re *regexp.Regexp, repl string) Path {
	return New(re.ReplaceAllString(p.path, repl))
}

// Rename returns a new Path built from this one with the provided fields
// replacing the existing components.
func (p Path) Rename(f Fields) Path {
	if f.Path != "" {
		return New(f.Path)
	}
	d := Fields{Dir: p.DirStrict()}
	if f.Dir != "" {
		d.Dir = f.Dir
	}
	if f.Base != "" {
		d.Base = f.Base
		return New(Build(d))
	}
	d.Name = p.Name()
	if f.Name != "" {
		d.Name = f.Name
	}
	switch {
	case f.Fext != "":
		d.Fext = f.Fext
	case f.Ext != "":
		d.Ext = f.Ext
	default:
		d.Fext = p.Fext()
	}
	return New(Build(d))
}

// Split splits the path into its parent directory and final element, or into
// every element when all is true. See Split.
func (p Path) Split(all bool) []string {
	return Split(p.path, all)
}

func (p Path) Compare(o Path) int {
	return strings.Compare(p.path, o.path)
}

func (p Path) Equal(o Path) bool {
	return p.path == o.path
}

func (p Path) HasPrefix(prefix string) bool {
	return strings.HasPrefix(p.path, prefix)
}

func (p Path) HasSuffix(suffix string) bool {
	return strings.HasSuffix(p.path, suffix)
}

// Short returns the path with the home directory of the current user
// replaced by "~".
func (p Path) Short() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" || home == "/" {
		return p.path
	}
	home = strings.TrimSuffix(home, "/")
	if p.path == home {
		return "~"
	}
	if strings.HasPrefix(p.path, home+"/") {
		return "~" + p.path[len(home):]
	}
	return p.path
}

// Split returns the parent directory and final element of path. When all is
// true the parent is split repeatedly until it no longer changes, returning
// the root ("/" or ".") followed by every element of the path.
//
//	Split("/home/foo/a.txt", false) // ["/home/foo", "a.txt"]
//	Split("/home/foo/a.txt", true)  // ["/", "home", "foo", "a.txt"]
func Split(path string, all bool) []string {
	dir, base := ufs.SplitPath(path)
	out := []string{base}
	if all {
		for {
			parent, b := ufs.SplitPath(dir)
			if parent == dir {
				break
			}
			out = append(out, b)
			dir = parent
		}
	}
	out = append(out, dir)
	// Elements were collected leaf first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Join joins the non-empty elements with a single separator between each of
// them. Unlike filepath.Join the result is not cleaned.
func Join(elem ...string) string {
	var b strings.Builder
	for _, e := range elem {
		if e == "" {
			continue
		}
		if b.Len() == 0 {
			b.WriteString(e)
			continue
		}
		cur := strings.TrimRight(b.String(), "/")
		b.Reset()
		b.WriteString(cur)
		b.WriteByte('/')
		b.WriteString(strings.TrimLeft(e, "/"))
	}
	return b.String()
}

// Build assembles a path from its fields. An explicit Path wins, then a Base
// joined onto Dir, otherwise Dir, Name and the extension are combined.
func Build(f Fields) string {
	if f.Path != "" {
		return f.Path
	}
	if f.Base != "" {
		return Join(f.Dir, f.Base)
	}
	p := Join(f.Dir, f.Name)
	switch {
	case f.Fext != "":
		p += f.Fext
	case f.Ext != "":
		p += "." + f.Ext
	}
	return p
}
