package filesystem

import (
	"errors"
	"os"
	"testing"

	. "github.com/franela/goblin"
)

func TestRemove(t *testing.T) {
	g := Goblin(t)
	rfs := newRootFs()
	defer rfs.Cleanup()

	g.Describe("Rm", func() {
		g.BeforeEach(func() {
			rfs.reset()
			rfs.CreateFile("a.txt", "a")
			rfs.CreateFile("b.txt", "b")
			rfs.CreateFile("dir/c.txt", "c")
		})

		g.It("removes files matching the patterns", func() {
			err := Rm(Options{}, rfs.Path("*.txt"))
			g.Assert(err).IsNil()
			g.Assert(rfs.Exists("a.txt")).IsFalse()
			g.Assert(rfs.Exists("b.txt")).IsFalse()
			g.Assert(rfs.Exists("dir/c.txt")).IsTrue()
		})

		g.It("refuses to remove a directory", func() {
			err := Rm(Options{}, rfs.Path("dir"))
			g.Assert(IsErrorCode(err, ErrCodeIsDirectory)).IsTrue()
			g.Assert(rfs.Exists("dir/c.txt")).IsTrue()
		})

		g.It("skips directories and missing files when forced", func() {
			err := RmF(rfs.Path("dir"), rfs.Path("missing"), rfs.Path("a.txt"))
			g.Assert(err).IsNil()
			g.Assert(rfs.Exists("dir/c.txt")).IsTrue()
			g.Assert(rfs.Exists("a.txt")).IsFalse()
		})

		g.It("returns an error for a missing file", func() {
			err := Rm(Options{}, rfs.Path("missing"))
			g.Assert(errors.Is(err, os.ErrNotExist)).IsTrue()
		})

		g.It("removes a symbolic link without touching its target", func() {
			g.Assert(os.Symlink(rfs.Path("dir"), rfs.Path("link"))).IsNil()
			err := Rm(Options{}, rfs.Path("link"))
			g.Assert(err).IsNil()
			g.Assert(rfs.Exists("link")).IsFalse()
			g.Assert(rfs.Exists("dir/c.txt")).IsTrue()
		})

		g.It("reports removed files", func() {
			var s sink
			err := Rm(s.Options(Options{}), rfs.Path("a.txt"))
			g.Assert(err).IsNil()
			g.Assert(s.lines).Equal([]string{"rm " + rfs.Path("a.txt")})
		})
	})

	g.Describe("Rmdir", func() {
		g.BeforeEach(func() {
			rfs.reset()
			rfs.CreateFile("a.txt", "a")
			rfs.CreateFile("dir/c.txt", "c")
			rfs.CreateFile("dir/sub/d.txt", "d")
		})

		g.It("removes a directory and its contents", func() {
			err := Rmdir(Options{}, rfs.Path("dir"))
			g.Assert(err).IsNil()
			g.Assert(rfs.Exists("dir")).IsFalse()
		})

		g.It("refuses to remove anything but a directory", func() {
			err := Rmdir(Options{}, rfs.Path("a.txt"))
			g.Assert(IsErrorCode(err, ErrCodeNotDirectory)).IsTrue()
			g.Assert(rfs.Exists("a.txt")).IsTrue()
		})

		g.It("skips files and missing directories when forced", func() {
			err := RmdirF(rfs.Path("a.txt"), rfs.Path("missing"), rfs.Path("dir"))
			g.Assert(err).IsNil()
			g.Assert(rfs.Exists("a.txt")).IsTrue()
			g.Assert(rfs.Exists("dir")).IsFalse()
		})
	})

	g.Describe("RmR", func() {
		g.BeforeEach(func() {
			rfs.reset()
			rfs.CreateFile("a.txt", "a")
			rfs.CreateFile("dir/c.txt", "c")
			rfs.CreateFile("dir/sub/d.txt", "d")
			rfs.CreateFile("dir/sub/deep/e.txt", "e")
			rfs.CreateFile("outside/f.txt", "f")
		})

		g.It("removes a directory and every descendant", func() {
			err := RmR(Options{}, rfs.Path("dir"))
			g.Assert(err).IsNil()
			for _, p := range []string{"dir", "dir/c.txt", "dir/sub", "dir/sub/d.txt", "dir/sub/deep", "dir/sub/deep/e.txt"} {
				g.Assert(rfs.Exists(p)).IsFalse()
			}
			g.Assert(rfs.Exists("a.txt")).IsTrue()
		})

		g.It("removes any type of entry", func() {
			g.Assert(os.Symlink(rfs.Path("outside"), rfs.Path("dir/sub/link"))).IsNil()
			err := RmR(Options{}, rfs.Path("a.txt"), rfs.Path("dir"))
			g.Assert(err).IsNil()
			g.Assert(rfs.Exists("a.txt")).IsFalse()
			g.Assert(rfs.Exists("dir")).IsFalse()
			// Symbolic links inside the tree are not followed.
			g.Assert(rfs.Exists("outside/f.txt")).IsTrue()
		})

		g.It("is idempotent when forced", func() {
			g.Assert(RmR(Options{Force: true}, rfs.Path("missing"))).IsNil()
			g.Assert(RmR(Options{Force: true}, rfs.Path("dir"))).IsNil()
			g.Assert(RmR(Options{Force: true}, rfs.Path("dir"))).IsNil()
		})

		g.It("returns an error for a missing entry", func() {
			err := RmR(Options{}, rfs.Path("missing"))
			g.Assert(errors.Is(err, os.ErrNotExist)).IsTrue()
		})
	})

	g.Describe("RmIf", func() {
		g.BeforeEach(func() {
			rfs.reset()
			rfs.CreateFile("keep.txt", "k")
			rfs.CreateFile("drop.txt", "d")
			rfs.CreateFile("dropdir/keep.txt", "k")
		})

		g.It("only evaluates the predicate against the matches themselves", func() {
			var seen []string
			err := RmIf(Options{}, func(p Path) bool {
				seen = append(seen, p.Base())
				return p.HasPrefix(rfs.Path("drop"))
			}, rfs.Path("*"))
			g.Assert(err).IsNil()

			g.Assert(len(seen)).Equal(3)
			g.Assert(rfs.Exists("keep.txt")).IsTrue()
			g.Assert(rfs.Exists("drop.txt")).IsFalse()
			// The whole directory goes, even though a child would not match.
			g.Assert(rfs.Exists("dropdir")).IsFalse()
		})
	})
}
