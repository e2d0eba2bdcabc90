package filesystem

import (
	"os"
	"testing"

	. "github.com/franela/goblin"
)

func TestMkdir(t *testing.T) {
	g := Goblin(t)
	rfs := newRootFs()
	defer rfs.Cleanup()

	g.Describe("Mkdir", func() {
		g.BeforeEach(func() {
			rfs.reset()
		})

		g.It("creates every missing parent in order", func() {
			var s sink
			err := Mkdir(s.Options(Options{Mode: 0o750}), rfs.Path("A/B/C"))
			g.Assert(err).IsNil()
			g.Assert(s.lines).Equal([]string{
				"mkdir " + rfs.Path("A"),
				"mkdir " + rfs.Path("A/B"),
				"mkdir " + rfs.Path("A/B/C"),
			})
			for _, p := range []string{"A", "A/B", "A/B/C"} {
				st, err := os.Stat(rfs.Path(p))
				g.Assert(err).IsNil()
				g.Assert(st.IsDir()).IsTrue()
				g.Assert(st.Mode().Perm()).Equal(os.FileMode(0o750))
			}
		})

		g.It("uses the default mode regardless of the umask", func() {
			err := Mkdir(Options{}, rfs.Path("default/child"))
			g.Assert(err).IsNil()
			for _, p := range []string{"default", "default/child"} {
				st, err := os.Stat(rfs.Path(p))
				g.Assert(err).IsNil()
				g.Assert(st.Mode().Perm()).Equal(DefaultDirMode)
			}
		})

		g.It("leaves existing parents alone", func() {
			rfs.CreateDir("A")
			g.Assert(os.Chmod(rfs.Path("A"), 0o755)).IsNil()

			err := Mkdir(Options{Mode: 0o700}, rfs.Path("A/B"))
			g.Assert(err).IsNil()
			st, err := os.Stat(rfs.Path("A"))
			g.Assert(err).IsNil()
			g.Assert(st.Mode().Perm()).Equal(os.FileMode(0o755))
		})

		g.It("does not allow the directory to exist", func() {
			rfs.CreateDir("A")
			err := Mkdir(Options{}, rfs.Path("A"))
			g.Assert(IsErrorCode(err, ErrCodeExist)).IsTrue()

			rfs.CreateFile("file", "")
			err = Mkdir(Options{}, rfs.Path("file"))
			g.Assert(IsErrorCode(err, ErrCodeExist)).IsTrue()
		})

		g.It("skips existing directories when forced", func() {
			rfs.CreateDir("A")
			err := MkdirF(rfs.Path("A"), rfs.Path("B/C"))
			g.Assert(err).IsNil()
			g.Assert(rfs.Exists("B/C")).IsTrue()
		})

		g.It("returns an error when a parent is a file", func() {
			rfs.CreateFile("file", "")
			err := Mkdir(Options{}, rfs.Path("file/child"))
			g.Assert(err).IsNotNil()
		})
	})
}
