package filesystem

import (
	"os"
	"testing"

	. "github.com/franela/goblin"

	"github.com/pterodactyl/pa/config"
)

func TestOptions(t *testing.T) {
	g := Goblin(t)

	g.Describe("Options", func() {
		g.AfterEach(func() {
			config.Set(nil)
		})

		g.It("only reports when verbose", func() {
			var lines []string
			o := Options{Sink: func(l string) { lines = append(lines, l) }}
			o.report("rm %s", "a")
			g.Assert(len(lines)).Equal(0)

			o.Verbose = true
			o.report("rm %s", "a")
			g.Assert(lines).Equal([]string{"rm a"})
		})

		g.It("falls back to the configured modes", func() {
			g.Assert(Options{}.dirMode()).Equal(DefaultDirMode)
			g.Assert(Options{}.fileMode()).Equal(DefaultFileMode)
			g.Assert(Options{Mode: 0o700}.dirMode()).Equal(os.FileMode(0o700))

			c, err := config.NewAtPath("")
			g.Assert(err).IsNil()
			c.Defaults.DirMode = "0755"
			c.Defaults.FileMode = "0600"
			config.Set(c)
			g.Assert(Options{}.dirMode()).Equal(os.FileMode(0o755))
			g.Assert(Options{}.fileMode()).Equal(os.FileMode(0o600))

			c.Defaults.DirMode = "bogus"
			g.Assert(Options{}.dirMode()).Equal(DefaultDirMode)
		})

		g.It("resolves the temporary directory", func() {
			g.Assert(Options{TmpDir: "/a"}.tmpDir()).Equal("/a")
			g.Assert(Options{}.tmpDir()).Equal(os.TempDir())

			c, err := config.NewAtPath("")
			g.Assert(err).IsNil()
			c.Defaults.TmpDir = "/configured"
			config.Set(c)
			g.Assert(Options{}.tmpDir()).Equal("/configured")
			g.Assert(Options{TmpDir: "/a"}.tmpDir()).Equal("/a")
		})
	})
}

func TestOpenDestination(t *testing.T) {
	g := Goblin(t)
	rfs := newRootFs()
	defer rfs.Cleanup()

	g.Describe("openDestination", func() {
		g.It("creates and truncates the file", func() {
			rfs.CreateFile("a.txt", "previous content")
			f, err := openDestination(rfs.Path("a.txt"))
			g.Assert(err).IsNil()
			_, err = f.WriteString("new")
			g.Assert(err).IsNil()
			g.Assert(f.Close()).IsNil()
			g.Assert(rfs.ReadFile("a.txt")).Equal("new")
		})

		g.It("does not retry errors other than a busy file", func() {
			_, err := openDestination(rfs.Path("missing/a.txt"))
			g.Assert(err).IsNotNil()
		})
	})
}
