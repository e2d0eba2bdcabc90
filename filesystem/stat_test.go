package filesystem

import (
	"os"
	"strings"
	"testing"
	"time"

	. "github.com/franela/goblin"
	"github.com/goccy/go-json"
)

func TestStat(t *testing.T) {
	g := Goblin(t)
	rfs := newRootFs()
	defer rfs.Cleanup()

	g.Describe("Lstat", func() {
		g.BeforeEach(func() {
			rfs.reset()
			rfs.CreateFile("a.txt", "content")
			rfs.CreateDir("dir")
		})

		g.It("describes the entry itself", func() {
			mtime := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
			g.Assert(os.Chmod(rfs.Path("a.txt"), 0o640)).IsNil()
			g.Assert(os.Chtimes(rfs.Path("a.txt"), mtime, mtime)).IsNil()

			e, err := Lstat(rfs.Path("a.txt"))
			g.Assert(err).IsNil()
			g.Assert(e.Type).Equal(TypeFile)
			g.Assert(e.Mode).Equal(os.FileMode(0o640))
			g.Assert(e.ModTime.Equal(mtime)).IsTrue()
			g.Assert(e.Path.Base()).Equal("a.txt")
		})

		g.It("does not follow symbolic links", func() {
			g.Assert(os.Symlink("dir", rfs.Path("link"))).IsNil()

			e, err := Lstat(rfs.Path("link"))
			g.Assert(err).IsNil()
			g.Assert(e.Type).Equal(TypeSymlink)

			e, err = Stat(rfs.Path("link"))
			g.Assert(err).IsNil()
			g.Assert(e.Type).Equal(TypeDirectory)
		})
	})

	g.Describe("Describe", func() {
		g.BeforeEach(func() {
			rfs.reset()
			rfs.CreateFile("a.txt", "hello world\n")
			rfs.CreateDir("dir")
		})

		g.It("detects the mimetype of files", func() {
			d, err := Inspect(rfs.Path("a.txt"))
			g.Assert(err).IsNil()
			g.Assert(strings.HasPrefix(d.Mimetype, "text/plain")).IsTrue()
			g.Assert(d.Size).Equal(int64(12))
		})

		g.It("describes directories and links", func() {
			d, err := Inspect(rfs.Path("dir"))
			g.Assert(err).IsNil()
			g.Assert(d.Mimetype).Equal("inode/directory")

			g.Assert(os.Symlink("a.txt", rfs.Path("link"))).IsNil()
			d, err = Inspect(rfs.Path("link"))
			g.Assert(err).IsNil()
			g.Assert(d.Mimetype).Equal("inode/symlink")
			g.Assert(d.Target).Equal("a.txt")
		})

		g.It("marshals to json", func() {
			g.Assert(os.Chmod(rfs.Path("a.txt"), 0o644)).IsNil()
			d, err := Inspect(rfs.Path("a.txt"))
			g.Assert(err).IsNil()

			b, err := json.Marshal(d)
			g.Assert(err).IsNil()

			var out map[string]interface{}
			g.Assert(json.Unmarshal(b, &out)).IsNil()
			g.Assert(out["name"]).Equal("a.txt")
			g.Assert(out["type"]).Equal("file")
			g.Assert(out["mode_bits"]).Equal("644")
			g.Assert(out["size"]).Equal(float64(12))
			_, ok := out["target"]
			g.Assert(ok).IsFalse()
		})

		g.It("returns an error for a missing entry", func() {
			_, err := Inspect(rfs.Path("missing"))
			g.Assert(err).IsNotNil()
		})
	})

	g.Describe("EntryType", func() {
		g.It("has a readable name", func() {
			g.Assert(TypeFile.String()).Equal("file")
			g.Assert(TypeDirectory.String()).Equal("directory")
			g.Assert(TypeSymlink.String()).Equal("symlink")
			g.Assert(TypeSocket.String()).Equal("socket")
			g.Assert(TypeUnknown.String()).Equal("unknown")
		})
	})
}
