package filesystem

import (
	"os"
	"testing"

	. "github.com/franela/goblin"

	"github.com/pterodactyl/pa/internal/progress"
)

func TestUsage(t *testing.T) {
	g := Goblin(t)
	rfs := newRootFs()
	defer rfs.Cleanup()

	g.Describe("Usage", func() {
		g.BeforeEach(func() {
			rfs.reset()
			rfs.CreateFile("a.txt", "12345")
			rfs.CreateFile("src/one.txt", "one")
			rfs.CreateFile("src/nested/two.txt", "two!")
			rfs.CreateDir("src/empty")
		})

		g.It("sums the regular files below a directory", func() {
			size, err := Usage(false, rfs.Path("src"))
			g.Assert(err).IsNil()
			g.Assert(size).Equal(uint64(7))
		})

		g.It("sums files and glob matches", func() {
			size, err := Usage(false, rfs.Path("a.txt"), rfs.Path("src/*.txt"))
			g.Assert(err).IsNil()
			g.Assert(size).Equal(uint64(8))
		})

		g.It("only counts symbolic link targets when following them", func() {
			err := os.Symlink(rfs.Path("a.txt"), rfs.Path("src/link"))
			g.Assert(err).IsNil()

			size, err := Usage(false, rfs.Path("src"))
			g.Assert(err).IsNil()
			g.Assert(size).Equal(uint64(7))

			size, err = Usage(true, rfs.Path("src"))
			g.Assert(err).IsNil()
			g.Assert(size).Equal(uint64(12))
		})

		g.It("returns an error for a missing path", func() {
			_, err := Usage(false, rfs.Path("missing"))
			g.Assert(err).IsNotNil()
		})
	})

	g.Describe("Copy with progress", func() {
		g.BeforeEach(func() {
			rfs.reset()
			rfs.CreateFile("src/one.txt", "one")
			rfs.CreateFile("src/nested/two.txt", "two!")
		})

		g.It("counts the bytes and files copied", func() {
			p := progress.NewProgress(7)
			err := Copy([]string{rfs.Path("src")}, rfs.Path("dst"), Options{Progress: p})
			g.Assert(err).IsNil()
			g.Assert(p.Written()).Equal(uint64(7))
			g.Assert(p.Files()).Equal(uint64(2))
		})

		g.It("sizes only the files an ignore interceptor copies", func() {
			rfs.CreateFile("src/skip.log", "0123456789")

			skip := IgnoreMatcher(rfs.Path("src"), "*.log")
			total, err := UsageFunc(false, skip, rfs.Path("src"))
			g.Assert(err).IsNil()
			g.Assert(total).Equal(uint64(7))

			p := progress.NewProgress(total)
			err = CopyWith([]string{rfs.Path("src")}, rfs.Path("dst"), Options{Progress: p}, IgnoreInterceptor(rfs.Path("src"), "*.log"))
			g.Assert(err).IsNil()
			g.Assert(p.Written()).Equal(total)
			g.Assert(p.Files()).Equal(uint64(2))
		})
	})
}
