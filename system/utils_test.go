package system

import (
	"runtime"
	"testing"

	. "github.com/franela/goblin"
)

func Test_Utils(t *testing.T) {
	g := Goblin(t)

	g.Describe("FirstNotEmpty", func() {
		g.It("should return the first non-empty value", func() {
			g.Assert(FirstNotEmpty("", "", "b", "c")).Equal("b")
			g.Assert(FirstNotEmpty("a", "b")).Equal("a")
		})

		g.It("should return an empty string when every value is empty", func() {
			g.Assert(FirstNotEmpty()).Equal("")
			g.Assert(FirstNotEmpty("", "")).Equal("")
		})
	})

	g.Describe("FormatBytes", func() {
		g.It("should format values below a kibibyte as bytes", func() {
			g.Assert(FormatBytes(0)).Equal("0 B")
			g.Assert(FormatBytes(1023)).Equal("1023 B")
		})

		g.It("should format larger values with binary units", func() {
			g.Assert(FormatBytes(1024)).Equal("1.0 KiB")
			g.Assert(FormatBytes(1536)).Equal("1.5 KiB")
			g.Assert(FormatBytes(int64(5 * 1024 * 1024))).Equal("5.0 MiB")
		})
	})

	g.Describe("GetSystemInformation", func() {
		g.It("should describe the running system", func() {
			i, err := GetSystemInformation()
			g.Assert(err).IsNil()
			g.Assert(i.Version).Equal(Version)
			g.Assert(i.OS).Equal(runtime.GOOS)
			g.Assert(i.KernelVersion != "").IsTrue()
		})
	})
}
