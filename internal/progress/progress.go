// Package progress tracks the number of bytes moved by a long running copy so
// that it can be rendered for the user while the copy is in flight.
package progress

import (
	"io"
	"strings"
	"sync/atomic"

	"github.com/pterodactyl/pa/system"
)

// Progress counts the bytes written through it. It is safe to write to and
// render from different goroutines.
type Progress struct {
	written uint64
	total   uint64
	files   uint64

	// Writer receives every write when set.
	Writer io.Writer
}

// NewProgress returns a tracker expecting total bytes to be written.
func NewProgress(total uint64) *Progress {
	return &Progress{total: total}
}

// Written returns the number of bytes written so far.
func (p *Progress) Written() uint64 {
	return atomic.LoadUint64(&p.written)
}

// Total returns the number of bytes expected to be written.
func (p *Progress) Total() uint64 {
	return atomic.LoadUint64(&p.total)
}

// SetTotal updates the expected size, such as when it is still being
// calculated while data is already flowing through the tracker.
func (p *Progress) SetTotal(total uint64) {
	atomic.StoreUint64(&p.total, total)
}

// Files returns the number of files that have been completed.
func (p *Progress) Files() uint64 {
	return atomic.LoadUint64(&p.files)
}

// Done marks a single file as completed.
func (p *Progress) Done() {
	atomic.AddUint64(&p.files, 1)
}

func (p *Progress) Write(v []byte) (int, error) {
	n := len(v)
	atomic.AddUint64(&p.written, uint64(n))
	if p.Writer != nil {
		return p.Writer.Write(v)
	}
	return n, nil
}

// Progress renders a bar of the given width followed by the written and total
// sizes, for example "[==        ] 100 B / 1000 B".
func (p *Progress) Progress(width int) string {
	current, total := p.Written(), p.Total()

	ticks := width
	if total > 0 {
		ticks = int(float64(current) / float64(total) * float64(width))
	}
	// The total is an estimate taken before the copy started, so the files
	// may have grown in the meantime.
	if ticks < 0 {
		ticks = 0
	} else if ticks > width {
		ticks = width
	}

	bar := strings.Repeat("=", ticks) + strings.Repeat(" ", width-ticks)
	return "[" + bar + "] " + system.FormatBytes(current) + " / " + system.FormatBytes(total)
}
