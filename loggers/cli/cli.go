package cli

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"emperror.dev/errors"
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	color2 "github.com/fatih/color"
	"github.com/mattn/go-colorable"
)

var Default = New(os.Stderr, true)

var (
	bold    = color2.New(color2.Bold)
	boldred = color2.New(color2.Bold, color2.FgRed)
)

var Strings = [...]string{
	log.DebugLevel: "DEBUG",
	log.InfoLevel:  " INFO",
	log.WarnLevel:  " WARN",
	log.ErrorLevel: "ERROR",
	log.FatalLevel: "FATAL",
}

// Handler writes log entries in a human readable form, one line per entry
// followed by the stack trace of any "error" field when Stacktrace is set.
type Handler struct {
	mu      sync.Mutex
	Writer  io.Writer
	Padding int
	// Prefix every line with the time the entry was handled.
	Timestamps bool
	// Print the stack trace of errors attached to an entry.
	Stacktrace bool

	now func() time.Time
}

func New(w io.Writer, useColors bool) *Handler {
	h := &Handler{Padding: 2, Timestamps: true, now: time.Now}
	if f, ok := w.(*os.File); ok && useColors {
		h.Writer = colorable.NewColorable(f)
	} else {
		h.Writer = colorable.NewNonColorable(w)
	}
	return h
}

// HandleLog implements log.Handler.
func (h *Handler) HandleLog(e *log.Entry) error {
	color := cli.Colors[e.Level]
	level := Strings[e.Level]
	names := e.Fields.Names()

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.Timestamps {
		color.Fprintf(h.Writer, "%s: [%s] %-25s", bold.Sprintf("%*s", h.Padding+1, level), h.now().Format(time.StampMilli), e.Message)
	} else {
		color.Fprintf(h.Writer, "%s: %-25s", bold.Sprintf("%*s", h.Padding+1, level), e.Message)
	}

	for _, name := range names {
		if name == "source" {
			continue
		}
		fmt.Fprintf(h.Writer, " %s=%v", color.Sprint(name), e.Fields.Get(name))
	}

	fmt.Fprintln(h.Writer)

	if !h.Stacktrace {
		return nil
	}
	if err, ok := e.Fields.Get("error").(error); ok {
		// Attach the stacktrace if it is missing at this point, but don't point
		// it specifically to this line since that is irrelevant.
		err = errors.WithStackDepthIf(err, 1)
		fmt.Fprintf(h.Writer, "\n%s\n%+v\n\n", boldred.Sprintf("Stacktrace:"), err)
	}

	return nil
}
