package filesystem

import (
	"fmt"
	"os"

	"github.com/apex/log"

	"github.com/pterodactyl/pa/config"
	"github.com/pterodactyl/pa/internal/progress"
	"github.com/pterodactyl/pa/system"
)

const (
	DefaultDirMode  os.FileMode = 0o744
	DefaultFileMode os.FileMode = 0o644
)

// Options configures a single call to one of the mutating operations. The
// zero value is valid and uses the defaults for everything.
type Options struct {
	// Overwrite existing destinations and skip missing sources or sources of
	// the wrong type instead of returning an error.
	Force bool
	// Report every mutating action through Sink, or the logger when no sink
	// has been provided.
	Verbose bool
	// Create the destination directory when it does not exist yet.
	Mkdir bool
	// Copy the target of a symbolic link instead of the link itself.
	FollowSymlink bool
	// Only create the directory itself when copying, leaving out its contents.
	Special bool
	// The permission bits for newly created entries. When zero the configured
	// default for the operation is used.
	Mode os.FileMode
	// The directory temporary names are allocated in.
	TmpDir string
	// Receives one line per mutating action when Verbose is set.
	Sink func(line string)
	// Counts the bytes and files written by Copy, and by Move when it has to
	// fall back to copying.
	Progress *progress.Progress
}

func (o Options) report(format string, v ...interface{}) {
	if !o.Verbose {
		return
	}
	line := fmt.Sprintf(format, v...)
	if o.Sink != nil {
		o.Sink(line)
		return
	}
	log.WithField("subsystem", "filesystem").Info(line)
}

// dirMode returns the mode to apply to directories created by Mkdir.
func (o Options) dirMode() os.FileMode {
	if o.Mode != 0 {
		return o.Mode
	}
	if m, err := config.Get().Defaults.DirPerm(); err == nil {
		return m
	}
	return DefaultDirMode
}

// fileMode returns the mode to apply to files created by Touch.
func (o Options) fileMode() os.FileMode {
	if o.Mode != 0 {
		return o.Mode
	}
	if m, err := config.Get().Defaults.FilePerm(); err == nil {
		return m
	}
	return DefaultFileMode
}

func (o Options) tmpDir() string {
	return system.FirstNotEmpty(o.TmpDir, config.Get().Defaults.TmpDir, os.TempDir())
}
