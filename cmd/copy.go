package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pterodactyl/pa/filesystem"
	"github.com/pterodactyl/pa/internal/progress"
)

var copyArgs struct {
	Force         bool
	Mkdir         bool
	FollowSymlink bool
	Special       bool
	Ignore        []string
	Progress      bool
}

func newCopyCommand(args *rootArgs) *cobra.Command {
	command := &cobra.Command{
		Use:   "cp SOURCE... DEST",
		Short: "Copy files and directories, recursively",
		Long: `Copy files and directories to a destination. When more than one source is given,
or the destination is an existing directory, the sources are copied into it.
Sources may be glob patterns, including "**" to match any number of directories.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, a []string) error {
			o := args.options(cmd)
			o.Force = copyArgs.Force
			o.Mkdir = copyArgs.Mkdir
			o.FollowSymlink = copyArgs.FollowSymlink
			o.Special = copyArgs.Special

			srcs, dst := a[:len(a)-1], a[len(a)-1]
			var ic filesystem.Interceptor
			var skip func(filesystem.Path) bool
			if len(copyArgs.Ignore) > 0 {
				// Patterns are matched relative to the directory being copied.
				base := ""
				if len(srcs) == 1 && filesystem.New(srcs[0]).IsDir() {
					base = strings.TrimSuffix(srcs[0], "/")
				}
				ic = filesystem.IgnoreInterceptor(base, copyArgs.Ignore...)
				skip = filesystem.IgnoreMatcher(base, copyArgs.Ignore...)
			}
			if copyArgs.Progress {
				total, err := filesystem.UsageFunc(o.FollowSymlink, skip, srcs...)
				if err != nil {
					return err
				}
				o.Progress = progress.NewProgress(total)
				stop := renderProgress(cmd.ErrOrStderr(), o.Progress)
				defer stop()
			}
			return filesystem.CopyWith(srcs, dst, o, ic)
		},
	}

	command.Flags().BoolVarP(&copyArgs.Force, "force", "f", false, "overwrite existing destinations")
	command.Flags().BoolVarP(&copyArgs.Mkdir, "mkdir", "p", false, "create the destination directory if it does not exist")
	command.Flags().BoolVarP(&copyArgs.FollowSymlink, "dereference", "L", false, "copy the targets of symbolic links instead of the links")
	command.Flags().BoolVar(&copyArgs.Special, "special", false, "only create directories, without their contents")
	command.Flags().BoolVar(&copyArgs.Progress, "progress", false, "show the progress of the copy")
	command.Flags().StringSliceVar(&copyArgs.Ignore, "ignore", nil, "skip files matching this gitignore style pattern, may be repeated")

	return command
}

// renderProgress redraws the progress bar on w until the returned function is
// called, which draws it one final time.
func renderProgress(w io.Writer, p *progress.Progress) func() {
	done := make(chan struct{})
	stopped := make(chan struct{})
	draw := func() {
		fmt.Fprintf(w, "\r%s (%d files)", p.Progress(25), p.Files())
	}
	go func() {
		defer close(stopped)
		t := time.NewTicker(250 * time.Millisecond)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				draw()
			}
		}
	}()
	return func() {
		close(done)
		<-stopped
		draw()
		fmt.Fprintln(w)
	}
}
