package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"emperror.dev/errors"
	"github.com/NYTimes/logrotate"
	"github.com/apex/log"
	"github.com/apex/log/handlers/multi"
	"github.com/mitchellh/colorstring"
	"github.com/spf13/cobra"

	"github.com/pterodactyl/pa/config"
	"github.com/pterodactyl/pa/filesystem"
	"github.com/pterodactyl/pa/loggers/cli"
	"github.com/pterodactyl/pa/system"
)

// rootArgs holds the flags shared by every command.
type rootArgs struct {
	ConfigPath string
	Debug      bool
	Verbose    bool
}

// NewRootCommand returns the "pa" command along with all of its sub-commands.
func NewRootCommand() *cobra.Command {
	var args rootArgs
	var showVersion bool

	root := &cobra.Command{
		Use:           "pa",
		Short:         "Copy, move, link and remove files with predictable overwrite rules",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, &args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showVersion {
				fmt.Fprintln(cmd.OutOrStdout(), system.Version)
				return nil
			}
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&args.ConfigPath, "config", "", "set the location for the configuration file")
	root.PersistentFlags().BoolVar(&args.Debug, "debug", false, "pass in order to run pa in debug mode")
	root.PersistentFlags().BoolVarP(&args.Verbose, "verbose", "v", false, "print every change made to the filesystem")
	root.Flags().BoolVar(&showVersion, "version", false, "show the version and exit")

	root.AddCommand(
		newCopyCommand(&args),
		newMoveCommand(&args),
		newRemoveCommand(&args),
		newMkdirCommand(&args),
		newLinkCommand(&args),
		newTouchCommand(&args),
		newMktempCommand(&args),
		newSplitCommand(),
		newStatCommand(),
		newListCommand(),
		newVersionCommand(),
	)

	return root
}

// Execute runs the command tree against the process arguments and returns
// the exit code for the process.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		printError(os.Stderr, err)
		return 1
	}
	return 0
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, colorstring.Color("[red][bold]error:[reset]"), err.Error())
	if config.Get().Debug {
		fmt.Fprintf(w, "%+v\n", err)
	}
}

// initConfig loads the configuration file, applies the environment on top of
// it and configures logging. A missing configuration file is only an error
// when its location was passed explicitly.
func initConfig(cmd *cobra.Command, args *rootArgs) error {
	p := args.ConfigPath
	if p == "" {
		found, err := findConfiguration()
		if err != nil {
			return errors.Wrap(err, "cmd: failed to locate configuration")
		}
		p = found
	}

	var c *config.Configuration
	var err error
	if p != "" {
		if c, err = config.FromFile(p); err != nil {
			return errors.WithMessage(err, "failed to load configuration")
		}
	} else {
		if c, err = config.NewAtPath(""); err != nil {
			return err
		}
		if err := c.ApplyEnvironment(); err != nil {
			return err
		}
	}
	config.Set(c)
	config.SetDebugViaFlag(args.Debug)

	if err := configureLogging(cmd.ErrOrStderr(), config.Get()); err != nil {
		return err
	}
	if c.GetPath() != "" {
		log.WithField("path", c.GetPath()).Debug("loaded configuration from path")
	}
	return nil
}

// Configures the global logger for apex so that we can call it from any
// location in the code without having to pass around a logger instance.
func configureLogging(w io.Writer, c *config.Configuration) error {
	h := cli.New(w, true)
	h.Timestamps = false
	h.Stacktrace = c.Debug

	if c.Debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	if c.Log.File == "" {
		log.SetHandler(h)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(c.Log.File), 0o700); err != nil {
		return errors.Wrap(err, "cmd: failed to create log directory")
	}
	f, err := logrotate.NewFile(c.Log.File)
	if err != nil {
		return errors.WithMessage(err, "failed to open process log file")
	}
	fh := cli.New(f.File, false)
	fh.Stacktrace = true
	log.SetHandler(multi.New(h, fh))
	log.WithField("path", c.Log.File).Debug("writing log files to disk")
	return nil
}

// options builds the filesystem options shared by the mutating commands.
func (a *rootArgs) options(cmd *cobra.Command) filesystem.Options {
	o := filesystem.Options{Verbose: a.Verbose}
	if a.Verbose {
		out := cmd.OutOrStdout()
		o.Sink = func(line string) {
			fmt.Fprintln(out, line)
		}
	}
	return o
}

// parseMode parses an octal permission string such as "755".
func parseMode(s string) (os.FileMode, error) {
	if s == "" {
		return 0, nil
	}
	m, err := strconv.ParseUint(s, 8, 32)
	if err != nil || m > 0o7777 {
		return 0, errors.Errorf("invalid mode %q", s)
	}
	return os.FileMode(m), nil
}
