package config

import (
	"os"
	"strconv"
	"sync"

	"emperror.dev/errors"
	"github.com/creasty/defaults"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const DefaultLocation = "/etc/pa/config.yml"

var (
	mu      sync.RWMutex
	_config *Configuration
)

// Configuration holds the process wide defaults consulted by the filesystem
// operations whenever a call does not specify a value of its own.
type Configuration struct {
	// The location from which this configuration instance was instantiated.
	path string

	// Determines if pa should be running in debug mode. This value is ignored
	// if the debug flag is passed through the command line arguments.
	Debug bool `yaml:"debug"`

	Defaults DefaultsConfiguration `yaml:"defaults"`

	Log LogConfiguration `yaml:"log"`
}

// DefaultsConfiguration defines the values applied to an operation when the
// caller leaves the corresponding option unset.
type DefaultsConfiguration struct {
	// The permission bits applied to every directory created by mkdir. This is
	// an octal string, e.g. "0755".
	DirMode string `default:"0744" yaml:"dir_mode"`

	// The permission bits applied to files created by touch.
	FileMode string `default:"0644" yaml:"file_mode"`

	// The directory temporary names are allocated in. When empty the system
	// temporary directory is used.
	TmpDir string `yaml:"tmp_dir"`
}

type LogConfiguration struct {
	// When set, log output is also written to this file and rotated on SIGHUP.
	File string `yaml:"file"`
}

// Values read from the environment after the configuration file has been
// parsed. PA_TMP_DIR and PA_DEBUG.
type environment struct {
	TmpDir string `split_words:"true"`
	Debug  *bool
}

// NewAtPath creates a new struct and set the path where it should be stored.
// This function does not modify the currently stored global configuration.
func NewAtPath(path string) (*Configuration, error) {
	var c Configuration
	// Configures the default values for many of the configuration options present
	// in the structs. Values set in the configuration file take priority over the
	// default values.
	if err := defaults.Set(&c); err != nil {
		return nil, errors.Wrap(err, "config: failed to set defaults")
	}
	c.path = path
	return &c, nil
}

// FromFile reads the configuration from the provided file and returns it. The
// environment is expanded into the file before it is parsed and PA_ prefixed
// variables are applied on top of the result.
func FromFile(path string) (*Configuration, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	c, err := NewAtPath(path)
	if err != nil {
		return nil, err
	}
	// Replace environment variables within the configuration file with their
	// values from the host system.
	b = []byte(os.ExpandEnv(string(b)))
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, errors.Wrap(err, "config: failed to parse configuration file")
	}
	if err := c.ApplyEnvironment(); err != nil {
		return nil, err
	}
	if _, err := c.Defaults.DirPerm(); err != nil {
		return nil, err
	}
	if _, err := c.Defaults.FilePerm(); err != nil {
		return nil, err
	}
	return c, nil
}

// ApplyEnvironment overrides values with any PA_ prefixed environment variables
// that have been set.
func (c *Configuration) ApplyEnvironment() error {
	var env environment
	if err := envconfig.Process("pa", &env); err != nil {
		return errors.Wrap(err, "config: failed to read environment")
	}
	if env.TmpDir != "" {
		c.Defaults.TmpDir = env.TmpDir
	}
	if env.Debug != nil {
		c.Debug = *env.Debug
	}
	return nil
}

// GetPath returns the location of the configuration file on disk.
func (c *Configuration) GetPath() string {
	return c.path
}

// DirPerm returns the configured directory mode.
func (d DefaultsConfiguration) DirPerm() (os.FileMode, error) {
	return parseMode("dir_mode", d.DirMode)
}

// FilePerm returns the configured file mode.
func (d DefaultsConfiguration) FilePerm() (os.FileMode, error) {
	return parseMode("file_mode", d.FileMode)
}

func parseMode(field, v string) (os.FileMode, error) {
	m, err := strconv.ParseUint(v, 8, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "config: invalid %s %q", field, v)
	}
	if m > 0o7777 {
		return 0, errors.Errorf("config: %s %q has bits outside of 07777", field, v)
	}
	return os.FileMode(m), nil
}

// Set the global configuration instance. This is a blocking operation such that
// anything trying to set a different configuration value, or read the configuration
// will be paused until it is complete.
func Set(c *Configuration) {
	mu.Lock()
	_config = c
	mu.Unlock()
}

// Get returns the global configuration instance. When nothing has been loaded
// a configuration holding only the default values is created and stored.
func Get() *Configuration {
	mu.RLock()
	c := _config
	mu.RUnlock()
	if c != nil {
		return c
	}

	mu.Lock()
	defer mu.Unlock()
	if _config == nil {
		d, err := NewAtPath("")
		if err != nil {
			panic(err)
		}
		_config = d
	}
	return _config
}

// SetDebugViaFlag forces debug mode on for the stored configuration when the
// --debug flag was passed. A false flag leaves the configured value alone.
func SetDebugViaFlag(d bool) {
	if !d {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	if _config != nil {
		_config.Debug = true
	}
}
