package cmd

import (
	"os"
	"path/filepath"

	"github.com/pterodactyl/pa/config"
)

// findConfiguration looks through the locations a configuration file may be
// stored at and returns the first one that exists. The user's configuration
// directory takes priority over the system wide default. An empty string is
// returned when no configuration file could be found.
func findConfiguration() (string, error) {
	var check []string
	if d, err := os.UserConfigDir(); err == nil {
		check = append(check, filepath.Join(d, "pa", "config.yml"))
	}
	check = append(check, config.DefaultLocation)

	for _, p := range check {
		if s, err := os.Stat(p); err != nil {
			if !os.IsNotExist(err) {
				return "", err
			}
		} else if !s.IsDir() {
			return p, nil
		}
	}
	return "", nil
}
