//go:build !linux && !darwin

package filesystem

import (
	"os"
	"time"
)

// Access times are not read on this platform, copies receive the
// modification time for both values.
func atime(fi os.FileInfo) time.Time {
	return fi.ModTime()
}

func ctime(fi os.FileInfo) time.Time {
	return time.Time{}
}
