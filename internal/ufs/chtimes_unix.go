// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: Copyright (c) 2024 Matthew Penner

//go:build unix

package ufs

import (
	"time"

	"golang.org/x/sys/unix"
)

// Lchtimes changes the access and modification times of the named file
// without following a trailing symbolic link. A zero time leaves that value
// untouched.
func Lchtimes(name string, atime, mtime time.Time) error {
	var utimes [2]unix.Timespec
	set := func(i int, t time.Time) {
		if t.IsZero() {
			utimes[i] = unix.Timespec{Sec: unix.UTIME_OMIT, Nsec: unix.UTIME_OMIT}
		} else {
			utimes[i] = unix.NsecToTimespec(t.UnixNano())
		}
	}
	set(0, atime)
	set(1, mtime)
	if err := unix.UtimesNanoAt(unix.AT_FDCWD, name, utimes[0:], unix.AT_SYMLINK_NOFOLLOW); err != nil {
		return ConvertErrorType(&PathError{Op: "lchtimes", Path: name, Err: err})
	}
	return nil
}
