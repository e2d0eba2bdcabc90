// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: Copyright (c) 2024 Matthew Penner

//go:build unix

package ufs

import (
	"errors"
	iofs "io/fs"
	"os"

	"golang.org/x/sys/unix"
)

var (
	// ErrIsDirectory is an error for when an operation that operates only on
	// files is given a path to a directory.
	ErrIsDirectory = errors.New("is a directory")
	// ErrNotDirectory is an error for when an operation that operates only on
	// directories is given a path to a file.
	ErrNotDirectory = errors.New("not a directory")
	// ErrCrossDevice is an error for when a rename or hard link is attempted
	// between two different filesystems.
	ErrCrossDevice = errors.New("invalid cross-device link")
	// ErrTextBusy is an error for when a file is opened for writing while it
	// is being executed.
	ErrTextBusy = errors.New("text file busy")

	// ErrExist is an error for when an entry already exists.
	ErrExist = iofs.ErrExist
	// ErrNotExist is an error for when an entry does not exist.
	ErrNotExist = iofs.ErrNotExist
	// ErrPermission is an error for when the required permissions to perform an
	// operation are missing.
	ErrPermission = iofs.ErrPermission
)

// LinkError records an error during a link or symlink or rename
// system call and the paths that caused it.
type LinkError = os.LinkError

// PathError records an error and the operation and file path that caused it.
type PathError = iofs.PathError

// ConvertErrorType converts errors returned by the os package into our
// sentinel errors so callers can compare against consistent values. Errors
// that are not a *PathError or *LinkError are returned unchanged.
func ConvertErrorType(err error) error {
	if err == nil {
		return nil
	}
	var pErr *PathError
	if errors.As(err, &pErr) {
		if s := sentinel(pErr.Err); s != nil {
			return &PathError{Op: pErr.Op, Path: pErr.Path, Err: s}
		}
		return err
	}
	var lErr *LinkError
	if errors.As(err, &lErr) {
		if s := sentinel(lErr.Err); s != nil {
			return &LinkError{Op: lErr.Op, Old: lErr.Old, New: lErr.New, Err: s}
		}
	}
	return err
}

func sentinel(err error) error {
	switch {
	// File exists
	case errors.Is(err, unix.EEXIST):
		return ErrExist
	// Is a directory
	case errors.Is(err, unix.EISDIR):
		return ErrIsDirectory
	// Not a directory
	case errors.Is(err, unix.ENOTDIR):
		return ErrNotDirectory
	// No such file or directory
	case errors.Is(err, unix.ENOENT):
		return ErrNotExist
	// Operation not permitted, permission denied
	case errors.Is(err, unix.EPERM), errors.Is(err, unix.EACCES):
		return ErrPermission
	// Invalid cross-device link
	case errors.Is(err, unix.EXDEV):
		return ErrCrossDevice
	// Text file busy
	case errors.Is(err, unix.ETXTBSY):
		return ErrTextBusy
	}
	return nil
}

// IsCrossDevice reports whether err was caused by a rename or link crossing
// a filesystem boundary.
func IsCrossDevice(err error) bool {
	return errors.Is(err, unix.EXDEV) || errors.Is(err, ErrCrossDevice)
}

// IsTextBusy reports whether err was caused by opening a file for writing
// while it is being executed.
func IsTextBusy(err error) bool {
	return errors.Is(err, unix.ETXTBSY) || errors.Is(err, ErrTextBusy)
}
