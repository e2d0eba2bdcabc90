// SPDX-License-Identifier: BSD-3-Clause

// Code in this file was derived from `go/src/os/path.go`
// and `go/src/os/path_unix.go`.

// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the `go.LICENSE` file.

//go:build unix

package ufs

// SplitPath returns the parent directory and final element of path without
// cleaning it, matching dirname(3) and basename(3). Trailing slashes are
// ignored, a path without a slash has a parent of ".", and a path made only
// of slashes splits into ("/", "/").
func SplitPath(path string) (dirname string, basename string) {
	if path == "" {
		return ".", ""
	}

	i := len(path) - 1

	// Remove trailing slashes.
	for ; i > 0 && path[i] == '/'; i-- {
		path = path[:i]
	}
	if path == "/" {
		return "/", "/"
	}

	// if no slashes in path, base is path
	dirname = "."
	basename = path

	// Remove leading directory path
	for i--; i >= 0; i-- {
		if path[i] == '/' {
			basename = path[i+1:]
			// Collapse the run of slashes separating dirname from basename.
			j := i
			for j > 0 && path[j-1] == '/' {
				j--
			}
			if j == 0 {
				dirname = "/"
			} else {
				dirname = path[:j]
			}
			break
		}
	}

	return dirname, basename
}
