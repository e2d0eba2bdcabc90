// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: Copyright (c) 2024 Matthew Penner

// Package ufs holds the small amount of unix specific plumbing the filesystem
// package needs underneath the `os` package: classifying syscall errors into
// stable sentinel values, splitting paths the way dirname(3) and basename(3)
// do, and updating timestamps without following symbolic links.
package ufs
