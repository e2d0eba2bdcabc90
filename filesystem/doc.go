// Package filesystem decomposes paths into their components and performs
// recursive, glob driven mutations on the host filesystem: copying, moving,
// removing, linking, creating directory trees and allocating temporary names.
//
// Every operation taking source arguments expands them with Glob first. An
// argument without glob metacharacters is used as given, even when nothing
// exists at that location. Behaviour on conflicts is controlled per call by
// an Options value, most notably Force which turns an existing destination
// or a missing source into something that is silently handled.
//
// None of the functions in this package are safe to call concurrently on
// overlapping paths.
package filesystem
