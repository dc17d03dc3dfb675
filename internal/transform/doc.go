// Package transform contains the manifest edits applied by the bunmigrate
// filters. Each transform is a pure in-place edit of a parsed manifest:
// it touches only its own section, leaves every other field untouched, and
// returns the diagnostic notes the caller should surface. Transforms do no
// I/O, which keeps them testable without process-level piping.
package transform
