// Package schedule turns a child's declarative configuration into a
// validated weekly event timeline. All entry points are pure functions
// taking an explicit reference time; nothing in this package reads the
// wall clock or performs I/O.
package schedule
