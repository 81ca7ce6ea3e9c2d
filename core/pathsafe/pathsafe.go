// Package pathsafe guards file commands against writing into protected system
// directories and validates path and file name characters.
//
// The reserved character set is the Windows one on every platform so that a
// script is judged the same way wherever it is checked.
package pathsafe

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// reservedChars are forbidden in both paths and file names.
const reservedChars = `<>"|?*`

// separatorChars are additionally forbidden in file names.
const separatorChars = `\/:`

// ForbiddenPathError reports a path that resolves into a protected directory.
type ForbiddenPathError struct {
	Path      string // Path as given by the caller
	Protected string // Deny-list entry that matched
}

func (e *ForbiddenPathError) Error() string {
	return fmt.Sprintf("cannot write into [%s], [%s] is a write protected directory", e.Path, e.Protected)
}

// Checker holds a deny-list of protected directories.
type Checker struct {
	protected []string
}

// NewChecker returns a Checker for the given directories. Empty entries are
// ignored and entries are made absolute.
func NewChecker(protected ...string) *Checker {
	c := &Checker{}
	for _, p := range protected {
		if p == "" {
			continue
		}
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		c.protected = append(c.protected, filepath.Clean(p))
	}
	return c
}

// DefaultProtected returns the Windows directory and both Program Files
// directories from the environment. Unset variables are skipped.
func DefaultProtected() []string {
	var dirs []string
	for _, env := range []string{"WINDIR", "ProgramFiles", "ProgramFiles(x86)"} {
		if v := os.Getenv(env); v != "" {
			dirs = append(dirs, v)
		}
	}
	return dirs
}

// Protected returns the deny-list in use.
func (c *Checker) Protected() []string {
	return append([]string(nil), c.protected...)
}

// Check returns a *ForbiddenPathError when path is, or is nested under, a
// protected directory. When the last element of path holds characters invalid
// in a file name (wildcards), the parent directory is checked instead.
func (c *Checker) Check(path string) error {
	if path == "" {
		return nil
	}

	target := path
	if !IsFileNameValid(filepath.Base(path), "") {
		target = filepath.Dir(path)
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		abs = filepath.Clean(target)
	}

	for _, p := range c.protected {
		if within(abs, p) {
			return &ForbiddenPathError{Path: path, Protected: p}
		}
	}
	return nil
}

// within reports whether path equals dir or lies under it, ignoring case.
func within(path, dir string) bool {
	if strings.EqualFold(path, dir) {
		return true
	}
	prefix := dir
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return len(path) > len(prefix) && strings.EqualFold(path[:len(prefix)], prefix)
}

// IsPathValid reports whether path is free of reserved characters, control
// characters and any character in extra. Separators are allowed.
func IsPathValid(path, extra string) bool {
	return !containsForbidden(path, reservedChars+extra)
}

// IsFileNameValid is IsPathValid that also rejects path separators and ':'.
func IsFileNameValid(name, extra string) bool {
	return !containsForbidden(name, reservedChars+separatorChars+extra)
}

func containsForbidden(s, forbidden string) bool {
	for _, r := range s {
		if r < 0x20 || strings.ContainsRune(forbidden, r) {
			return true
		}
	}
	return false
}
