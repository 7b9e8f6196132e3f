package commands

import (
	"errors"
	"strings"
)

// ErrPathTraversal is returned when a requested path contains "..".
var ErrPathTraversal = errors.New("path traversal rejected")

// ValidEntryName reports whether a directory entry name is safe to join
// onto a parent path.
func ValidEntryName(name string) bool {
	return !strings.Contains(name, "..") && !strings.ContainsAny(name, `/\`)
}

// checkContentPath rejects any path containing "..".
func checkContentPath(path string) error {
	if strings.Contains(path, "..") {
		return ErrPathTraversal
	}
	return nil
}
