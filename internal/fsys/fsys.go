// Package fsys is the filesystem collaborator of a rename session.
package fsys

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

// FS is the set of filesystem operations a session needs.
type FS interface {
	Exists(path string) bool
	Rename(oldPath, newPath string) error
	ReadLines(path string) ([]string, error)
}

// OS implements FS on the host filesystem.
type OS struct{}

// Exists reports whether path names an existing entry. Symbolic links are
// not followed, so a dangling link still exists.
func (OS) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// Rename moves oldPath to newPath. It refuses to replace an existing entry
// other than oldPath itself, which a case-only rename on a case-insensitive
// filesystem reaches.
func (OS) Rename(oldPath, newPath string) error {
	if ni, err := os.Lstat(newPath); err == nil {
		if oi, oerr := os.Lstat(oldPath); oerr != nil || !os.SameFile(oi, ni) {
			return &fs.PathError{Op: "rename", Path: newPath, Err: fs.ErrExist}
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.Rename(oldPath, newPath)
}

// ReadLines returns the lines of a text file. A final newline does not
// start another line.
func (OS) ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits s on '\n', dropping the empty line after a trailing
// newline and a '\r' ending any line.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
