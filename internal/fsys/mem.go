package fsys

import (
	"io/fs"
	"sort"
)

// Mem is an in-memory FS. Files added with Add exist and can be renamed;
// text registered with AddText is what ReadLines returns.
type Mem struct {
	files map[string]bool
	text  map[string]string
	fail  map[string]error
}

// NewMem returns a Mem holding paths.
func NewMem(paths ...string) *Mem {
	m := &Mem{files: make(map[string]bool), text: make(map[string]string), fail: make(map[string]error)}
	for _, p := range paths {
		m.files[p] = true
	}
	return m
}

// Add creates paths.
func (m *Mem) Add(paths ...string) {
	for _, p := range paths {
		m.files[p] = true
	}
}

// AddText creates path with content s.
func (m *Mem) AddText(path, s string) {
	m.files[path] = true
	m.text[path] = s
}

// FailRename makes renaming oldPath return err.
func (m *Mem) FailRename(oldPath string, err error) {
	m.fail[oldPath] = err
}

// Paths returns every existing path in sorted order.
func (m *Mem) Paths() []string {
	out := make([]string, 0, len(m.files))
	for p := range m.files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func (m *Mem) Exists(path string) bool {
	return m.files[path]
}

func (m *Mem) Rename(oldPath, newPath string) error {
	if err := m.fail[oldPath]; err != nil {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: err}
	}
	if !m.files[oldPath] {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: fs.ErrNotExist}
	}
	if m.files[newPath] {
		return &fs.PathError{Op: "rename", Path: newPath, Err: fs.ErrExist}
	}
	delete(m.files, oldPath)
	m.files[newPath] = true
	if t, ok := m.text[oldPath]; ok {
		delete(m.text, oldPath)
		m.text[newPath] = t
	}
	return nil
}

func (m *Mem) ReadLines(path string) ([]string, error) {
	t, ok := m.text[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return SplitLines(t), nil
}
