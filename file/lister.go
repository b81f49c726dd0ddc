package file

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Lister holds the corpus files to work on: the matching files of a
// directory, sorted, or a single file.
type Lister struct {
	Path  string
	IsDir bool

	filenames []string
}

// NewLister lists the regular files of input ending in ext. If input is not
// a directory it is the only file of the list.
func NewLister(input, ext string) (*Lister, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return &Lister{Path: input, filenames: []string{input}}, nil
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		path := filepath.Join(input, e.Name())
		// follows symlinks
		if !isFile(path) {
			continue
		}
		names = append(names, path)
	}
	slices.Sort(names)

	return &Lister{Path: input, IsDir: true, filenames: names}, nil
}

func (l *Lister) Filenames() []string {
	return l.filenames
}

func (l *Lister) Len() int {
	return len(l.filenames)
}

// Filename returns the file at index, or "" if index is out of range.
func (l *Lister) Filename(index int) string {
	if !l.Contains(index) {
		return ""
	}
	return l.filenames[index]
}

// IndexOf returns the index of filename. An exact match is preferred, else
// the first file whose path contains filename.
func (l *Lister) IndexOf(filename string) (int, bool) {
	if i := slices.Index(l.filenames, filename); i >= 0 {
		return i, true
	}
	for i, f := range l.filenames {
		if strings.Contains(f, filename) {
			return i, true
		}
	}
	return 0, false
}

func (l *Lister) HasNext(index int) bool {
	return index+1 < len(l.filenames)
}

func (l *Lister) Contains(index int) bool {
	return index >= 0 && index < len(l.filenames)
}
