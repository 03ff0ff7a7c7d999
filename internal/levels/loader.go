// Package levels loads level files and builds worlds from them.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"slices"
	"strconv"

	"github.com/vovakirdan/rgballs/internal/levels/formats"
)

// ErrLevelNotFound is returned for an index past the last level.
var ErrLevelNotFound = errors.New("levels: level not found")

//go:embed data/*.yaml
var builtin embed.FS

var levelName = regexp.MustCompile(`^(\d{4})\.ya?ml$`)

// Loader reads levels from a file system holding NNNN.yaml files. Levels
// are numbered from 0 without gaps; the first missing index ends the pack.
type Loader struct {
	fsys  fs.FS
	files []string
}

// NewLoader scans fsys for level files.
func NewLoader(fsys fs.FS) (*Loader, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("levels: cannot list levels: %w", err)
	}

	byIndex := make(map[int]string)
	for _, e := range entries {
		m := levelName.FindStringSubmatch(e.Name())
		if e.IsDir() || m == nil {
			continue
		}
		idx, _ := strconv.Atoi(m[1])
		if prev, dup := byIndex[idx]; dup {
			return nil, fmt.Errorf("levels: %s and %s share index %d", prev, e.Name(), idx)
		}
		byIndex[idx] = e.Name()
	}

	l := &Loader{fsys: fsys}
	for i := 0; ; i++ {
		name, ok := byIndex[i]
		if !ok {
			break
		}
		l.files = append(l.files, name)
	}
	return l, nil
}

// Dir returns a loader over a directory on disk.
func Dir(path string) (*Loader, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("levels: %s is not a directory", path)
	}
	return NewLoader(os.DirFS(path))
}

// Builtin returns a loader over the levels shipped with the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtin, "data")
	if err != nil {
		panic(err)
	}
	l, err := NewLoader(sub)
	if err != nil {
		panic(err)
	}
	return l
}

// Open picks the directory loader when dir is set and the built-in pack
// otherwise.
func Open(dir string) (*Loader, error) {
	if dir == "" {
		return Builtin(), nil
	}
	return Dir(dir)
}

// Count returns the number of levels.
func (l *Loader) Count() int {
	return len(l.files)
}

// Files returns the level file names in index order.
func (l *Loader) Files() []string {
	return slices.Clone(l.files)
}

// Load parses the level at index.
func (l *Loader) Load(index int) (*Level, error) {
	if index < 0 || index >= len(l.files) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrLevelNotFound, index, len(l.files))
	}

	f, err := l.fsys.Open(l.files[index])
	if err != nil {
		return nil, fmt.Errorf("levels: cannot open %s: %w", l.files[index], err)
	}
	defer f.Close()

	lf, err := formats.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", l.files[index], err)
	}
	return &Level{Index: index, File: lf}, nil
}

// LoadAll parses every level, stopping at the first error.
func (l *Loader) LoadAll() ([]*Level, error) {
	all := make([]*Level, 0, len(l.files))
	for i := range l.files {
		lvl, err := l.Load(i)
		if err != nil {
			return nil, err
		}
		all = append(all, lvl)
	}
	return all, nil
}
