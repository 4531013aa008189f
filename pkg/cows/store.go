package cows

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/cowsay/pkg/logging"
)

// Extension is the file extension of figure templates.
const Extension = ".cow"

// Store is a read-only mapping from figure name to template bytes.
type Store interface {
	// Lookup returns the template called name.
	Lookup(name string) ([]byte, bool)
	// List returns every name in the store, sorted.
	List() []string
}

//go:embed figures/*.cow
var figureFS embed.FS

var embedded = mustLoadEmbedded(figureFS, "figures")

// MapStore is an immutable in-memory Store.
type MapStore struct {
	templates map[string][]byte
	names     []string
}

// NewMapStore copies templates into a new MapStore.
func NewMapStore(templates map[string][]byte) *MapStore {
	s := &MapStore{templates: make(map[string][]byte, len(templates))}
	for name, data := range templates {
		s.templates[name] = append([]byte(nil), data...)
		s.names = append(s.names, name)
	}
	sort.Strings(s.names)
	return s
}

// Embedded returns the store of figures compiled into the binary.
func Embedded() *MapStore {
	return embedded
}

// Lookup returns a copy of the template called name.
func (s *MapStore) Lookup(name string) ([]byte, bool) {
	data, ok := s.templates[name]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), data...), true
}

// List returns the sorted figure names.
func (s *MapStore) List() []string {
	return append([]string(nil), s.names...)
}

func mustLoadEmbedded(fsys fs.FS, dir string) *MapStore {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		panic("cows: reading embedded figures: " + err.Error())
	}
	templates := make(map[string][]byte, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != Extension {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			panic("cows: reading embedded figure " + entry.Name() + ": " + err.Error())
		}
		templates[strings.TrimSuffix(entry.Name(), Extension)] = data
	}
	return NewMapStore(templates)
}

// DirStore looks figures up in an ordered list of directories. The first
// directory holding name.cow wins.
type DirStore struct {
	dirs []string
}

// NewDirStore returns a DirStore over dirs. Empty entries are ignored.
func NewDirStore(dirs ...string) *DirStore {
	s := &DirStore{}
	for _, d := range dirs {
		if d != "" {
			s.dirs = append(s.dirs, d)
		}
	}
	return s
}

// Dirs returns the searched directories in order.
func (s *DirStore) Dirs() []string {
	return append([]string(nil), s.dirs...)
}

// Lookup reads name.cow from the first directory that has it.
func (s *DirStore) Lookup(name string) ([]byte, bool) {
	if name == "" || filepath.Base(name) != name {
		return nil, false
	}
	logger := logging.GetLogger("cows.dirstore")
	for _, dir := range s.dirs {
		file := filepath.Join(dir, name+Extension)
		data, err := os.ReadFile(file)
		if err == nil {
			logger.Debug().Str("path", file).Msg("Found figure in directory")
			return data, true
		}
		if !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("path", file).Msg("Skipping unreadable figure")
		}
	}
	return nil, false
}

// List returns the distinct names of all figures in the directories.
func (s *DirStore) List() []string {
	seen := make(map[string]bool)
	var names []string
	for _, dir := range s.dirs {
		matches, err := filepath.Glob(filepath.Join(dir, "*"+Extension))
		if err != nil {
			continue
		}
		for _, m := range matches {
			name := strings.TrimSuffix(filepath.Base(m), Extension)
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}
