package cows

import (
	"math/rand/v2"
	"os"
	"sort"
	"strings"

	"github.com/arthur-debert/cowsay/pkg/errors"
	"github.com/arthur-debert/cowsay/pkg/logging"
)

// IsPath reports whether name refers to a template file on disk rather than
// a store entry.
func IsPath(name string) bool {
	return strings.Contains(name, Extension)
}

// LoadFile reads a template from disk.
func LoadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "couldn't read cowfile %s", path).
			WithDetail("path", path)
	}
	return data, nil
}

// Resolver finds templates by name across file paths and stores.
type Resolver struct {
	Stores []Store
}

// NewResolver returns a Resolver trying stores in order.
func NewResolver(stores ...Store) *Resolver {
	return &Resolver{Stores: stores}
}

// Resolve returns the template for name. Names containing ".cow" are read
// from disk; other names are looked up in each store in turn.
func (r *Resolver) Resolve(name string) ([]byte, error) {
	logger := logging.GetLogger("cows.resolver")
	if IsPath(name) {
		logger.Debug().Str("path", name).Msg("Loading figure from file")
		return LoadFile(name)
	}

	for _, s := range r.Stores {
		if data, ok := s.Lookup(name); ok {
			logger.Debug().Str("figure", name).Msg("Resolved figure")
			return data, nil
		}
	}
	return nil, errors.Newf(errors.ErrTemplateNotFound, "could not find %s cowfile", name).
		WithDetail("figure", name)
}

// Names returns the sorted union of all store names.
func (r *Resolver) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, s := range r.Stores {
		for _, name := range s.List() {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// Random picks one name uniformly from Names.
func (r *Resolver) Random(rng *rand.Rand) (string, error) {
	names := r.Names()
	if len(names) == 0 {
		return "", errors.New(errors.ErrTemplateNotFound, "no figures available")
	}
	return names[rng.IntN(len(names))], nil
}
