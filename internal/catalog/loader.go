package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader reads the recipe catalog. The file is immutable per deployment,
// but it is still re-read on every request so edits show up without a
// restart (and so state never goes stale against an in-memory copy).
type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

type document struct {
	Cocktails []Cocktail `yaml:"cocktails"`
}

func (l *Loader) Load() ([]Cocktail, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", l.path, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", l.path, err)
	}
	return doc.Cocktails, nil
}

// Verify loads and discards the catalog; used by the health check.
func (l *Loader) Verify() error {
	_, err := l.Load()
	return err
}

// Find looks a cocktail up by its unique name.
func Find(cocktails []Cocktail, name string) (Cocktail, bool) {
	for _, c := range cocktails {
		if c.Name == name {
			return c, true
		}
	}
	return Cocktail{}, false
}

// AllIngredients returns the unique English ingredient names across the
// whole catalog, sorted case-insensitively.
func AllIngredients(cocktails []Cocktail) []string {
	seen := map[string]bool{}
	var names []string
	for _, c := range cocktails {
		for _, ing := range c.Ingredients {
			name := ing.Name.English()
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names
}
