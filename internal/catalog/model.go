package catalog

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/nmaupu/cocktails/internal/i18n"
)

// LocalizedString is a locale→text mapping. The YAML form is either a
// plain scalar (treated as English) or a mapping of locale codes.
// The English form is mandatory; it doubles as the state key.
type LocalizedString map[string]string

func (s *LocalizedString) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*s = LocalizedString{i18n.English: value.Value}
		return nil
	case yaml.MappingNode:
		var m map[string]string
		if err := value.Decode(&m); err != nil {
			return err
		}
		if m[i18n.English] == "" {
			return errors.New("localized name is missing its english form")
		}
		*s = m
		return nil
	default:
		return fmt.Errorf("line %d: localized name must be a string or a locale mapping", value.Line)
	}
}

// In returns the text for the given locale, falling back to English.
func (s LocalizedString) In(locale string) string {
	return i18n.Pick(s, locale)
}

// English returns the canonical key form.
func (s LocalizedString) English() string {
	return s[i18n.English]
}

// Quantity keeps the raw display form of an ingredient amount. Recipes
// write things like 4, "1.5 oz", "2 dashes" or "top"; the magnitude only
// matters to the classifier, which parses it on demand.
type Quantity string

func (q *Quantity) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: quantity must be a scalar", value.Line)
	}
	*q = Quantity(value.Value)
	return nil
}

func (q Quantity) String() string {
	return string(q)
}

type Ingredient struct {
	Name LocalizedString `yaml:"name" json:"name"`
	Qty  Quantity        `yaml:"qty" json:"qty"`
}

type Cocktail struct {
	Name        string       `yaml:"name" json:"name"`
	Ingredients []Ingredient `yaml:"ingredients" json:"ingredients"`
	Category    string       `yaml:"category,omitempty" json:"category,omitempty"`
	Image       string       `yaml:"image,omitempty" json:"image,omitempty"`
}

// Uses reports whether the cocktail lists the ingredient, by English name.
func (c Cocktail) Uses(english string) bool {
	for _, ing := range c.Ingredients {
		if ing.Name.English() == english {
			return true
		}
	}
	return false
}
