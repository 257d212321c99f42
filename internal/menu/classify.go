package menu

import (
	"sort"
	"strconv"
	"strings"

	"github.com/nmaupu/cocktails/internal/catalog"
	"github.com/nmaupu/cocktails/internal/i18n"
)

// A cocktail is displayed under the group of its main alcohol: the first
// ingredient (declaration order) with a positive quantity whose English
// name contains a known spirit substring. An explicit category on the
// recipe bypasses the heuristic entirely.

type spirit struct {
	term  string
	label map[string]string
}

// Terms are matched longest-first so short terms never shadow longer
// ones inside a compound name.
var spirits = []spirit{
	{"whiskey", map[string]string{i18n.English: "Whiskey", i18n.French: "Whisky"}},
	{"whisky", map[string]string{i18n.English: "Whiskey", i18n.French: "Whisky"}},
	{"bourbon", map[string]string{i18n.English: "Whiskey", i18n.French: "Whisky"}},
	{"scotch", map[string]string{i18n.English: "Whiskey", i18n.French: "Whisky"}},
	{"rye", map[string]string{i18n.English: "Whiskey", i18n.French: "Whisky"}},
	{"rum", map[string]string{i18n.English: "Rum", i18n.French: "Rhum"}},
	{"rhum", map[string]string{i18n.English: "Rum", i18n.French: "Rhum"}},
	{"gin", map[string]string{i18n.English: "Gin", i18n.French: "Gin"}},
	{"vodka", map[string]string{i18n.English: "Vodka", i18n.French: "Vodka"}},
	{"tequila", map[string]string{i18n.English: "Tequila", i18n.French: "Tequila"}},
	{"mezcal", map[string]string{i18n.English: "Mezcal", i18n.French: "Mezcal"}},
	{"brandy", map[string]string{i18n.English: "Brandy", i18n.French: "Brandy"}},
	{"cognac", map[string]string{i18n.English: "Cognac", i18n.French: "Cognac"}},
	{"pisco", map[string]string{i18n.English: "Pisco", i18n.French: "Pisco"}},
	{"cachaça", map[string]string{i18n.English: "Cachaça", i18n.French: "Cachaça"}},
	{"cachaca", map[string]string{i18n.English: "Cachaça", i18n.French: "Cachaça"}},
}

var otherLabel = map[string]string{i18n.English: "Other", i18n.French: "Autre"}

// Declared categories, matched case-insensitively against the recipe's
// category key.
var categories = map[string]map[string]string{
	"mocktail": {i18n.English: "Mocktails", i18n.French: "Sans alcool"},
	"shooter":  {i18n.English: "Shooters", i18n.French: "Shooters"},
	"beer":     {i18n.English: "Beer", i18n.French: "Bière"},
	"wine":     {i18n.English: "Wine", i18n.French: "Vin"},
	"other":    {i18n.English: "Other", i18n.French: "Autre"},
}

func init() {
	sort.SliceStable(spirits, func(i, j int) bool {
		return len(spirits[i].term) > len(spirits[j].term)
	})
}

// Classify returns the localized display group for a cocktail.
func Classify(c catalog.Cocktail, locale string) string {
	if c.Category != "" {
		if label, ok := categories[strings.ToLower(c.Category)]; ok {
			return i18n.Pick(label, locale)
		}
		// Unknown category keys display as-is; the catalog is trusted.
		return titleCase(c.Category)
	}

	for _, ing := range c.Ingredients {
		if QuantityValue(ing.Qty.String()) <= 0 {
			continue
		}
		if label, ok := matchSpirit(ing.Name.English()); ok {
			return i18n.Pick(label, locale)
		}
	}

	return i18n.Pick(otherLabel, locale)
}

func matchSpirit(ingredientName string) (map[string]string, bool) {
	name := strings.ToLower(ingredientName)
	for _, sp := range spirits {
		if strings.Contains(name, sp.term) {
			return sp.label, true
		}
	}
	return nil, false
}

// Units that carry a magnitude without a number. "top" and "splash"
// amounts are fillers, not the drink's base.
var unitValues = map[string]float64{
	"dash":      1,
	"drop":      1,
	"teaspoon":  1,
	"bar spoon": 1,
	"top":       0,
	"splash":    0,
}

// QuantityValue parses the numeric magnitude out of a free-form quantity
// such as "1.5 oz", "2 dashes", 15 or "top". Unparseable input is 0.
func QuantityValue(raw string) float64 {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return 0
	}

	// Two-word units first, before the leading-token split eats them.
	if strings.HasPrefix(s, "bar spoon") {
		return unitValues["bar spoon"]
	}

	head := strings.Fields(s)[0]
	if v, ok := unitValues[singular(head)]; ok {
		return v
	}

	v, err := strconv.ParseFloat(head, 64)
	if err != nil {
		return 0
	}
	return v
}

// singular strips the plural endings the catalog actually uses
// ("dashes", "drops", "teaspoons").
func singular(word string) string {
	if strings.HasSuffix(word, "es") {
		if _, ok := unitValues[word[:len(word)-2]]; ok {
			return word[:len(word)-2]
		}
	}
	if strings.HasSuffix(word, "s") {
		if _, ok := unitValues[word[:len(word)-1]]; ok {
			return word[:len(word)-1]
		}
	}
	return word
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
