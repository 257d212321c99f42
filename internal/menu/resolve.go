package menu

import "github.com/nmaupu/cocktails/internal/catalog"

// Resolve computes the effective enabled state of a cocktail. A manual
// override always wins; otherwise the cocktail is enabled iff every
// ingredient is in stock. Missing data defaults permissively: an
// ingredient absent from the state document counts as available.
func Resolve(c catalog.Cocktail, available, overrides map[string]bool) bool {
	if forced, ok := overrides[c.Name]; ok {
		return forced
	}
	return IngredientsAvailable(c, available)
}

// IngredientsAvailable ignores overrides and reports whether every
// ingredient of the cocktail is in stock.
func IngredientsAvailable(c catalog.Cocktail, available map[string]bool) bool {
	for _, ing := range c.Ingredients {
		if inStock, ok := available[ing.Name.English()]; ok && !inStock {
			return false
		}
	}
	return true
}
