package menu

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/nmaupu/cocktails/internal/catalog"
	"github.com/nmaupu/cocktails/internal/state"
)

var (
	ErrUnknownCocktail   = errors.New("cocktail not found")
	ErrUnknownIngredient = errors.New("ingredient not found")
)

type Service struct {
	catalog *catalog.Loader
	store   state.Store
}

func NewService(loader *catalog.Loader, store state.Store) *Service {
	return &Service{catalog: loader, store: store}
}

// --------------------------------------------------
// View models
// --------------------------------------------------

type IngredientView struct {
	Name      string `json:"name"`
	Qty       string `json:"qty"`
	Available bool   `json:"available"`
}

type CocktailView struct {
	Name        string           `json:"name"`
	Ingredients []IngredientView `json:"ingredients"`
	Group       string           `json:"group"`
	Image       string           `json:"image,omitempty"`
	Enabled     bool             `json:"enabled"`
	IsOverride  bool             `json:"is_override"`
}

type Group struct {
	Label     string         `json:"label"`
	Cocktails []CocktailView `json:"cocktails"`
}

type IngredientStatus struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

// Cocktails loads the catalog and both state documents and computes the
// effective enabled flag for every cocktail.
func (s *Service) Cocktails(ctx context.Context, locale string) ([]CocktailView, error) {
	cocktails, err := s.catalog.Load()
	if err != nil {
		return nil, err
	}
	available, err := s.store.Ingredients(ctx)
	if err != nil {
		return nil, err
	}
	overrides, err := s.store.Overrides(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]CocktailView, 0, len(cocktails))
	for _, c := range cocktails {
		views = append(views, view(c, locale, available, overrides))
	}
	return views, nil
}

// Grouped returns the menu grouped by main alcohol (or declared
// category), groups sorted by label, enabled cocktails first inside
// each group.
func (s *Service) Grouped(ctx context.Context, locale string) ([]Group, error) {
	views, err := s.Cocktails(ctx, locale)
	if err != nil {
		return nil, err
	}

	byLabel := map[string][]CocktailView{}
	for _, v := range views {
		byLabel[v.Group] = append(byLabel[v.Group], v)
	}

	groups := make([]Group, 0, len(byLabel))
	for label, members := range byLabel {
		sort.Slice(members, func(i, j int) bool {
			if members[i].Enabled != members[j].Enabled {
				return members[i].Enabled
			}
			return strings.ToLower(members[i].Name) < strings.ToLower(members[j].Name)
		})
		groups = append(groups, Group{Label: label, Cocktails: members})
	}
	sort.Slice(groups, func(i, j int) bool {
		return strings.ToLower(groups[i].Label) < strings.ToLower(groups[j].Label)
	})
	return groups, nil
}

// Cocktail returns one cocktail by name.
func (s *Service) Cocktail(ctx context.Context, name, locale string) (CocktailView, error) {
	cocktails, err := s.catalog.Load()
	if err != nil {
		return CocktailView{}, err
	}
	c, ok := catalog.Find(cocktails, name)
	if !ok {
		return CocktailView{}, ErrUnknownCocktail
	}

	available, err := s.store.Ingredients(ctx)
	if err != nil {
		return CocktailView{}, err
	}
	overrides, err := s.store.Overrides(ctx)
	if err != nil {
		return CocktailView{}, err
	}
	return view(c, locale, available, overrides), nil
}

// State returns the name→enabled map the guest page polls.
func (s *Service) State(ctx context.Context) (map[string]bool, error) {
	views, err := s.Cocktails(ctx, "")
	if err != nil {
		return nil, err
	}
	result := make(map[string]bool, len(views))
	for _, v := range views {
		result[v.Name] = v.Enabled
	}
	return result, nil
}

// Ingredients lists every catalog ingredient with its stock flag,
// sorted, for the admin page.
func (s *Service) Ingredients(ctx context.Context) ([]IngredientStatus, error) {
	cocktails, err := s.catalog.Load()
	if err != nil {
		return nil, err
	}
	available, err := s.store.Ingredients(ctx)
	if err != nil {
		return nil, err
	}

	names := catalog.AllIngredients(cocktails)
	statuses := make([]IngredientStatus, 0, len(names))
	for _, name := range names {
		inStock, ok := available[name]
		if !ok {
			inStock = true
		}
		statuses = append(statuses, IngredientStatus{Name: name, Available: inStock})
	}
	return statuses, nil
}

// Healthy reports whether the catalog file is present and parseable.
func (s *Service) Healthy() error {
	return s.catalog.Verify()
}

// --------------------------------------------------
// Toggles
// --------------------------------------------------

// ToggleIngredient flips the stock flag of one ingredient and returns
// the new value. When an ingredient comes back in stock, overrides on
// cocktails that are now fully ingredient-available are stale manual
// fixes for a problem that no longer exists, so they are cleared.
func (s *Service) ToggleIngredient(ctx context.Context, name string) (bool, error) {
	cocktails, err := s.catalog.Load()
	if err != nil {
		return false, err
	}

	known := false
	for _, c := range cocktails {
		if c.Uses(name) {
			known = true
			break
		}
	}
	if !known {
		return false, ErrUnknownIngredient
	}

	available, err := s.store.Ingredients(ctx)
	if err != nil {
		return false, err
	}

	current, ok := available[name]
	if !ok {
		current = true
	}
	next := !current
	available[name] = next

	if next {
		overrides, err := s.store.Overrides(ctx)
		if err != nil {
			return false, err
		}
		for _, c := range cocktails {
			if !c.Uses(name) {
				continue
			}
			if _, overridden := overrides[c.Name]; !overridden {
				continue
			}
			if IngredientsAvailable(c, available) {
				delete(overrides, c.Name)
				log.Info().Str("cocktail", c.Name).Str("ingredient", name).
					Msg("cleared stale override")
			}
		}
		if err := s.store.SaveOverrides(ctx, overrides); err != nil {
			return false, err
		}
	}

	if err := s.store.SaveIngredients(ctx, available); err != nil {
		return false, err
	}
	return next, nil
}

// ToggleCocktail sets the cocktail's override to the negation of its
// current effective state.
func (s *Service) ToggleCocktail(ctx context.Context, name string) (bool, error) {
	cocktails, err := s.catalog.Load()
	if err != nil {
		return false, err
	}
	c, ok := catalog.Find(cocktails, name)
	if !ok {
		return false, ErrUnknownCocktail
	}

	available, err := s.store.Ingredients(ctx)
	if err != nil {
		return false, err
	}
	overrides, err := s.store.Overrides(ctx)
	if err != nil {
		return false, err
	}

	enabled := Resolve(c, available, overrides)
	overrides[name] = !enabled

	if err := s.store.SaveOverrides(ctx, overrides); err != nil {
		return false, err
	}
	return !enabled, nil
}

func view(c catalog.Cocktail, locale string, available, overrides map[string]bool) CocktailView {
	ingredients := make([]IngredientView, 0, len(c.Ingredients))
	for _, ing := range c.Ingredients {
		inStock, ok := available[ing.Name.English()]
		if !ok {
			inStock = true
		}
		ingredients = append(ingredients, IngredientView{
			Name:      ing.Name.In(locale),
			Qty:       ing.Qty.String(),
			Available: inStock,
		})
	}

	_, isOverride := overrides[c.Name]
	return CocktailView{
		Name:        c.Name,
		Ingredients: ingredients,
		Group:       Classify(c, locale),
		Image:       c.Image,
		Enabled:     Resolve(c, available, overrides),
		IsOverride:  isOverride,
	}
}
