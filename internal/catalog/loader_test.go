package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

const fixtureYAML = `
cocktails:
  - name: Daiquiri
    image: daiquiri.jpg
    ingredients:
      - name: White rum
        qty: 2 oz
      - name:
          en: Lime juice
          fr: Jus de citron vert
        qty: 1 oz
      - name: Sugar cube
        qty: 1
  - name: Virgin Colada
    category: mocktail
    ingredients:
      - name: Pineapple juice
        qty: 3 oz
`

func writeFixture(t *testing.T, content string) *Loader {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cocktails.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return NewLoader(path)
}

func TestLoad(t *testing.T) {
	cocktails, err := writeFixture(t, fixtureYAML).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cocktails) != 2 {
		t.Fatalf("expected 2 cocktails, got %d", len(cocktails))
	}

	daiquiri := cocktails[0]
	if daiquiri.Name != "Daiquiri" || daiquiri.Image != "daiquiri.jpg" {
		t.Errorf("unexpected cocktail: %+v", daiquiri)
	}
	if len(daiquiri.Ingredients) != 3 {
		t.Fatalf("expected 3 ingredients, got %d", len(daiquiri.Ingredients))
	}

	// Plain scalar name is English.
	if got := daiquiri.Ingredients[0].Name.English(); got != "White rum" {
		t.Errorf("expected White rum, got %q", got)
	}
	// Locale mapping keeps both forms.
	lime := daiquiri.Ingredients[1].Name
	if lime.In("fr") != "Jus de citron vert" || lime.English() != "Lime juice" {
		t.Errorf("unexpected localized name: %v", lime)
	}
	// Unknown locale falls back to English.
	if lime.In("de") != "Lime juice" {
		t.Errorf("expected English fallback, got %q", lime.In("de"))
	}

	// Numeric quantities keep their display form.
	if got := daiquiri.Ingredients[2].Qty.String(); got != "1" {
		t.Errorf("expected quantity \"1\", got %q", got)
	}

	if cocktails[1].Category != "mocktail" {
		t.Errorf("expected category mocktail, got %q", cocktails[1].Category)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := NewLoader("does/not/exist.yaml").Load(); err == nil {
		t.Fatal("expected an error for a missing catalog")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	if _, err := writeFixture(t, "cocktails: [unbalanced").Load(); err == nil {
		t.Fatal("expected a parse error")
	}
}

// TestLoad_LocalizedNameRequiresEnglish: locale maps without an English
// form have no state key and are rejected.
func TestLoad_LocalizedNameRequiresEnglish(t *testing.T) {
	bad := `
cocktails:
  - name: Broken
    ingredients:
      - name:
          fr: Jus de citron vert
        qty: 1 oz
`
	if _, err := writeFixture(t, bad).Load(); err == nil {
		t.Fatal("expected an error for a name without an English form")
	}
}

func TestAllIngredients(t *testing.T) {
	cocktails, err := writeFixture(t, fixtureYAML).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	names := AllIngredients(cocktails)
	want := []string{"Lime juice", "Pineapple juice", "Sugar cube", "White rum"}
	if len(names) != len(want) {
		t.Fatalf("expected %d ingredients, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], names[i])
		}
	}
}

func TestFind(t *testing.T) {
	cocktails, err := writeFixture(t, fixtureYAML).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, ok := Find(cocktails, "Daiquiri"); !ok {
		t.Error("expected to find Daiquiri")
	}
	if _, ok := Find(cocktails, "daiquiri"); ok {
		t.Error("names are exact keys, lookup must be case-sensitive")
	}
	if _, ok := Find(cocktails, "Nope"); ok {
		t.Error("expected miss for unknown name")
	}
}
