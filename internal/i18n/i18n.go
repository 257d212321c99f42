package i18n

// The menu ships in exactly two locales. English is also the key locale:
// ingredient availability and cocktail overrides are keyed by English names.
const (
	English = "en"
	French  = "fr"
)

const Default = English

// CookieName is the locale cookie set by /api/set-language.
const CookieName = "lang"

func Valid(locale string) bool {
	return locale == English || locale == French
}

// Normalize maps anything unknown back to the default locale.
func Normalize(locale string) string {
	if Valid(locale) {
		return locale
	}
	return Default
}

// Pick returns the translation for locale, falling back to English.
func Pick(values map[string]string, locale string) string {
	if v, ok := values[Normalize(locale)]; ok && v != "" {
		return v
	}
	return values[English]
}
