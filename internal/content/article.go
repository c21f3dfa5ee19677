package content

// Locale identifies one of the site's supported language variants.
type Locale string

const (
	LocaleKurdish Locale = "ku"
	LocaleFarsi   Locale = "fa"
	LocaleEnglish Locale = "en"
)

// Locales returns the supported locales in display order.
func Locales() []Locale {
	return []Locale{LocaleKurdish, LocaleFarsi, LocaleEnglish}
}

// IsSupported reports whether l is one of the site's locales.
func (l Locale) IsSupported() bool {
	switch l {
	case LocaleKurdish, LocaleFarsi, LocaleEnglish:
		return true
	}

	return false
}

// OrDefault returns l when it is a supported locale, otherwise fallback.
func (l Locale) OrDefault(fallback Locale) Locale {
	if l.IsSupported() {
		return l
	}

	return fallback
}

// Translation is one language variant of an article. A missing excerpt is an
// explicit nil, not an absent key.
type Translation struct {
	Locale  Locale
	Title   string
	Excerpt *string
	Content string
}

// Article is a published news article identified by its slug. Translations
// maps every supported locale to its variant; a nil entry means the article
// has not been translated into that locale.
type Article struct {
	Slug         string
	Translations map[Locale]*Translation
}

// Translation returns the article's variant for the given locale, or nil.
func (a *Article) Translation(locale Locale) *Translation {
	return a.Translations[locale]
}
