package content_test

import (
	"testing"

	"github.com/dengnews/shortlink/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocale(t *testing.T) {
	t.Run("supported locales", func(t *testing.T) {
		for _, locale := range content.Locales() {
			assert.True(t, locale.IsSupported(), "locale %q", locale)
		}
	})

	t.Run("unknown locales are not supported", func(t *testing.T) {
		assert.False(t, content.Locale("de").IsSupported())
		assert.False(t, content.Locale("").IsSupported())
		assert.False(t, content.Locale("KU").IsSupported())
	})

	t.Run("OrDefault keeps supported locales", func(t *testing.T) {
		assert.Equal(t, content.LocaleFarsi, content.LocaleFarsi.OrDefault(content.LocaleKurdish))
	})

	t.Run("OrDefault substitutes the fallback", func(t *testing.T) {
		assert.Equal(t, content.LocaleKurdish, content.Locale("tr").OrDefault(content.LocaleKurdish))
	})
}

func TestSeed(t *testing.T) {
	t.Run("contains the fixture article in three locales", func(t *testing.T) {
		articles := content.Seed()

		var found *content.Article

		for i := range articles {
			if articles[i].Slug == "arrest-of-jafer-sadeqi" {
				found = &articles[i]

				break
			}
		}

		require.NotNil(t, found)

		for _, locale := range content.Locales() {
			tr := found.Translation(locale)
			require.NotNil(t, tr, "missing %q translation", locale)
			assert.Equal(t, locale, tr.Locale)
			assert.NotEmpty(t, tr.Title)
			assert.NotEmpty(t, tr.Content)
		}
	})

	t.Run("missing translations are explicit nils", func(t *testing.T) {
		articles := content.Seed()

		for i := range articles {
			if articles[i].Slug == "water-crisis-in-sanandaj" {
				assert.NotNil(t, articles[i].Translation(content.LocaleKurdish))
				assert.Nil(t, articles[i].Translation(content.LocaleFarsi))
				assert.Nil(t, articles[i].Translation(content.LocaleEnglish))
			}
		}
	})

	t.Run("slugs are unique", func(t *testing.T) {
		seen := make(map[string]bool)

		for _, article := range content.Seed() {
			assert.False(t, seen[article.Slug], "duplicate slug %q", article.Slug)
			seen[article.Slug] = true
		}
	})
}
