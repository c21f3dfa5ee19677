package content

func strPtr(s string) *string { return &s }

// Seed returns the fixture article catalog used when no database is
// configured. It is loaded once at startup and never mutated afterwards.
func Seed() []Article {
	return []Article{
		{
			Slug: "arrest-of-jafer-sadeqi",
			Translations: map[Locale]*Translation{
				LocaleKurdish: {
					Locale:  LocaleKurdish,
					Title:   "دەستگیرکردنی جەعفەر سادقی",
					Excerpt: strPtr("چالاکوانی کرێکاری جەعفەر سادقی دەستگیر کرا"),
					Content: "جەعفەر سادقی لە ماڵەکەی خۆی لە سنە دەستگیر کرا.",
				},
				LocaleFarsi: {
					Locale:  LocaleFarsi,
					Title:   "بازداشت جعفر صادقی",
					Excerpt: strPtr("جعفر صادقی فعال کارگری بازداشت شد"),
					Content: "جعفر صادقی در منزل خود در سنندج بازداشت شد.",
				},
				LocaleEnglish: {
					Locale:  LocaleEnglish,
					Title:   "Arrest of Jafer Sadeqi",
					Excerpt: strPtr("Labour activist Jafer Sadeqi detained"),
					Content: "Jafer Sadeqi was detained at his home in Sanandaj.",
				},
			},
		},
		{
			Slug: "teachers-strike-spreads",
			Translations: map[Locale]*Translation{
				LocaleKurdish: {
					Locale:  LocaleKurdish,
					Title:   "مانگرتنی مامۆستایان بەردەوامە",
					Content: "مانگرتنی مامۆستایان لە چەند شارێکدا بەردەوامە.",
				},
				LocaleEnglish: {
					Locale:  LocaleEnglish,
					Title:   "Teachers' strike spreads",
					Excerpt: strPtr("Walkouts reported in several provinces"),
					Content: "The teachers' strike spread to several provinces this week.",
				},
			},
		},
		{
			Slug: "border-trade-reopens",
			Translations: map[Locale]*Translation{
				LocaleFarsi: {
					Locale:  LocaleFarsi,
					Title:   "بازگشایی تجارت مرزی",
					Content: "گذرگاه مرزی پس از دو هفته بازگشایی شد.",
				},
				LocaleEnglish: {
					Locale:  LocaleEnglish,
					Title:   "Border trade reopens",
					Content: "The border crossing reopened after a two-week closure.",
				},
			},
		},
		{
			Slug: "water-crisis-in-sanandaj",
			Translations: map[Locale]*Translation{
				LocaleKurdish: {
					Locale:  LocaleKurdish,
					Title:   "قەیرانی ئاو لە سنە",
					Content: "دابینکردنی ئاو لە چەند گەڕەکێکی سنە پچڕاوە.",
				},
			},
		},
	}
}
