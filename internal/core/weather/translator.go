package weather

// Locale selects the language of user-facing text
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleRussian Locale = "ru"
)

// ParseLocale returns the locale for a code, defaulting to English
func ParseLocale(code string) Locale {
	if Locale(code) == LocaleRussian {
		return LocaleRussian
	}
	return LocaleEnglish
}

var descriptions = map[Locale]map[string]string{
	LocaleEnglish: {
		"clear sky":            "Clear sky",
		"few clouds":           "Few clouds",
		"scattered clouds":     "Scattered clouds",
		"broken clouds":        "Broken clouds",
		"overcast clouds":      "Overcast clouds",
		"light rain":           "Light rain",
		"moderate rain":        "Moderate rain",
		"heavy intensity rain": "Heavy rain",
		"thunderstorm":         "Thunderstorm",
		"snow":                 "Snow",
		"mist":                 "Mist",
		"fog":                  "Fog",
	},
	LocaleRussian: {
		"clear sky":            "Ясное небо",
		"few clouds":           "Малая облачность",
		"scattered clouds":     "Рассеянные облака",
		"broken clouds":        "Разорванные облака",
		"overcast clouds":      "Пасмурно",
		"light rain":           "Легкий дождь",
		"moderate rain":        "Умеренный дождь",
		"heavy intensity rain": "Сильный дождь",
		"thunderstorm":         "Гроза",
		"snow":                 "Снег",
		"mist":                 "Туман",
		"fog":                  "Густой туман",
	},
}

// Translator maps canonical provider condition phrases to localized phrases
type Translator struct {
	phrases map[string]string
}

// NewTranslator creates a translator for the locale
func NewTranslator(locale Locale) *Translator {
	phrases, ok := descriptions[locale]
	if !ok {
		phrases = descriptions[LocaleEnglish]
	}
	return &Translator{phrases: phrases}
}

// Translate returns the localized phrase, or the input unchanged when it is not in the table
func (t *Translator) Translate(phrase string) string {
	if localized, ok := t.phrases[phrase]; ok {
		return localized
	}
	return phrase
}
