package weather

import (
	"fmt"
	"strconv"
	"strings"
)

type messages struct {
	current        string
	forecastHeader string
	forecastLine   string
	dateLayout     string
	scraped        string
	scrapeMissing  string
	unavailable    string
	slots          map[Slot]string
}

var localeMessages = map[Locale]messages{
	LocaleEnglish: {
		current:        "Temperature in %s: %s",
		forecastHeader: "Weather forecast for %s:",
		forecastLine:   "%s: %s",
		dateLayout:     "2006-01-02",
		scraped:        "Temperature: %s, Description: %s",
		scrapeMissing:  "Could not retrieve weather data from the website.",
		unavailable:    "Couldn't retrieve weather data. Please try again later.",
		slots: map[Slot]string{
			SlotMorning: "Morning",
			SlotNoon:    "Noon",
			SlotEvening: "Evening",
			SlotNight:   "Night",
		},
	},
	LocaleRussian: {
		current:        "Температура в %s: %s",
		forecastHeader: "Прогноз погоды для %s:",
		forecastLine:   "%s: %s",
		dateLayout:     "02.01.2006",
		scraped:        "Температура: %s, Описание: %s",
		scrapeMissing:  "Не удалось получить данные о погоде с сайта.",
		unavailable:    "Не удалось получить данные о погоде. Попробуйте позже.",
		slots: map[Slot]string{
			SlotMorning: "Утро",
			SlotNoon:    "Обед",
			SlotEvening: "Вечер",
			SlotNight:   "Ночь",
		},
	},
}

// Formatter renders weather data as localized text
type Formatter struct {
	msg        messages
	translator *Translator
}

// NewFormatter creates a formatter for the locale
func NewFormatter(locale Locale) *Formatter {
	msg, ok := localeMessages[locale]
	if !ok {
		locale = LocaleEnglish
		msg = localeMessages[LocaleEnglish]
	}
	return &Formatter{
		msg:        msg,
		translator: NewTranslator(locale),
	}
}

// Temperature renders a temperature with the unit symbol, e.g. "20°C" or "15.5°F"
func (f *Formatter) Temperature(value float64, units Units) string {
	return strconv.FormatFloat(value, 'f', -1, 64) + units.Symbol()
}

// Current renders the single-line current conditions text
func (f *Formatter) Current(city string, temperature float64, description string, units Units) string {
	return f.describe(fmt.Sprintf(f.msg.current, city, f.Temperature(temperature, units)), description)
}

// Forecast renders bucketed forecast days
func (f *Formatter) Forecast(city string, days []ForecastDay, units Units) string {
	sections := make([]string, 0, len(days))
	for _, day := range days {
		lines := []string{day.Date.Format(f.msg.dateLayout) + ":"}
		for _, slot := range slotOrder {
			reading, ok := day.Readings[slot]
			if !ok {
				continue
			}
			lines = append(lines, f.describe(
				fmt.Sprintf(f.msg.forecastLine, f.msg.slots[slot], f.Temperature(reading.Temperature, units)),
				reading.Description))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}
	return fmt.Sprintf(f.msg.forecastHeader, city) + "\n" + strings.Join(sections, "\n\n")
}

// describe appends the translated description, or nothing when there is none
func (f *Formatter) describe(line, description string) string {
	description = strings.TrimSpace(description)
	if description == "" {
		return line
	}
	return line + ", " + f.translator.Translate(description)
}

// Scraped renders text extracted by the scrape fallback
func (f *Formatter) Scraped(temperature, description string) string {
	return fmt.Sprintf(f.msg.scraped, temperature, description)
}

// ScrapeMissing is the sentinel shown when the scraped page had no usable data
func (f *Formatter) ScrapeMissing() string {
	return f.msg.scrapeMissing
}

// Unavailable is the generic message used when every path failed
func (f *Formatter) Unavailable() string {
	return f.msg.unavailable
}

// SlotName returns the localized slot label
func (f *Formatter) SlotName(slot Slot) string {
	return f.msg.slots[slot]
}
