package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatter_Temperature(t *testing.T) {
	f := NewFormatter(LocaleEnglish)

	assert.Equal(t, "20°C", f.Temperature(20, UnitsMetric))
	assert.Equal(t, "15.5°F", f.Temperature(15.5, UnitsImperial))
	assert.Equal(t, "-3.25°C", f.Temperature(-3.25, UnitsMetric))
}

func TestFormatter_Current(t *testing.T) {
	assert.Equal(t, "Temperature in London: 20°C, Clear sky",
		NewFormatter(LocaleEnglish).Current("London", 20, "clear sky", UnitsMetric))
	assert.Equal(t, "Температура в Москва: -5°C, Снег",
		NewFormatter(LocaleRussian).Current("Москва", -5, "snow", UnitsMetric))
}

func TestFormatter_CurrentWithoutDescription(t *testing.T) {
	assert.Equal(t, "Temperature in London: 20°C",
		NewFormatter(LocaleEnglish).Current("London", 20, "", UnitsMetric))
	assert.Equal(t, "Температура в Москва: -5°C",
		NewFormatter(LocaleRussian).Current("Москва", -5, "  ", UnitsMetric))
}

func TestFormatter_ForecastLineWithoutDescription(t *testing.T) {
	f := NewFormatter(LocaleEnglish)
	days := []ForecastDay{{
		Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Readings: map[Slot]Reading{
			SlotMorning: {Temperature: 12},
			SlotNoon:    {Temperature: 18, Description: "few clouds"},
		},
	}}

	assert.Equal(t, "Weather forecast for Paris:\n2024-05-01:\nMorning: 12°C\nNoon: 18°C, Few clouds",
		f.Forecast("Paris", days, UnitsMetric))
}

func TestFormatter_Forecast(t *testing.T) {
	f := NewFormatter(LocaleEnglish)
	days := []ForecastDay{
		{
			Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			Readings: map[Slot]Reading{
				SlotNoon:    {Temperature: 18, Description: "few clouds"},
				SlotMorning: {Temperature: 12.5, Description: "clear sky"},
			},
		},
		{
			Date: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
			Readings: map[Slot]Reading{
				SlotNight: {Temperature: 8, Description: "mist"},
			},
		},
	}

	want := "Weather forecast for Paris:\n" +
		"2024-05-01:\n" +
		"Morning: 12.5°C, Clear sky\n" +
		"Noon: 18°C, Few clouds\n" +
		"\n" +
		"2024-05-02:\n" +
		"Night: 8°C, Mist"
	assert.Equal(t, want, f.Forecast("Paris", days, UnitsMetric))
}

func TestFormatter_ForecastRussianDateLayout(t *testing.T) {
	f := NewFormatter(LocaleRussian)
	days := []ForecastDay{{
		Date:     time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Readings: map[Slot]Reading{SlotEvening: {Temperature: 10, Description: "light rain"}},
	}}

	assert.Equal(t, "Прогноз погоды для Paris:\n01.05.2024:\nВечер: 10°C, Легкий дождь",
		f.Forecast("Paris", days, UnitsMetric))
}

func TestFormatter_FixedMessages(t *testing.T) {
	f := NewFormatter(LocaleEnglish)
	assert.Equal(t, "Temperature: 21°, Description: Sunny", f.Scraped("21°", "Sunny"))
	assert.Equal(t, "Could not retrieve weather data from the website.", f.ScrapeMissing())
	assert.Equal(t, "Couldn't retrieve weather data. Please try again later.", f.Unavailable())
	assert.Equal(t, "Evening", f.SlotName(SlotEvening))

	unknown := NewFormatter(Locale("fr"))
	assert.Equal(t, f.Unavailable(), unknown.Unavailable())
}
