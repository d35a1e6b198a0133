package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeatherRequest_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		request WeatherRequest
		wantErr bool
		errMsg  string
	}{
		{
			name:    "ValidRequest",
			request: WeatherRequest{City: "London", Days: 1, Units: UnitsMetric},
		},
		{
			name:    "EmptyUnitsAllowed",
			request: WeatherRequest{City: "London"},
		},
		{
			name:    "EmptyCity",
			request: WeatherRequest{City: ""},
			wantErr: true,
			errMsg:  "city cannot be empty",
		},
		{
			name:    "WhitespaceOnlyCity",
			request: WeatherRequest{City: "   "},
			wantErr: true,
			errMsg:  "city cannot be empty",
		},
		{
			name:    "UnsupportedUnits",
			request: WeatherRequest{City: "London", Units: "kelvin"},
			wantErr: true,
			errMsg:  "unsupported units",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.IsValid()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWeatherRequest_Normalize(t *testing.T) {
	request := WeatherRequest{City: "  Paris ", Days: 0}
	request.Normalize(UnitsImperial)

	assert.Equal(t, "Paris", request.City)
	assert.Equal(t, 1, request.Days)
	assert.Equal(t, UnitsImperial, request.Units)

	request = WeatherRequest{City: "Paris", Days: -3, Units: UnitsMetric}
	request.Normalize(UnitsImperial)
	assert.Equal(t, 1, request.Days)
	assert.Equal(t, UnitsMetric, request.Units)
}

func TestWeatherRequest_CacheKey(t *testing.T) {
	request := WeatherRequest{City: "London", Days: 3, Units: UnitsMetric}
	assert.Equal(t, "weather:London-3-metric", request.CacheKey())

	imperial := WeatherRequest{City: "London", Days: 3, Units: UnitsImperial}
	assert.NotEqual(t, request.CacheKey(), imperial.CacheKey())

	lower := WeatherRequest{City: "london", Days: 3, Units: UnitsMetric}
	assert.NotEqual(t, request.CacheKey(), lower.CacheKey())
}

func TestParseUnits(t *testing.T) {
	units, err := ParseUnits("", UnitsMetric)
	require.NoError(t, err)
	assert.Equal(t, UnitsMetric, units)

	units, err = ParseUnits(" Imperial ", UnitsMetric)
	require.NoError(t, err)
	assert.Equal(t, UnitsImperial, units)

	_, err = ParseUnits("standard", UnitsMetric)
	assert.Error(t, err)
}

func TestUnits_Symbol(t *testing.T) {
	assert.Equal(t, "°C", UnitsMetric.Symbol())
	assert.Equal(t, "°F", UnitsImperial.Symbol())
}

func TestSlotForHour(t *testing.T) {
	tests := []struct {
		hour int
		want Slot
	}{
		{0, SlotNight},
		{5, SlotNight},
		{6, SlotMorning},
		{11, SlotMorning},
		{12, SlotNoon},
		{17, SlotNoon},
		{18, SlotEvening},
		{23, SlotEvening},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SlotForHour(tt.hour), "hour %d", tt.hour)
	}
}

func TestOutcomeKind_String(t *testing.T) {
	assert.Equal(t, "data", OutcomeData.String())
	assert.Equal(t, "no_data", OutcomeNoData.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
	assert.True(t, Outcome{Kind: OutcomeData}.HasData())
	assert.False(t, Outcome{Kind: OutcomeNoData, Text: "sentinel"}.HasData())
}
