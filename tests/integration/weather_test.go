package integration

import (
	"context"
	"net/http"
	"time"

	"weatherbot.app/internal/adapters/api"
)

const londonForecastDay = "Morning: 17°C, Scattered clouds\n" +
	"Noon: 19°C, Scattered clouds\n" +
	"Evening: 21°C, Scattered clouds\n" +
	"Night: 15°C, Scattered clouds"

func (s *IntegrationTestSuite) TestGetWeather_Success() {
	var response api.WeatherResponse
	code := s.get(s.router, "/api/weather?city=London", &response)

	s.Equal(http.StatusOK, code)
	s.Equal("Temperature in London: 15°C, Scattered clouds", response.Text)
	s.Equal("provider", response.Source)
	s.False(response.Cached)
}

func (s *IntegrationTestSuite) TestGetWeather_SecondRequestServedFromRedis() {
	before := s.owm.Calls()

	var first, second api.WeatherResponse
	s.Equal(http.StatusOK, s.get(s.router, "/api/weather?city=Paris", &first))
	s.Equal(http.StatusOK, s.get(s.router, "/api/weather?city=Paris", &second))

	s.True(second.Cached)
	s.Equal("cache", second.Source)
	s.Equal(first.Text, second.Text)
	s.Equal(before+1, s.owm.Calls())
	s.True(s.redis.Exists("weatherbot:weather:Paris-1-metric"))

	ttl := s.redis.TTL("weatherbot:weather:Paris-1-metric")
	s.InDelta(time.Hour.Seconds(), ttl.Seconds(), 5)
}

func (s *IntegrationTestSuite) TestGetWeather_ExpiredEntryIsRefetched() {
	s.Equal(http.StatusOK, s.get(s.router, "/api/weather?city=Berlin", nil))
	before := s.owm.Calls()

	s.redis.FastForward(time.Hour + time.Second)

	var response api.WeatherResponse
	s.Equal(http.StatusOK, s.get(s.router, "/api/weather?city=Berlin", &response))
	s.False(response.Cached)
	s.Equal(before+1, s.owm.Calls())
}

func (s *IntegrationTestSuite) TestGetWeather_Imperial() {
	var response api.WeatherResponse
	s.Equal(http.StatusOK, s.get(s.router, "/api/weather?city=London&units=imperial", &response))

	s.Equal("Temperature in London: 59°F, Scattered clouds", response.Text)
	s.True(s.redis.Exists("weatherbot:weather:London-1-imperial"))
}

func (s *IntegrationTestSuite) TestGetWeather_Forecast() {
	var response api.WeatherResponse
	s.Equal(http.StatusOK, s.get(s.router, "/api/weather?city=London&days=2", &response))

	expected := "Weather forecast for London:\n" +
		"2024-05-01:\n" + londonForecastDay + "\n\n" +
		"2024-05-02:\n" + londonForecastDay
	s.Equal(expected, response.Text)
	s.Equal(2, response.Days)
}

func (s *IntegrationTestSuite) TestGetWeather_UnknownCityIsNotCached() {
	var response api.WeatherResponse
	s.Equal(http.StatusOK, s.get(s.router, "/api/weather?city=Atlantis", &response))

	s.Equal("Couldn't retrieve weather data. Please try again later.", response.Text)
	s.Equal("none", response.Source)
	s.False(s.redis.Exists("weatherbot:weather:Atlantis-1-metric"))
}

func (s *IntegrationTestSuite) TestGetWeather_MissingCity() {
	var response api.ErrorResponse
	s.Equal(http.StatusBadRequest, s.get(s.router, "/api/weather", &response))
	s.Equal("city parameter is required", response.Error)
}

func (s *IntegrationTestSuite) TestGetWeather_RussianLocale() {
	cfg := *s.config
	cfg.Weather.Locale = "ru"
	cfg.Weather.LogFilePath = ""
	application := s.newApplication(&cfg)
	defer func() { _ = application.Shutdown(context.Background()) }()

	var response api.WeatherResponse
	s.Equal(http.StatusOK, s.get(application.GetRouter(), "/api/weather?city=Paris&days=1", &response))
	s.Equal("Температура в Paris: 18°C, Ясное небо", response.Text)
}

func (s *IntegrationTestSuite) TestHealth() {
	var response api.HealthResponse
	s.Equal(http.StatusOK, s.get(s.router, "/api/health", &response))

	s.Equal("healthy", response.Status)
	s.Equal("redis", response.Components["cache"].Details["type"])
	s.Equal("disabled", response.Components["scraper"].Status)
}
