// Package mockowm serves a deterministic subset of the OpenWeatherMap 2.5 API
// for integration tests and local runs.
package mockowm

import (
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

// APIKey is the only key the fake accepts
const APIKey = "test-api-key"

// ForecastStart is the timestamp of the first forecast sample (UTC)
var ForecastStart = time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

type condition struct {
	Description string `json:"description"`
}

type mainBlock struct {
	Temp float64 `json:"temp"`
}

type currentResponse struct {
	Name    string      `json:"name"`
	Dt      int64       `json:"dt"`
	Main    mainBlock   `json:"main"`
	Weather []condition `json:"weather"`
}

type forecastItem struct {
	Dt      int64       `json:"dt"`
	Main    mainBlock   `json:"main"`
	Weather []condition `json:"weather"`
}

type forecastResponse struct {
	List []forecastItem `json:"list"`
}

type cityWeather struct {
	name        string
	tempC       float64
	description string
}

var cities = map[string]cityWeather{
	"london": {name: "London", tempC: 15, description: "scattered clouds"},
	"paris":  {name: "Paris", tempC: 18, description: "clear sky"},
	"berlin": {name: "Berlin", tempC: 12, description: "overcast clouds"},
}

// Server counts the upstream calls it answered
type Server struct {
	calls atomic.Int64
}

// Calls returns the number of /weather and /forecast requests served
func (s *Server) Calls() int64 {
	return s.calls.Load()
}

// NewRouter builds the fake API. Special cities: "servererror" answers 500.
func (s *Server) NewRouter() *gin.Engine {
	r := gin.New()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/weather", func(c *gin.Context) {
		city, units, ok := s.lookup(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, currentResponse{
			Name:    city.name,
			Dt:      ForecastStart.Unix(),
			Main:    mainBlock{Temp: convert(city.tempC, units)},
			Weather: []condition{{Description: city.description}},
		})
	})

	r.GET("/forecast", func(c *gin.Context) {
		city, units, ok := s.lookup(c)
		if !ok {
			return
		}
		// 5 days of 3-hourly samples, one degree warmer per step
		list := make([]forecastItem, 0, 40)
		for i := 0; i < 40; i++ {
			list = append(list, forecastItem{
				Dt:      ForecastStart.Add(time.Duration(i) * 3 * time.Hour).Unix(),
				Main:    mainBlock{Temp: convert(city.tempC+float64(i%8), units)},
				Weather: []condition{{Description: city.description}},
			})
		}
		c.JSON(http.StatusOK, forecastResponse{List: list})
	})

	return r
}

func (s *Server) lookup(c *gin.Context) (cityWeather, string, bool) {
	s.calls.Add(1)

	if c.Query("appid") != APIKey {
		c.JSON(http.StatusUnauthorized, gin.H{"cod": 401, "message": "Invalid API key"})
		return cityWeather{}, "", false
	}

	name := strings.ToLower(strings.TrimSpace(c.Query("q")))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"cod": "400", "message": "Nothing to geocode"})
		return cityWeather{}, "", false
	}
	if name == "servererror" {
		c.JSON(http.StatusInternalServerError, gin.H{"cod": "500", "message": "Internal server error"})
		return cityWeather{}, "", false
	}

	city, exists := cities[name]
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"cod": "404", "message": "city not found"})
		return cityWeather{}, "", false
	}
	return city, c.Query("units"), true
}

func convert(celsius float64, units string) float64 {
	if units == "imperial" {
		return celsius*9/5 + 32
	}
	return celsius
}
