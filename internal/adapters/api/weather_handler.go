package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherbot.app/internal/core/weather"
	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/errors"
	"weatherbot.app/pkg/validation"
)

// weatherQuery is the bound query string of GET /api/weather
type weatherQuery struct {
	City  string `form:"city" binding:"required"`
	Days  string `form:"days"`
	Units string `form:"units" binding:"omitempty,units"`
}

// WeatherResponse represents the HTTP response for weather data
type WeatherResponse struct {
	City   string `json:"city"`
	Days   int    `json:"days"`
	Units  string `json:"units"`
	Text   string `json:"text"`
	Source string `json:"source"`
	Cached bool   `json:"cached"`
}

// getWeather handles GET /api/weather requests
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	var query weatherQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errors.NewValidationError(validationMessage(err)))
		return
	}

	city, ok := validation.TrimAndValidate(query.City)
	if !ok {
		s.handleError(c, errors.NewValidationError("city parameter is required"))
		return
	}

	units, err := weather.ParseUnits(query.Units, "")
	if err != nil {
		s.handleError(c, errors.NewValidationError(err.Error()))
		return
	}

	request := weather.WeatherRequest{
		City:  city,
		Days:  validation.ParseDays(query.Days),
		Units: units,
	}

	report, err := s.weatherUseCase.GetWeather(c.Request.Context(), request)
	if err != nil {
		s.logger.Warn("Weather use case error",
			ports.F("city", city),
			ports.F("error", err.Error()))
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, WeatherResponse{
		City:   report.City,
		Days:   report.Days,
		Units:  string(report.Units),
		Text:   report.Text,
		Source: string(report.Source),
		Cached: report.Cached,
	})
}
