package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherbot.app/internal/ports"
)

// HealthResponse is the body of GET /api/health
type HealthResponse struct {
	Status     string                       `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// MetricsResponse is the body of GET /api/metrics
type MetricsResponse struct {
	Provider string       `json:"provider"`
	Cache    CacheMetrics `json:"cache"`
}

type CacheMetrics struct {
	Hits        int64     `json:"hits"`
	Misses      int64     `json:"misses"`
	TotalOps    int64     `json:"totalOps"`
	HitRatio    float64   `json:"hitRatio"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// getHealth handles GET /api/health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	components := s.healthChecker.CheckAll(c.Request.Context())

	response := HealthResponse{Status: "healthy", Components: components}
	statusCode := http.StatusOK
	for _, component := range components {
		if component.Status == "unhealthy" {
			response.Status = "unhealthy"
			statusCode = http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(statusCode, response)
}

// getMetrics handles GET /api/metrics requests
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	stats := s.cacheStats.GetStats()

	c.JSON(http.StatusOK, MetricsResponse{
		Provider: s.providerName,
		Cache: CacheMetrics{
			Hits:        stats.Hits,
			Misses:      stats.Misses,
			TotalOps:    stats.TotalOps,
			HitRatio:    stats.HitRatio,
			LastUpdated: stats.LastUpdated,
		},
	})
}
