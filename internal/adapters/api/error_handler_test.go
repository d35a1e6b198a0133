package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherbot.app/pkg/errors"
)

func TestHTTPServerAdapter_HandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := &HTTPServerAdapter{}

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedMsg  string
	}{
		{"validation", errors.NewValidationError("validation failed"), http.StatusBadRequest, "validation failed"},
		{"not found", errors.NewNotFoundError("city not found"), http.StatusNotFound, "city not found"},
		{"external api", errors.NewExternalAPIError("upstream failed", nil), http.StatusServiceUnavailable, "External service unavailable"},
		{"scrape", errors.NewScrapeError("browser crashed", nil), http.StatusServiceUnavailable, "External service unavailable"},
		{"cache", errors.NewCacheError("redis down", nil), http.StatusInternalServerError, "Internal server error"},
		{"configuration", errors.NewConfigurationError("bad config", nil), http.StatusInternalServerError, "Internal server error"},
		{"unknown app error", errors.New(errors.ErrorTypeUnknown, "generic"), http.StatusInternalServerError, "Internal server error"},
		{"plain error", stderrors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			server.handleError(c, tt.err)

			assert.Equal(t, tt.expectedCode, w.Code)
			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedMsg, response.Error)
		})
	}
}
