package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"weatherbot.app/tests/mockowm"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	addr := os.Getenv("MOCK_OWM_ADDR")
	if addr == "" {
		addr = ":8081"
	}

	server := &mockowm.Server{}
	slog.Info("Mock OpenWeatherMap server starting", "addr", addr)
	if err := server.NewRouter().Run(addr); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
