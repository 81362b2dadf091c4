package handlers

import (
	"github.com/gin-gonic/gin"

	"request-capture-api/internal/middleware"
	"request-capture-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	CaptureService services.CaptureService
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	// One parameterized handler per variant instead of copy-pasted
	// branches: /capture extracts XML metadata, /capture/basic does not.
	captureHandler := NewCaptureHandler(config.CaptureService, services.CaptureOptions{
		ExtractXMLMetadata: true,
	})
	basicCaptureHandler := NewCaptureHandler(config.CaptureService, services.CaptureOptions{})
	diagnosticHandler := NewDiagnosticHandler(config.CaptureService)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "request-capture-api",
			"version": "1.0.0",
		})
	})

	// Method gating lives in the handlers, so every method is routed.
	router.Any("/capture", middleware.CORS(captureAllowMethods), captureHandler.Capture)
	router.Any("/capture/basic", middleware.CORS(captureAllowMethods), basicCaptureHandler.Capture)
	router.Any("/diagnostic", middleware.CORS(diagnosticAllowMethods), diagnosticHandler.Diagnose)
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
}
