package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"request-capture-api/internal/services"
	"request-capture-api/pkg/lambda"
)

const diagnosticAllowMethods = "GET, POST, OPTIONS"

// DiagnosticHandler returns the normalized view of a request without
// persisting it, for debugging client integrations.
type DiagnosticHandler struct {
	captureService services.CaptureService
}

// NewDiagnosticHandler creates a diagnostic handler.
func NewDiagnosticHandler(captureService services.CaptureService) *DiagnosticHandler {
	return &DiagnosticHandler{captureService: captureService}
}

// Diagnose is the gin entrypoint. Any method is permitted; OPTIONS gets the
// same empty preflight response as the capture endpoints.
func (h *DiagnosticHandler) Diagnose(c *gin.Context) {
	if c.Request.Method == http.MethodOptions {
		c.Status(http.StatusOK)
		return
	}

	in := inboundFromGin(c)
	report := h.captureService.Inspect(in)

	c.JSON(http.StatusOK, DiagnosticEnvelope{
		Success: true,
		Message: "Request inspected",
		Data:    report,
	})
}

// HandleDiagnose is the serverless entrypoint.
func (h *DiagnosticHandler) HandleDiagnose(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	if req.Method == http.MethodOptions {
		return respondLambda(http.StatusOK, diagnosticAllowMethods, nil)
	}

	in := inboundFromLambda(req)
	report := h.captureService.Inspect(in)

	return respondLambda(http.StatusOK, diagnosticAllowMethods, DiagnosticEnvelope{
		Success: true,
		Message: "Request inspected",
		Data:    report,
	})
}
