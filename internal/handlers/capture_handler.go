package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"request-capture-api/internal/services"
	"request-capture-api/pkg/lambda"
)

const captureAllowMethods = "POST, OPTIONS"

// CaptureHandler handles capture endpoint requests. Endpoint variants share
// this one handler, parameterized by CaptureOptions.
type CaptureHandler struct {
	captureService services.CaptureService
	opts           services.CaptureOptions
}

// NewCaptureHandler creates a capture handler with the given capabilities.
func NewCaptureHandler(captureService services.CaptureService, opts services.CaptureOptions) *CaptureHandler {
	return &CaptureHandler{
		captureService: captureService,
		opts:           opts,
	}
}

// Capture is the gin entrypoint. Method gating runs before anything else:
// OPTIONS gets an empty 200 preflight response without touching persistence,
// anything other than POST gets a 405 naming both methods.
func (h *CaptureHandler) Capture(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodOptions:
		c.Status(http.StatusOK)
	case http.MethodPost:
		in := inboundFromGin(c)
		record, outcome := h.captureService.Capture(c.Request.Context(), in, h.opts)

		// The outer envelope reports success even when storage failed:
		// callers primarily care that the request was received and echoed.
		// The nested firestore result carries the storage outcome.
		c.JSON(http.StatusOK, CaptureEnvelope{
			Success:   true,
			Message:   "Request captured",
			Data:      record,
			Firestore: outcome,
		})
	default:
		c.JSON(http.StatusMethodNotAllowed, methodNotAllowed(http.MethodPost, c.Request.Method))
	}
}

// HandleCapture is the serverless entrypoint with the same gating and
// envelope as Capture.
func (h *CaptureHandler) HandleCapture(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	switch req.Method {
	case http.MethodOptions:
		return respondLambda(http.StatusOK, captureAllowMethods, nil)
	case http.MethodPost:
		in := inboundFromLambda(req)
		record, outcome := h.captureService.Capture(ctx, in, h.opts)

		return respondLambda(http.StatusOK, captureAllowMethods, CaptureEnvelope{
			Success:   true,
			Message:   "Request captured",
			Data:      record,
			Firestore: outcome,
		})
	default:
		return respondLambda(http.StatusMethodNotAllowed, captureAllowMethods, methodNotAllowed(http.MethodPost, req.Method))
	}
}
