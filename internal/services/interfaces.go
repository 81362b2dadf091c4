package services

import (
	"context"

	"request-capture-api/internal/models"
)

// CaptureOptions selects per-endpoint capture capabilities. The endpoint
// variants share one service parameterized by these flags instead of
// duplicating the normalization logic.
type CaptureOptions struct {
	// ExtractXMLMetadata enables the XML metadata scan for bodies
	// classified as XML.
	ExtractXMLMetadata bool
}

// CaptureService normalizes inbound requests and persists capture records.
type CaptureService interface {
	// Capture normalizes the request, assembles a capture record, and
	// attempts the persistence write. A failed write does not return an
	// error; the failure is reported in the StoreResult so the caller can
	// still acknowledge the request.
	Capture(ctx context.Context, in *models.InboundRequest, opts CaptureOptions) (*models.CaptureRecord, *models.StoreResult)

	// Inspect returns the normalized diagnostic view of a request without
	// persisting anything.
	Inspect(in *models.InboundRequest) *models.DiagnosticReport
}
