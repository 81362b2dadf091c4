package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"request-capture-api/internal/models"
	"request-capture-api/internal/normalizer"
	"request-capture-api/internal/repositories"
)

// captureService implements CaptureService on top of a capture repository.
type captureService struct {
	repo repositories.CaptureRepository
}

// NewCaptureService creates a capture service backed by the given repository.
func NewCaptureService(repo repositories.CaptureRepository) CaptureService {
	return &captureService{repo: repo}
}

func (s *captureService) Capture(ctx context.Context, in *models.InboundRequest, opts CaptureOptions) (*models.CaptureRecord, *models.StoreResult) {
	record := s.assemble(in, opts)

	docID, err := s.repo.Insert(ctx, record)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"method": in.Method,
			"url":    in.URL,
			"error":  err.Error(),
		}).Error("Failed to persist capture record")

		return record, &models.StoreResult{
			Success: false,
			Error:   err.Error(),
			Message: "Request captured but could not be stored",
		}
	}

	logrus.WithFields(logrus.Fields{
		"document_id": docID,
		"request_id":  record.RequestID,
		"body_type":   record.BodyType,
	}).Info("Capture record stored")

	return record, &models.StoreResult{
		Success:    true,
		DocumentID: docID,
		Message:    "Request captured and stored",
	}
}

func (s *captureService) Inspect(in *models.InboundRequest) *models.DiagnosticReport {
	result := normalizer.Normalize(in.ContentType, in.Body)

	report := &models.DiagnosticReport{
		ReceivedAt:    time.Now().UTC().Format(time.RFC3339),
		Method:        in.Method,
		URL:           in.URL,
		BodyType:      result.BodyType,
		HasBody:       result.RawBody != nil,
		ContentType:   in.ContentType,
		ContentLength: in.ContentLength,
		HeaderCount:   len(in.Headers),
		Headers:       in.Headers,
		Query:         in.Query,
		ClientIP:      in.ClientIP,
		UserAgent:     in.UserAgent,
	}

	if result.RawBody != nil {
		report.BodyLength = len(*result.RawBody)
		// Parsed means the normalizer produced something other than the
		// raw string itself.
		_, isString := result.Body.(string)
		report.BodyParsed = !isString
		if result.BodyType == models.BodyTypeXML {
			report.XMLMetadata = normalizer.ExtractXMLMetadata(*result.RawBody)
		}
	}

	return report
}

// assemble builds an immutable capture record from the normalized request.
// The requestId and createdAt fields are left empty; the repository appends
// them just before the write.
func (s *captureService) assemble(in *models.InboundRequest, opts CaptureOptions) *models.CaptureRecord {
	result := normalizer.Normalize(in.ContentType, in.Body)

	record := &models.CaptureRecord{
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		Method:        in.Method,
		URL:           in.URL,
		Headers:       in.Headers,
		Query:         in.Query,
		Body:          result.Body,
		RawBody:       result.RawBody,
		BodyType:      result.BodyType,
		ContentType:   in.ContentType,
		ContentLength: in.ContentLength,
		ClientIP:      in.ClientIP,
		UserAgent:     in.UserAgent,
	}

	if opts.ExtractXMLMetadata && result.BodyType == models.BodyTypeXML && result.RawBody != nil {
		record.XMLMetadata = normalizer.ExtractXMLMetadata(*result.RawBody)
	}

	return record
}
