package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"request-capture-api/internal/models"
	"request-capture-api/internal/repositories"
)

// failingRepo simulates a storage outage.
type failingRepo struct{}

func (f *failingRepo) Insert(ctx context.Context, record *models.CaptureRecord) (string, error) {
	return "", errors.New("firestore unavailable")
}

func jsonRequest(body string) *models.InboundRequest {
	return &models.InboundRequest{
		Method:        "POST",
		URL:           "/capture",
		Headers:       map[string]string{"content-type": "application/json"},
		Query:         map[string]string{},
		Body:          []byte(body),
		ContentType:   "application/json",
		ContentLength: "7",
		ClientIP:      "203.0.113.9",
		UserAgent:     "test-agent",
	}
}

func TestCaptureService_Capture(t *testing.T) {
	repo := repositories.NewMemoryCaptureRepository()
	service := NewCaptureService(repo)

	record, outcome := service.Capture(context.Background(), jsonRequest(`{"a":1}`), CaptureOptions{})

	if !outcome.Success {
		t.Fatalf("outcome.Success = false: %s", outcome.Error)
	}
	if outcome.DocumentID == "" {
		t.Error("outcome.DocumentID is empty")
	}
	if repo.Count() != 1 {
		t.Errorf("repo.Count() = %d, want 1", repo.Count())
	}

	if record.BodyType != models.BodyTypeJSON {
		t.Errorf("BodyType = %q, want json", record.BodyType)
	}
	if record.Method != "POST" || record.URL != "/capture" {
		t.Errorf("request line not echoed: %s %s", record.Method, record.URL)
	}
	if record.ClientIP != "203.0.113.9" || record.UserAgent != "test-agent" {
		t.Errorf("client info not echoed: %s %s", record.ClientIP, record.UserAgent)
	}
	if record.Timestamp == "" {
		t.Error("Timestamp is empty")
	}
}

func TestCaptureService_RequestIDAssignedAtWriteTime(t *testing.T) {
	repo := repositories.NewMemoryCaptureRepository()
	service := NewCaptureService(repo)

	record, _ := service.Capture(context.Background(), jsonRequest(`{"a":1}`), CaptureOptions{})

	if !strings.HasPrefix(record.RequestID, "req_") {
		t.Errorf("RequestID = %q, want req_ prefix", record.RequestID)
	}
	if record.CreatedAt == nil {
		t.Error("CreatedAt not stamped at write time")
	}

	other, _ := service.Capture(context.Background(), jsonRequest(`{"a":1}`), CaptureOptions{})
	if other.RequestID == record.RequestID {
		t.Error("RequestID reused across captures")
	}
}

func TestCaptureService_PersistenceFailureDoesNotFailCapture(t *testing.T) {
	service := NewCaptureService(&failingRepo{})

	record, outcome := service.Capture(context.Background(), jsonRequest(`{"a":1}`), CaptureOptions{})

	if record == nil {
		t.Fatal("record is nil; the capture itself should still succeed")
	}
	if outcome.Success {
		t.Error("outcome.Success = true, want false")
	}
	if outcome.Error == "" {
		t.Error("outcome.Error is empty")
	}
	if outcome.DocumentID != "" {
		t.Errorf("outcome.DocumentID = %q, want empty", outcome.DocumentID)
	}
}

func TestCaptureService_XMLMetadataHonorsOptions(t *testing.T) {
	repo := repositories.NewMemoryCaptureRepository()
	service := NewCaptureService(repo)

	xmlBody := `<?xml version="1.0" encoding="UTF-8"?><root/>`
	in := &models.InboundRequest{
		Method:      "POST",
		URL:         "/capture",
		Headers:     map[string]string{"content-type": "text/plain"},
		Body:        []byte(xmlBody),
		ContentType: "text/plain",
	}

	record, _ := service.Capture(context.Background(), in, CaptureOptions{ExtractXMLMetadata: true})
	if record.BodyType != models.BodyTypeXML {
		t.Fatalf("BodyType = %q, want xml", record.BodyType)
	}
	if record.XMLMetadata == nil {
		t.Fatal("XMLMetadata is nil with extraction enabled")
	}
	if record.XMLMetadata.RootElement != "root" {
		t.Errorf("RootElement = %q, want root", record.XMLMetadata.RootElement)
	}
	if record.XMLMetadata.Encoding != "UTF-8" {
		t.Errorf("Encoding = %q, want UTF-8", record.XMLMetadata.Encoding)
	}

	basic, _ := service.Capture(context.Background(), in, CaptureOptions{})
	if basic.XMLMetadata != nil {
		t.Error("XMLMetadata present with extraction disabled")
	}
}

func TestCaptureService_XMLWithoutDeclarationOmitsMetadata(t *testing.T) {
	repo := repositories.NewMemoryCaptureRepository()
	service := NewCaptureService(repo)

	in := &models.InboundRequest{
		Method:      "POST",
		URL:         "/capture",
		Body:        []byte("<root/>"),
		ContentType: "application/xml",
	}

	record, _ := service.Capture(context.Background(), in, CaptureOptions{ExtractXMLMetadata: true})
	if record.BodyType != models.BodyTypeXML {
		t.Fatalf("BodyType = %q, want xml", record.BodyType)
	}
	if record.XMLMetadata != nil {
		t.Error("XMLMetadata present without a complete declaration")
	}
}

func TestCaptureService_InspectNeverPersists(t *testing.T) {
	repo := repositories.NewMemoryCaptureRepository()
	service := NewCaptureService(repo)

	report := service.Inspect(jsonRequest(`{"a":1}`))

	if repo.Count() != 0 {
		t.Errorf("repo.Count() = %d, diagnostic must not persist", repo.Count())
	}
	if report.BodyType != models.BodyTypeJSON {
		t.Errorf("BodyType = %q, want json", report.BodyType)
	}
	if !report.HasBody {
		t.Error("HasBody = false, want true")
	}
	if !report.BodyParsed {
		t.Error("BodyParsed = false, want true for valid JSON")
	}
	if report.BodyLength != len(`{"a":1}`) {
		t.Errorf("BodyLength = %d", report.BodyLength)
	}
	if report.HeaderCount != 1 {
		t.Errorf("HeaderCount = %d, want 1", report.HeaderCount)
	}
}

func TestCaptureService_InspectEmptyBody(t *testing.T) {
	service := NewCaptureService(repositories.NewMemoryCaptureRepository())

	report := service.Inspect(&models.InboundRequest{Method: "GET", URL: "/diagnostic"})

	if report.HasBody {
		t.Error("HasBody = true, want false")
	}
	if report.BodyLength != 0 {
		t.Errorf("BodyLength = %d, want 0", report.BodyLength)
	}
	if report.BodyParsed {
		t.Error("BodyParsed = true, want false")
	}
}
