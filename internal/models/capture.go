package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BodyType classifies the payload format of a captured request
type BodyType string

const (
	BodyTypeJSON    BodyType = "json"
	BodyTypeXML     BodyType = "xml"
	BodyTypeForm    BodyType = "form"
	BodyTypeText    BodyType = "text"
	BodyTypeUnknown BodyType = "unknown"
)

// XMLMetadata holds lightweight metadata scanned from an XML payload. It is
// populated only when the raw body contains a complete <?xml ... ?>
// declaration.
type XMLMetadata struct {
	Declaration string `json:"declaration" firestore:"declaration"`
	RootElement string `json:"rootElement" firestore:"rootElement"`
	Length      int    `json:"length" firestore:"length"`
	HasDoctype  bool   `json:"hasDoctype" firestore:"hasDoctype"`
	Encoding    string `json:"encoding" firestore:"encoding"`
}

// CaptureRecord is the document persisted per inbound request.
//
// Optional fields carry omitempty so absent values are omitted from written
// documents rather than stored as nulls. RawBody stays a pointer: null in
// the stored document means the request carried no body bytes.
type CaptureRecord struct {
	Timestamp     string            `json:"timestamp" firestore:"timestamp"`
	Method        string            `json:"method" firestore:"method"`
	URL           string            `json:"url" firestore:"url"`
	Headers       map[string]string `json:"headers" firestore:"headers"`
	Query         map[string]string `json:"query" firestore:"query"`
	Body          interface{}       `json:"body" firestore:"body"`
	RawBody       *string           `json:"rawBody" firestore:"rawBody"`
	BodyType      BodyType          `json:"bodyType" firestore:"bodyType"`
	ContentType   string            `json:"contentType" firestore:"contentType"`
	ContentLength string            `json:"contentLength" firestore:"contentLength"`
	ClientIP      string            `json:"clientIp" firestore:"clientIp"`
	UserAgent     string            `json:"userAgent" firestore:"userAgent"`
	XMLMetadata   *XMLMetadata      `json:"xmlMetadata,omitempty" firestore:"xmlMetadata,omitempty"`

	// RequestID and CreatedAt are appended by the repository just before
	// the write, never at construction time.
	RequestID string     `json:"requestId,omitempty" firestore:"requestId,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty" firestore:"createdAt,omitempty"`
}

// NewRequestID generates a unique capture token: a millisecond timestamp
// prefix plus a random suffix.
func NewRequestID() string {
	suffix := strings.SplitN(uuid.New().String(), "-", 2)[0]
	return fmt.Sprintf("req_%d_%s", time.Now().UnixMilli(), suffix)
}

// InboundRequest is the transport-agnostic view of a request handed to the
// capture service. Body holds the payload bytes, read exactly once by the
// transport adapter.
type InboundRequest struct {
	Method        string
	URL           string
	Headers       map[string]string
	Query         map[string]string
	Body          []byte
	ContentType   string
	ContentLength string
	ClientIP      string
	UserAgent     string
}

// StoreResult reports the outcome of the persistence write. A failed write
// does not fail the request; the result is embedded in the response instead.
type StoreResult struct {
	Success    bool   `json:"success"`
	DocumentID string `json:"documentId,omitempty"`
	Error      string `json:"error,omitempty"`
	Message    string `json:"message"`
}

// DiagnosticReport is the introspection payload returned by the diagnostic
// endpoint. Nothing in it is persisted.
type DiagnosticReport struct {
	ReceivedAt    string            `json:"receivedAt"`
	Method        string            `json:"method"`
	URL           string            `json:"url"`
	BodyType      BodyType          `json:"bodyType"`
	BodyLength    int               `json:"bodyLength"`
	HasBody       bool              `json:"hasBody"`
	BodyParsed    bool              `json:"bodyParsed"`
	ContentType   string            `json:"contentType"`
	ContentLength string            `json:"contentLength"`
	HeaderCount   int               `json:"headerCount"`
	Headers       map[string]string `json:"headers"`
	Query         map[string]string `json:"query"`
	ClientIP      string            `json:"clientIp"`
	UserAgent     string            `json:"userAgent"`
	XMLMetadata   *XMLMetadata      `json:"xmlMetadata,omitempty"`
}
