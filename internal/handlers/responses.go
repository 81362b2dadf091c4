package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"request-capture-api/internal/models"
	"request-capture-api/pkg/lambda"
)

// CaptureEnvelope is the response body for capture endpoints. The outer
// success reflects whether the request was received and normalized; the
// nested firestore result reports the storage outcome separately.
type CaptureEnvelope struct {
	Success   bool                  `json:"success"`
	Message   string                `json:"message"`
	Data      *models.CaptureRecord `json:"data"`
	Firestore *models.StoreResult   `json:"firestore"`
}

// DiagnosticEnvelope is the response body for the diagnostic endpoint.
type DiagnosticEnvelope struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message"`
	Data    *models.DiagnosticReport `json:"data"`
}

// MethodNotAllowedResponse names the allowed method and the method received.
type MethodNotAllowedResponse struct {
	Success  bool   `json:"success"`
	Error    string `json:"error"`
	Message  string `json:"message"`
	Allowed  string `json:"allowed"`
	Received string `json:"received"`
}

func methodNotAllowed(allowed, received string) MethodNotAllowedResponse {
	return MethodNotAllowedResponse{
		Success:  false,
		Error:    "Method not allowed",
		Message:  fmt.Sprintf("This endpoint accepts %s requests, received %s", allowed, received),
		Allowed:  allowed,
		Received: received,
	}
}

// respondLambda marshals a payload into a serverless response with the CORS
// headers every endpoint carries. A nil payload produces an empty body.
func respondLambda(status int, allowMethods string, payload interface{}) (*lambda.Response, error) {
	headers := map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": allowMethods,
		"Access-Control-Allow-Headers": "Content-Type",
	}

	if payload == nil {
		return &lambda.Response{StatusCode: status, Headers: headers}, nil
	}

	headers["Content-Type"] = "application/json"
	body, err := json.Marshal(payload)
	if err != nil {
		return &lambda.Response{
			StatusCode: http.StatusInternalServerError,
			Headers:    headers,
			Body:       []byte(`{"success":false,"error":"Internal server error","message":"Failed to encode response"}`),
		}, nil
	}

	return &lambda.Response{StatusCode: status, Headers: headers, Body: body}, nil
}
