// Package normalizer classifies and parses inbound request payloads.
//
// Classification is deliberately heuristic: it works from the Content-Type
// header and a <?xml prefix sniff, in a fixed priority order where the first
// match wins. Parsing is best-effort and never returns an error to the
// caller; a payload that fails to parse is kept as its raw string.
package normalizer

import (
	"encoding/json"
	"net/url"
	"strings"

	"request-capture-api/internal/models"
)

// Result is the normalized view of a request payload.
type Result struct {
	// RawBody is the original payload string, nil iff the request carried
	// no body bytes.
	RawBody *string

	// BodyType is the format classification.
	BodyType models.BodyType

	// Body is the best-effort parsed payload: a decoded structure for JSON,
	// a flat key/value map for form data, the raw string for everything
	// else, or nil when there is no body.
	Body interface{}
}

// Normalize classifies and parses a payload. The transport adapter reads the
// body bytes exactly once and passes them here; the normalizer never touches
// a stream.
func Normalize(contentType string, raw []byte) Result {
	res := Result{BodyType: Classify(contentType, raw)}

	if len(raw) == 0 {
		return res
	}

	rawBody := string(raw)
	res.RawBody = &rawBody
	res.Body = parse(res.BodyType, rawBody)
	return res
}

// Classify determines the payload format from the Content-Type header and
// the payload itself. Checks run in a fixed priority order; the first match
// wins.
func Classify(contentType string, raw []byte) models.BodyType {
	ct := strings.ToLower(contentType)
	trimmed := strings.TrimSpace(string(raw))

	switch {
	case strings.Contains(ct, "application/json"):
		return models.BodyTypeJSON
	case strings.Contains(ct, "xml"),
		strings.Contains(ct, "text/plain") && strings.HasPrefix(trimmed, "<?xml"),
		strings.HasPrefix(trimmed, "<?xml"):
		return models.BodyTypeXML
	case strings.Contains(ct, "application/x-www-form-urlencoded"),
		strings.Contains(ct, "multipart/form-data"):
		return models.BodyTypeForm
	case strings.Contains(ct, "text/plain"):
		return models.BodyTypeText
	default:
		return models.BodyTypeUnknown
	}
}

func parse(bodyType models.BodyType, rawBody string) interface{} {
	switch bodyType {
	case models.BodyTypeJSON:
		var parsed interface{}
		if err := json.Unmarshal([]byte(rawBody), &parsed); err != nil {
			return rawBody
		}
		return parsed
	case models.BodyTypeForm:
		values, err := url.ParseQuery(rawBody)
		if err != nil {
			return rawBody
		}
		return flatten(values)
	default:
		return rawBody
	}
}

// flatten keeps the first value per key, matching the flat mapping the
// capture record stores.
func flatten(values url.Values) map[string]string {
	flat := make(map[string]string, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			flat[key] = vals[0]
		} else {
			flat[key] = ""
		}
	}
	return flat
}
