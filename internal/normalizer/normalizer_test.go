package normalizer

import (
	"reflect"
	"testing"

	"request-capture-api/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        models.BodyType
	}{
		{
			name:        "json content type",
			contentType: "application/json",
			body:        `{"a":1}`,
			want:        models.BodyTypeJSON,
		},
		{
			name:        "json with charset",
			contentType: "application/json; charset=utf-8",
			body:        `{"a":1}`,
			want:        models.BodyTypeJSON,
		},
		{
			name:        "xml content type",
			contentType: "application/xml",
			body:        "<root/>",
			want:        models.BodyTypeXML,
		},
		{
			name:        "text xml content type",
			contentType: "text/xml",
			body:        "<root/>",
			want:        models.BodyTypeXML,
		},
		{
			name:        "text plain with xml declaration",
			contentType: "text/plain",
			body:        `<?xml version="1.0"?><root/>`,
			want:        models.BodyTypeXML,
		},
		{
			name:        "no content type with xml declaration",
			contentType: "",
			body:        `<?xml version="1.0"?><root/>`,
			want:        models.BodyTypeXML,
		},
		{
			name:        "leading whitespace before xml declaration",
			contentType: "",
			body:        `   <?xml version="1.0"?><root/>`,
			want:        models.BodyTypeXML,
		},
		{
			name:        "urlencoded form",
			contentType: "application/x-www-form-urlencoded",
			body:        "a=1&b=2",
			want:        models.BodyTypeForm,
		},
		{
			name:        "multipart form",
			contentType: "multipart/form-data; boundary=xyz",
			body:        "...",
			want:        models.BodyTypeForm,
		},
		{
			name:        "text plain",
			contentType: "text/plain",
			body:        "hello",
			want:        models.BodyTypeText,
		},
		{
			name:        "json-shaped body with text plain stays text",
			contentType: "text/plain",
			body:        `{"a":1}`,
			want:        models.BodyTypeText,
		},
		{
			name:        "no content type",
			contentType: "",
			body:        "whatever",
			want:        models.BodyTypeUnknown,
		},
		{
			name:        "binary content type",
			contentType: "application/octet-stream",
			body:        "\x00\x01",
			want:        models.BodyTypeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.contentType, []byte(tt.body))
			if got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalize_JSON(t *testing.T) {
	res := Normalize("application/json", []byte(`{"a":1}`))

	if res.BodyType != models.BodyTypeJSON {
		t.Fatalf("BodyType = %q, want json", res.BodyType)
	}
	if res.RawBody == nil || *res.RawBody != `{"a":1}` {
		t.Errorf("RawBody = %v, want original string", res.RawBody)
	}

	parsed, ok := res.Body.(map[string]interface{})
	if !ok {
		t.Fatalf("Body = %T, want map", res.Body)
	}
	if parsed["a"] != float64(1) {
		t.Errorf("Body[a] = %v, want 1", parsed["a"])
	}
}

func TestNormalize_InvalidJSONFallsBackToRawString(t *testing.T) {
	raw := `{"a":` // truncated
	res := Normalize("application/json", []byte(raw))

	if res.BodyType != models.BodyTypeJSON {
		t.Fatalf("BodyType = %q, want json", res.BodyType)
	}
	if res.Body != raw {
		t.Errorf("Body = %v, want the raw string unchanged", res.Body)
	}
}

func TestNormalize_Form(t *testing.T) {
	res := Normalize("application/x-www-form-urlencoded", []byte("a=1&b=2"))

	want := map[string]string{"a": "1", "b": "2"}
	if !reflect.DeepEqual(res.Body, want) {
		t.Errorf("Body = %v, want %v", res.Body, want)
	}
}

func TestNormalize_InvalidFormFallsBackToRawString(t *testing.T) {
	raw := "a=%zz&b=2"
	res := Normalize("application/x-www-form-urlencoded", []byte(raw))

	if res.Body != raw {
		t.Errorf("Body = %v, want the raw string unchanged", res.Body)
	}
}

func TestNormalize_FormRepeatedKeyKeepsFirstValue(t *testing.T) {
	res := Normalize("application/x-www-form-urlencoded", []byte("a=1&a=2"))

	body, ok := res.Body.(map[string]string)
	if !ok {
		t.Fatalf("Body = %T, want map", res.Body)
	}
	if body["a"] != "1" {
		t.Errorf("Body[a] = %q, want first value", body["a"])
	}
}

func TestNormalize_TextKeptAsString(t *testing.T) {
	res := Normalize("text/plain", []byte("hello"))

	if res.BodyType != models.BodyTypeText {
		t.Fatalf("BodyType = %q, want text", res.BodyType)
	}
	if res.Body != "hello" {
		t.Errorf("Body = %v, want raw string", res.Body)
	}
}

func TestNormalize_EmptyBody(t *testing.T) {
	res := Normalize("application/json", nil)

	if res.RawBody != nil {
		t.Errorf("RawBody = %v, want nil for empty body", res.RawBody)
	}
	if res.Body != nil {
		t.Errorf("Body = %v, want nil for empty body", res.Body)
	}
	if res.BodyType != models.BodyTypeJSON {
		t.Errorf("BodyType = %q, classification still follows content type", res.BodyType)
	}
}
