package normalizer

import (
	"regexp"
	"strings"

	"request-capture-api/internal/models"
)

// rootElementPattern matches the first tag name: a letter followed by
// letters or digits. This is a text heuristic, not structural XML parsing;
// the tag it finds is not necessarily the document root.
var rootElementPattern = regexp.MustCompile(`<([A-Za-z][A-Za-z0-9]*)`)

// ExtractXMLMetadata scans a raw body already classified as XML. It returns
// nil unless the body contains a `<?xml` declaration with a closing `?>` at
// or after it; a missing pair means no metadata, not an error.
func ExtractXMLMetadata(rawBody string) *models.XMLMetadata {
	start := strings.Index(rawBody, "<?xml")
	if start < 0 {
		return nil
	}
	rel := strings.Index(rawBody[start:], "?>")
	if rel < 0 {
		return nil
	}
	declaration := rawBody[start : start+rel+len("?>")]

	meta := &models.XMLMetadata{
		Declaration: declaration,
		Length:      len(rawBody),
		HasDoctype:  strings.Contains(rawBody, "<!DOCTYPE"),
		Encoding:    "unknown",
	}

	if strings.Contains(declaration, `encoding="UTF-8"`) {
		meta.Encoding = "UTF-8"
	}

	// The declaration's "<?xml" cannot match: '?' is not a letter.
	if m := rootElementPattern.FindStringSubmatch(rawBody); m != nil {
		meta.RootElement = m[1]
	}

	return meta
}
