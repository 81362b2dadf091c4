package handlers

import (
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"request-capture-api/internal/models"
	"request-capture-api/pkg/lambda"
)

// inboundFromGin builds the transport-agnostic request view from a gin
// context. The body is read here exactly once; nothing downstream touches
// the stream.
func inboundFromGin(c *gin.Context) *models.InboundRequest {
	var body []byte
	if c.Request.Body != nil {
		body, _ = io.ReadAll(c.Request.Body)
	}

	headers := make(map[string]string, len(c.Request.Header))
	for name, values := range c.Request.Header {
		headers[strings.ToLower(name)] = strings.Join(values, ", ")
	}

	query := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			query[key] = values[0]
		}
	}

	contentLength := c.GetHeader("Content-Length")
	if contentLength == "" && c.Request.ContentLength > 0 {
		contentLength = strconv.FormatInt(c.Request.ContentLength, 10)
	}

	return &models.InboundRequest{
		Method:        c.Request.Method,
		URL:           c.Request.URL.RequestURI(),
		Headers:       headers,
		Query:         query,
		Body:          body,
		ContentType:   c.GetHeader("Content-Type"),
		ContentLength: contentLength,
		ClientIP:      c.ClientIP(),
		UserAgent:     c.Request.UserAgent(),
	}
}

// inboundFromLambda builds the same view from a serverless event.
func inboundFromLambda(req *lambda.Request) *models.InboundRequest {
	headers := make(map[string]string, len(req.Headers))
	for name, value := range req.Headers {
		headers[strings.ToLower(name)] = value
	}

	query := make(map[string]string, len(req.QueryParams))
	for key, value := range req.QueryParams {
		query[key] = value
	}

	fullURL := req.Path
	if len(req.QueryParams) > 0 {
		values := url.Values{}
		for key, value := range req.QueryParams {
			values.Set(key, value)
		}
		fullURL += "?" + values.Encode()
	}

	clientIP := req.SourceIP
	if forwarded := headers["x-forwarded-for"]; forwarded != "" {
		clientIP = strings.TrimSpace(strings.SplitN(forwarded, ",", 2)[0])
	}

	return &models.InboundRequest{
		Method:        req.Method,
		URL:           fullURL,
		Headers:       headers,
		Query:         query,
		Body:          req.Body,
		ContentType:   headers["content-type"],
		ContentLength: headers["content-length"],
		ClientIP:      clientIP,
		UserAgent:     headers["user-agent"],
	}
}
