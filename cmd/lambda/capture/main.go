package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"request-capture-api/internal/config"
	"request-capture-api/internal/handlers"
	"request-capture-api/internal/services"
	"request-capture-api/pkg/lambda"
)

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	config.SetupLogging(cfg)

	// Fail the cold start, not the first request, on a bad credential.
	if err := lambda.GetConnectionManager().Initialize(context.Background(), cfg); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := lambda.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"success":false,"error":"Internal server error","message":"Service is not available"}`,
		}, nil
	}

	req := &lambda.Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        []byte(event.Body),
		SourceIP:    event.RequestContext.Identity.SourceIP,
	}

	// The basic variant skips the XML metadata scan.
	opts := services.CaptureOptions{ExtractXMLMetadata: true}
	if req.Path == "/capture/basic" {
		opts.ExtractXMLMetadata = false
	}

	captureHandler := handlers.NewCaptureHandler(container.CaptureService, opts)
	resp, err := captureHandler.HandleCapture(ctx, req)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"success":false,"error":"Internal server error","message":"Failed to process request"}`,
		}, nil
	}

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}, nil
}

func main() {
	awslambda.Start(handler)
}
