// Package serverless serves the landing page as an AWS Lambda function
// behind an API Gateway proxy integration.
package serverless

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"

	"github.com/alcortesm/safelink-premium/app/web"
)

type Handler struct {
	Logger zerolog.Logger
}

// Handle answers every invocation with the landing page, whatever the
// request is.
func (h Handler) Handle(
	_ context.Context,
	req events.APIGatewayProxyRequest,
) (events.APIGatewayProxyResponse, error) {
	h.Logger.Info().
		Str("method", req.HTTPMethod).
		Str("path", req.Path).
		Str("request_id", req.RequestContext.RequestID).
		Int("status", http.StatusOK).
		Msg("request")

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "text/html"},
		Body:       web.LandingPage,
	}, nil
}
