package handler

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/istanbulev/stationfinder/internal/api"
	"github.com/istanbulev/stationfinder/internal/metrics"
)

// LambdaHandler is the API Gateway handler signature every handler here exposes
type LambdaHandler func(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// Adapt serves a Lambda handler over plain net/http so the same handlers back
// both the Lambda functions and the standalone server.
func Adapt(route string, h LambdaHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		request := events.APIGatewayProxyRequest{
			Resource:              route,
			Path:                  r.URL.Path,
			HTTPMethod:            r.Method,
			Headers:               firstValues(r.Header),
			QueryStringParameters: firstValues(r.URL.Query()),
			RequestContext: events.APIGatewayProxyRequestContext{
				RequestID: RequestIDFromContext(r.Context()),
			},
		}

		resp, err := h(r.Context(), request)
		if err != nil {
			log.Ctx(r.Context()).Error().Err(err).Str("route", route).Msg("Handler returned an error")
			resp, _ = api.Error("Internal Server Error", http.StatusInternalServerError)
		}

		for k, v := range resp.Headers {
			// CORS is handled by the router middleware
			if k == "Access-Control-Allow-Origin" {
				continue
			}
			w.Header().Set(k, v)
		}
		w.WriteHeader(resp.StatusCode)
		if _, err := io.WriteString(w, resp.Body); err != nil {
			log.Ctx(r.Context()).Debug().Err(err).Msg("Error writing response body")
		}

		metrics.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(resp.StatusCode)).Inc()
	}
}

func firstValues[M ~map[string][]string](values M) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}

// withRequestLogger attaches a logger tagged with the API Gateway request ID
func withRequestLogger(ctx context.Context, request events.APIGatewayProxyRequest) context.Context {
	id := request.RequestContext.RequestID
	if id == "" {
		id = uuid.NewString()
	}
	logger := log.With().Str("request_id", id).Logger()
	return logger.WithContext(ctx)
}
