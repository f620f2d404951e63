package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"

	"github.com/istanbulev/stationfinder/internal/api"
	"github.com/istanbulev/stationfinder/internal/models"
	"github.com/istanbulev/stationfinder/internal/report"
)

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	var malformed *models.MalformedInputError
	if errors.As(err, &malformed) {
		return http.StatusBadRequest
	}
	var unavailable *models.DataUnavailableError
	if errors.As(err, &unavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func errorResponse(ctx context.Context, route string, err error) (events.APIGatewayProxyResponse, error) {
	status := statusFor(err)
	if status == http.StatusBadRequest {
		return api.Error(err.Error(), status)
	}

	log.Ctx(ctx).Error().Err(err).Str("route", route).Int("status", status).Msg("Request failed")
	report.ReportError(err, map[string]string{"route": route})

	if status == http.StatusServiceUnavailable {
		return api.Error("Station data is temporarily unavailable", status)
	}
	return api.Error("Internal Server Error", status)
}
