package handler

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"

	"github.com/istanbulev/stationfinder/internal/api"
	"github.com/istanbulev/stationfinder/internal/models"
)

const refreshRoute = "/api/stations/refresh"

// StationRefresher is implemented by station.Repository
type StationRefresher interface {
	Refresh(ctx context.Context) (models.StationCollection, error)
}

type RefreshHandler struct {
	refresher StationRefresher
}

func NewRefreshHandler(refresher StationRefresher) *RefreshHandler {
	return &RefreshHandler{
		refresher: refresher,
	}
}

func (h *RefreshHandler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	ctx = withRequestLogger(ctx, request)

	stations, err := h.refresher.Refresh(ctx)
	if err != nil {
		return errorResponse(ctx, refreshRoute, err)
	}

	log.Ctx(ctx).Info().Int("count", len(stations)).Msg("Station list refreshed")
	return api.Success(api.NewRefreshResponse(len(stations)))
}
