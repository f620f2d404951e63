package main

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"github.com/istanbulev/stationfinder/internal/app"
	"github.com/istanbulev/stationfinder/internal/handler"
	"github.com/istanbulev/stationfinder/internal/report"
)

var (
	lambdaStart     = lambda.Start // Allow mocking of lambda.Start in tests
	stationsHandler *handler.StationsHandler
	setupOnce       sync.Once
	initHandler     = defaultInitHandler
)

func defaultInitHandler(ctx context.Context) (*handler.StationsHandler, error) {
	a, err := app.FromEnv(ctx)
	if err != nil {
		return nil, err
	}
	return a.Handlers.Stations, nil
}

func handleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if stationsHandler == nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Body:       `{"responseType":"error","error":"Handler not initialized"}`,
		}, fmt.Errorf("handler not initialized")
	}
	return stationsHandler.HandleRequest(ctx, request)
}

func InitializeService() error {
	var initError error
	setupOnce.Do(func() {
		var err error
		stationsHandler, err = initHandler(context.Background())
		if err != nil {
			initError = fmt.Errorf("failed to initialize handler: %w", err)
			return
		}
		log.Debug().Msg("Stations function initialized")
	})
	return initError
}

func main() {
	if err := InitializeService(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}
	defer report.Flush()

	lambdaStart(handleRequest)
}
