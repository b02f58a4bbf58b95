package app

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/lambda"

	"aws-health-notifier/internal/domain/model"
	"aws-health-notifier/internal/domain/ports"
	"aws-health-notifier/internal/usecase"
)

// App adapts Lambda invocations of AWS Health events to the notification use case.
type App struct {
	usecase  *usecase.HealthNotification
	logger   ports.Logger
	warnings []string
}

// New constructs an App instance. Warnings are logged once when the runtime starts.
func New(notification *usecase.HealthNotification, logger ports.Logger, warnings []string) *App {
	return &App{
		usecase:  notification,
		logger:   logger,
		warnings: warnings,
	}
}

// Run reports configuration warnings and hands control to the Lambda runtime.
// It does not return.
func (a *App) Run(ctx context.Context) {
	for _, w := range a.warnings {
		a.logger.Warn(ctx, "configuration warning", "warning", w)
	}
	a.logger.Info(ctx, "starting lambda handler")
	lambda.StartWithOptions(a.Handle, lambda.WithContext(ctx))
}

// Handle processes one health event. The payload is taken raw so that a
// malformed or unexpected envelope still reaches the default channel instead
// of failing the invocation. The returned error is always nil: delivery
// problems are reported in the result.
func (a *App) Handle(ctx context.Context, payload json.RawMessage) (model.DeliveryResult, error) {
	event, err := model.ParseHealthEvent(payload)
	if err != nil {
		a.logger.Warn(ctx, "event could not be fully decoded", "event_id", event.ID, "error", err)
	}
	a.logger.Debug(ctx, "received event", "event_id", event.ID, "detail_type", event.DetailType, "source", event.Source)

	return a.usecase.Handle(ctx, event), nil
}
