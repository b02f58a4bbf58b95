package usecase

import (
	"context"
	"errors"
	"time"

	"aws-health-notifier/internal/domain/model"
	"aws-health-notifier/internal/domain/ports"
)

// HealthNotification routes a health event to its channel and delivers it.
type HealthNotification struct {
	selector *ChannelSelector
	notifier ports.Notifier
	logger   ports.Logger
}

// NewHealthNotification constructs a HealthNotification use case.
func NewHealthNotification(selector *ChannelSelector, notifier ports.Notifier, logger ports.Logger) *HealthNotification {
	return &HealthNotification{
		selector: selector,
		notifier: notifier,
		logger:   logger,
	}
}

// Handle delivers event once. Delivery failures are reported in the result,
// never as an error.
func (h *HealthNotification) Handle(ctx context.Context, event model.HealthEvent) model.DeliveryResult {
	start := time.Now()

	channel := h.selector.Select(event)
	h.logger.Info(ctx, "routing health event",
		"account", event.Account,
		"affected_account", event.Detail.AffectedAccount,
		"event_arn", event.Detail.EventArn,
		"channel", channel,
	)

	message := BuildMessage(event, channel)
	result := deliveryResult(h.notifier.Send(ctx, message))

	if result.Status == model.DeliveryStatusOK {
		h.logger.Info(ctx, "health notification delivered", "channel", channel, "duration", time.Since(start))
	} else {
		h.logger.Error(ctx, "health notification delivery failed",
			"channel", channel,
			"code", result.Code,
			"reason", result.Reason,
		)
	}
	return result
}

func deliveryResult(err error) model.DeliveryResult {
	if err == nil {
		return model.DeliveryResult{Status: model.DeliveryStatusOK}
	}

	var statusErr *model.StatusError
	if errors.As(err, &statusErr) {
		return model.DeliveryResult{
			Status: model.DeliveryStatusError,
			Code:   statusErr.Code,
			Reason: statusErr.Reason,
		}
	}
	return model.DeliveryResult{Status: model.DeliveryStatusError, Reason: err.Error()}
}
