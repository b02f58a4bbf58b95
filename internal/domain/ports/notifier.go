package ports

import (
	"context"

	"aws-health-notifier/internal/domain/model"
)

// Notifier delivers a health message to a chat destination (e.g. a Slack webhook).
type Notifier interface {
	Send(ctx context.Context, message model.Message) error
}
