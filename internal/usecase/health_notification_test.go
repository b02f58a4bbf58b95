package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aws-health-notifier/internal/adapter/logging"
	"aws-health-notifier/internal/domain/model"
)

type fakeNotifier struct {
	sent []model.Message
	err  error
}

func (f *fakeNotifier) Send(_ context.Context, message model.Message) error {
	f.sent = append(f.sent, message)
	return f.err
}

func newTestHealthNotification(notifier *fakeNotifier) *HealthNotification {
	selector := NewChannelSelector(ChannelSelectorConfig{
		AccountMapping:  model.AccountMapping{"111": {Application: "payments", Environment: "prod"}},
		ChannelRouting:  model.ChannelRouting{},
		ChannelTemplate: defaultTemplate,
		DefaultChannel:  "#aws-health",
	})
	return NewHealthNotification(selector, notifier, logging.New(nil))
}

func TestHealthNotification_Handle(t *testing.T) {
	notifier := &fakeNotifier{}
	uc := newTestHealthNotification(notifier)

	event := model.HealthEvent{
		Account: "111",
		Detail: model.HealthDetail{
			EventArn:         "arn:aws:health:us-east-1::event/EC2/abc",
			EventDescription: []model.EventDescription{{LatestDescription: "EC2 issue"}},
		},
	}

	result := uc.Handle(context.Background(), event)
	assert.Equal(t, model.DeliveryResult{Status: model.DeliveryStatusOK}, result)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "#aws-health-PAYMENTS-prod", notifier.sent[0].Channel)
	assert.Equal(t, "EC2 issue", notifier.sent[0].Description)
	assert.Contains(t, notifier.sent[0].DetailsURL, "arn:aws:health:us-east-1::event/EC2/abc")
}

func TestHealthNotification_HandleFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want model.DeliveryResult
	}{
		{
			name: "http status",
			err:  &model.StatusError{Code: 500, Reason: "Internal Server Error"},
			want: model.DeliveryResult{Status: model.DeliveryStatusError, Code: 500, Reason: "Internal Server Error"},
		},
		{
			name: "wrapped http status",
			err:  fmt.Errorf("send: %w", &model.StatusError{Code: 403, Reason: "Forbidden"}),
			want: model.DeliveryResult{Status: model.DeliveryStatusError, Code: 403, Reason: "Forbidden"},
		},
		{
			name: "transport",
			err:  errors.New("dial tcp: lookup hooks.invalid: no such host"),
			want: model.DeliveryResult{Status: model.DeliveryStatusError, Reason: "dial tcp: lookup hooks.invalid: no such host"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &fakeNotifier{err: tt.err}
			result := newTestHealthNotification(notifier).Handle(context.Background(), model.HealthEvent{})

			assert.Equal(t, tt.want, result)
			require.Len(t, notifier.sent, 1)
			assert.Equal(t, "#aws-health", notifier.sent[0].Channel)
		})
	}
}
