package usecase

import "aws-health-notifier/internal/domain/model"

const (
	healthDashboardURL = "https://phd.aws.amazon.com/phd/home"
	eventLogURLPrefix  = healthDashboardURL + "?region=us-east-1#/event-log?eventID="
)

// BuildMessage formats event for delivery to channel.
func BuildMessage(event model.HealthEvent, channel string) model.Message {
	return model.Message{
		Channel:     channel,
		Description: latestDescription(event.Detail),
		DetailsURL:  detailsURL(event.Detail.EventArn),
	}
}

func latestDescription(detail model.HealthDetail) string {
	if len(detail.EventDescription) == 0 {
		return ""
	}
	return detail.EventDescription[0].LatestDescription
}

// detailsURL links to the event in the Personal Health Dashboard. The ARN is
// appended as-is.
func detailsURL(eventArn string) string {
	if eventArn == "" {
		return healthDashboardURL
	}
	return eventLogURLPrefix + eventArn
}
