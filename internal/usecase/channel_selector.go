package usecase

import (
	"strings"

	"aws-health-notifier/internal/domain/model"
)

const (
	applicationPlaceholder = "{application}"
	environmentPlaceholder = "{environment}"
)

// ChannelSelector resolves the Slack channel for a health event from account mappings.
type ChannelSelector struct {
	mapping        model.AccountMapping
	routing        model.ChannelRouting
	template       string
	defaultChannel string
}

// ChannelSelectorConfig holds the routing tables a ChannelSelector consults.
type ChannelSelectorConfig struct {
	AccountMapping  model.AccountMapping
	ChannelRouting  model.ChannelRouting
	ChannelTemplate string
	DefaultChannel  string
}

// NewChannelSelector constructs a ChannelSelector.
func NewChannelSelector(cfg ChannelSelectorConfig) *ChannelSelector {
	return &ChannelSelector{
		mapping:        cfg.AccountMapping,
		routing:        cfg.ChannelRouting,
		template:       cfg.ChannelTemplate,
		defaultChannel: cfg.DefaultChannel,
	}
}

// Select returns the channel for event. The source account is tried before the
// affected account; the first one found in the mapping decides. An explicit
// routing entry wins over the template, and unmapped events go to the default channel.
func (s *ChannelSelector) Select(event model.HealthEvent) string {
	for _, accountID := range []string{event.Account, event.Detail.AffectedAccount} {
		if accountID == "" {
			continue
		}
		app, ok := s.mapping[accountID]
		if !ok {
			continue
		}

		application := strings.ToUpper(app.Application)
		environment := strings.ToLower(app.Environment)

		if channel, ok := s.routing.Channel(application, environment); ok {
			return channel
		}

		channel := strings.ReplaceAll(s.template, applicationPlaceholder, application)
		return strings.ReplaceAll(channel, environmentPlaceholder, environment)
	}

	return s.defaultChannel
}
