package di

import (
	"os"

	"aws-health-notifier/internal/adapter/logging"
	"aws-health-notifier/internal/adapter/slackwebhook"
	"aws-health-notifier/internal/config"
	"aws-health-notifier/internal/domain/ports"
	"aws-health-notifier/internal/usecase"
)

func provideLogger(cfg *config.Config) *logging.SLogger {
	return logging.NewJSON(os.Stdout, cfg.LogLevel)
}

func provideNotifier(cfg *config.Config, logger ports.Logger) ports.Notifier {
	return slackwebhook.NewWebhook(cfg.SlackWebhookURL, cfg.RequestTimeout, logger)
}

func provideChannelSelectorConfig(cfg *config.Config) usecase.ChannelSelectorConfig {
	return usecase.ChannelSelectorConfig{
		AccountMapping:  cfg.AccountMapping,
		ChannelRouting:  cfg.ChannelRouting,
		ChannelTemplate: cfg.ChannelTemplate,
		DefaultChannel:  cfg.SlackChannel,
	}
}

func provideWarnings(cfg *config.Config) []string {
	return cfg.Warnings
}
