//go:build wireinject

package di

import (
	"github.com/google/wire"

	"aws-health-notifier/internal/adapter/logging"
	"aws-health-notifier/internal/app"
	"aws-health-notifier/internal/config"
	"aws-health-notifier/internal/domain/ports"
	"aws-health-notifier/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp() (*app.App, error) {
	wire.Build(
		config.Load,
		provideLogger,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideNotifier,
		provideChannelSelectorConfig,
		usecase.NewChannelSelector,
		usecase.NewHealthNotification,
		provideWarnings,
		app.New,
	)
	return nil, nil
}
