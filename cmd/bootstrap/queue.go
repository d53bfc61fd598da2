package bootstrap

import (
	"hotel-booking-api/internal/infra/queue"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var QueueModule = fx.Module("queue",
	fx.Provide(
		func(cfg config.Config) commands.EventPublisher {
			return queue.NewAMQPPublisher(cfg.Queue)
		},
	),
)
