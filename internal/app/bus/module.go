package bus

import (
	"go.uber.org/fx"

	"termface/internal/config/logger"
)

// Module provides bus for dependency injection
var Module = fx.Module("bus",
	fx.Provide(func(log logger.Logger) Bus {
		return New(log.WithComponent(logger.ComponentBus))
	}),
)
