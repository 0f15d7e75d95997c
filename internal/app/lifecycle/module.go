package lifecycle

import "go.uber.org/fx"

// Module provides the face controller and its repaint signal
var Module = fx.Options(
	fx.Provide(
		NewSignal,
		func(s *Signal) Invalidator { return s },
		NewController,
	),
)
