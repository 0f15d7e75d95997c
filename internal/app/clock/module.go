package clock

import "go.uber.org/fx"

// Module provides the clock source
var Module = fx.Options(
	fx.Provide(NewRealSource),
)
