package host

import "go.uber.org/fx"

// Module provides the engine
var Module = fx.Options(
	fx.Provide(NewEngine),
)
