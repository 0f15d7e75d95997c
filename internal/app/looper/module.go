package looper

import "go.uber.org/fx"

// Module provides the drawing looper
var Module = fx.Options(
	fx.Provide(NewLooper),
)
