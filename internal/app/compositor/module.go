package compositor

import "go.uber.org/fx"

// Module provides the compositor
var Module = fx.Options(
	fx.Provide(NewCompositor),
)
