package assets

import "go.uber.org/fx"

// Module provides the asset loader
var Module = fx.Options(
	fx.Provide(NewDirLoader),
)
