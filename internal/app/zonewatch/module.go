package zonewatch

import "go.uber.org/fx"

// Module provides the time zone watcher
var Module = fx.Options(
	fx.Provide(NewWatcher),
)
