package report

import "go.uber.org/fx"

// Module provides the failure reporter
var Module = fx.Options(
	fx.Provide(NewReporter),
)
