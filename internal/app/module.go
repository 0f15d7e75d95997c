package app

import (
	"go.uber.org/fx"

	"termface/internal/app/assets"
	"termface/internal/app/bus"
	"termface/internal/app/cli"
	"termface/internal/app/clock"
	"termface/internal/app/compositor"
	"termface/internal/app/host"
	"termface/internal/app/lifecycle"
	"termface/internal/app/looper"
	"termface/internal/app/report"
	"termface/internal/app/ui"
	"termface/internal/app/zonewatch"
)

var Module = fx.Options(
	clock.Module,
	assets.Module,
	compositor.Module,
	looper.Module,
	bus.Module,
	report.Module,
	lifecycle.Module,
	zonewatch.Module,
	host.Module,
	ui.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
