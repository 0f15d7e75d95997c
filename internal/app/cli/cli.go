//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"go.uber.org/fx"

	"termface/internal/app/assets"
	"termface/internal/app/bus"
	"termface/internal/app/errors"
	"termface/internal/app/host"
	"termface/internal/app/report"
	"termface/internal/app/ui"
	"termface/internal/config"
	"termface/internal/config/logger"
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (int, error)
}

// Params contains the CLI's dependencies
type Params struct {
	fx.In

	Options  *Options
	Config   *config.Config
	Engine   host.Engine
	Loader   assets.Loader
	Reporter report.Reporter
	Bus      bus.Bus
	UI       ui.UI
	Logger   logger.Logger
}

// cli represents the command-line interface for the application
type cli struct {
	opts     *Options
	cfg      *config.Config
	engine   host.Engine
	loader   assets.Loader
	reporter report.Reporter
	bus      bus.Bus
	ui       ui.UI
	out      io.Writer
	isTTY    func() bool
	log      logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(p Params) CLI {
	return &cli{
		opts:     p.Options,
		cfg:      p.Config,
		engine:   p.Engine,
		loader:   p.Loader,
		reporter: p.Reporter,
		bus:      p.Bus,
		ui:       p.UI,
		out:      os.Stdout,
		isTTY:    func() bool { return term.IsTerminal(os.Stdout.Fd()) },
		log:      p.Logger.WithComponent(logger.ComponentCLI),
	}
}

// Execute runs the parsed command and returns the process exit code
func (c *cli) Execute() (int, error) {
	var err error

	switch c.opts.Type {
	case CommandRun:
		err = c.handleRun()
	case CommandRender:
		err = c.handleRender()
	case CommandPreview:
		err = c.handlePreview()
	case CommandInit:
		err = c.handleInit()
	case CommandVersion:
		err = c.handleVersion()
	case CommandHelp:
		err = c.handleHelp()
	}

	if err != nil {
		c.log.Error().Err(err).Msg("Command failed")
		fmt.Fprintln(os.Stderr, RenderError(err))

		return 1, err
	}

	return 0, nil
}

// signalContext cancels on SIGINT or SIGTERM and reports the signal on the bus
func (c *cli) signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			c.log.Info().Msgf("Received signal %s", sig)
			c.bus.Publish(bus.Message{Type: bus.EventSignal, Data: bus.Signal{Name: sig.String()}, Critical: true})
			cancel()
		case <-ctx.Done():
		}

		signal.Stop(sigChan)
	}()

	return ctx, cancel
}

func (c *cli) handleRun() error {
	ctx, cancel := c.signalContext()
	defer cancel()

	if c.opts.Headless {
		c.log.Info().Msgf("Running headless (ticks=%d, snapshots='%s')", c.opts.Ticks, c.opts.Snapshots)

		return host.RunHeadless(ctx, c.engine, host.HeadlessOptions{
			Frames:      c.opts.Ticks,
			SnapshotDir: c.opts.Snapshots,
			Ambient:     c.opts.Ambient,
		}, c.log)
	}

	c.log.Info().Msg("Opening window")

	return host.RunWindow(ctx, c.engine, host.WindowOptions{
		Scale:   c.opts.Scale,
		Ambient: c.opts.Ambient,
	})
}

func (c *cli) handleRender() error {
	at := time.Now()

	if c.opts.At != "" {
		parsed, err := time.Parse(time.RFC3339, c.opts.At)
		if err != nil {
			return fmt.Errorf("%w: --at %q: %w", errors.ErrInvalidConfig, c.opts.At, err)
		}

		at = parsed
	}

	width, height := c.cfg.Surface.Width, c.cfg.Surface.Height

	if c.opts.Size != "" {
		w, h, err := ParseSize(c.opts.Size)
		if err != nil {
			return err
		}

		width, height = w, h
	}

	img, err := host.RenderOnce(c.cfg, c.loader, c.reporter, at, width, height, c.log)
	if err != nil {
		return err
	}

	if err := host.SavePNG(img, c.opts.Out); err != nil {
		return err
	}

	c.log.Info().Msgf("Rendered %dx%d at %s to '%s'", width, height, at.Format(time.RFC3339), c.opts.Out)
	fmt.Fprintf(c.out, "%s\n", c.opts.Out)

	return nil
}

func (c *cli) handlePreview() error {
	if !c.isTTY() {
		return errors.ErrNotTerminal
	}

	ctx, cancel := c.signalContext()
	defer cancel()

	p := c.ui(ctx)

	if err := c.engine.Start(ctx, host.StartOptions{Ambient: c.opts.Ambient}); err != nil {
		return err
	}
	defer c.engine.Stop()

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("preview: %w", err)
	}

	return nil
}

func (c *cli) handleInit() error {
	if _, err := os.Stat(config.ConfigFile); err == nil && !c.opts.Force {
		return fmt.Errorf("%w: %s", errors.ErrConfigExists, config.ConfigFile)
	}

	data, err := config.DefaultConfig().Template()
	if err != nil {
		return err
	}

	if err := os.WriteFile(config.ConfigFile, data, 0o644); err != nil {
		return err
	}

	c.log.Debug().Msgf("Wrote '%s'", config.ConfigFile)
	fmt.Fprintf(c.out, "Created %s\n", config.ConfigFile)

	return nil
}

func (c *cli) handleVersion() error {
	c.log.Debug().Msg("Displaying version information")
	fmt.Fprintln(c.out, RenderTitle())

	return nil
}

func (c *cli) handleHelp() error {
	c.log.Debug().Msg("Displaying help information")
	fmt.Fprint(c.out, RenderUsage())

	return nil
}

// ParseSize parses a WxH surface size
func ParseSize(s string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: size %q", errors.ErrInvalidSurfaceSize, s)
	}

	width, err := strconv.Atoi(w)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: size %q", errors.ErrInvalidSurfaceSize, s)
	}

	height, err := strconv.Atoi(h)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: size %q", errors.ErrInvalidSurfaceSize, s)
	}

	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%w: size %q", errors.ErrInvalidSurfaceSize, s)
	}

	return width, height, nil
}
