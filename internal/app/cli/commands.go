package cli

import (
	"github.com/spf13/cobra"

	"termface/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandRun CommandType = iota
	CommandRender
	CommandPreview
	CommandInit
	CommandVersion
	CommandHelp
)

// Options contains the parsed command-line arguments
type Options struct {
	Type CommandType

	Headless  bool
	Ticks     int
	Snapshots string
	Ambient   bool
	Scale     int

	At   string
	Size string
	Out  string

	Force bool
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version bool
}

// Parse parses command-line args and returns an Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{
		Type:  CommandRun,
		Scale: 1,
		Out:   config.DefaultRenderOut,
	}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(
		buildRunCommand(result),
		buildRenderCommand(result),
		buildPreviewCommand(result),
		buildInitCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if flags.version {
		result.Type = CommandVersion
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: config.AppDescription,
		Long: `termface renders a terminal style watch face: an animated background,
the time and date as shell commands, and a six bit binary clock.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRun
		},
	}

	cmd.PersistentFlags().BoolVar(&result.Ambient, "ambient", false, "Start in ambient mode")
	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildRunCommand creates the run subcommand
func buildRunCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run",
		Aliases: []string{"r"},
		Short:   "Run the face in a window or headless",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRun
		},
	}

	cmd.Flags().BoolVar(&result.Headless, "headless", false, "Run without a window")
	cmd.Flags().IntVar(&result.Ticks, "ticks", 0, "Stop after this many painted frames (0 runs until interrupted)")
	cmd.Flags().StringVar(&result.Snapshots, "snapshots", "", "Write every painted frame as a PNG into this directory")
	cmd.Flags().IntVar(&result.Scale, "scale", 1, "Window scale factor")

	return cmd
}

// buildRenderCommand creates the render subcommand
func buildRenderCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single frame to a PNG",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRender
		},
	}

	cmd.Flags().StringVar(&result.At, "at", "", "Wall time to render (RFC3339, default now)")
	cmd.Flags().StringVar(&result.Size, "size", "", "Surface size as WxH (default from config)")
	cmd.Flags().StringVarP(&result.Out, "out", "o", config.DefaultRenderOut, "Output PNG path")

	return cmd
}

// buildPreviewCommand creates the preview subcommand
func buildPreviewCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "preview",
		Aliases: []string{"p"},
		Short:   "Mirror the face overlay in the terminal",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandPreview
		},
	}

	return cmd
}

// buildInitCommand creates the init subcommand
func buildInitCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Generate termface.yaml template",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandInit
		},
	}

	cmd.Flags().BoolVarP(&result.Force, "force", "f", false, "Overwrite an existing termface.yaml")

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}

	return cmd
}
