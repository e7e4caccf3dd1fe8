package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msd/superintendent/internal/app"
	"github.com/msd/superintendent/internal/config"
)

const EnvStdioLog = "SUPERINTENDENT_STDIO_LOG"

type rootOptions struct {
	configPath string
	debug      bool
	stdioLog   string

	logger app.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{logger: app.NoopLogger{}}

	root := &cobra.Command{
		Use:           "superintendent",
		Short:         "Superintendent clock face for round framebuffer displays",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Redirect stdout/stderr (including panic stack traces) to a file so
			// crashes are diagnosable while the console is in graphics mode.
			logPath := opts.stdioLog
			if logPath == "" {
				logPath = os.Getenv(EnvStdioLog)
			}
			if logPath != "" {
				if err := redirectStdIO(logPath); err != nil {
					fmt.Fprintln(os.Stderr, "stdio log redirect error:", err)
				}
			}
			opts.logger = app.NewCharmLogger(os.Stderr, opts.debug)
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "face configuration file (TOML)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	root.PersistentFlags().StringVar(&opts.stdioLog, "stdio-log", "", "redirect stdout+stderr to this file; also configurable via "+EnvStdioLog)

	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newSnapshotCmd(opts))
	root.AddCommand(newExpressionsCmd())
	return root
}

// loadFace reads and resolves the configuration.
func (o *rootOptions) loadFace() (config.Config, *config.Face, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, nil, err
	}
	f, err := cfg.Resolve(o.logger)
	if err != nil {
		return cfg, nil, fmt.Errorf("config: %w", err)
	}
	return cfg, f, nil
}
