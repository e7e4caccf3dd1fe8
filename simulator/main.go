package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/msd/superintendent/internal/app"
	"github.com/msd/superintendent/internal/buttons"
	"github.com/msd/superintendent/internal/config"
	"github.com/msd/superintendent/internal/state"
	"github.com/msd/superintendent/internal/web"
)

type simOptions struct {
	listenAddr string
	devMode    bool
	staticDir  string
	scenario   string
	configPath string
	debug      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newSimCmd().ExecuteContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newSimCmd() *cobra.Command {
	defaults, envErr := web.DefaultServerConfigFromEnv(":8080")
	opts := simOptions{listenAddr: defaults.ListenAddr, devMode: defaults.DevMode}

	cmd := &cobra.Command{
		Use:          "simulator",
		Short:        "Run the face headless with an HTTP preview",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return fmt.Errorf("server config: %w", envErr)
			}
			return runSimulator(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.listenAddr, "listen", opts.listenAddr, "http listen address; also configurable via "+web.EnvListenAddr)
	cmd.Flags().BoolVar(&opts.devMode, "dev", opts.devMode, "enable dev mode; also configurable via "+web.EnvDevMode)
	cmd.Flags().StringVar(&opts.staticDir, "static-dir", "", "serve static UI from this directory; when empty, the embedded page is served")
	cmd.Flags().StringVar(&opts.scenario, "scenario", "idle", "startup scenario: idle | angry | ambient | cycle")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "face configuration file (TOML); defaults when empty")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	return cmd
}

func runSimulator(ctx context.Context, opts simOptions) error {
	logger := app.NewCharmLogger(os.Stderr, opts.debug)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	f, err := cfg.Resolve(logger)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	store := state.NewStore()
	btns := buttons.NewChanButtons()
	frames := web.NewFrameHolder()

	control := NewSimControl(store, btns, opts.scenario)
	if err := control.ApplyScenario(opts.scenario); err != nil {
		return err
	}

	a := app.NewFromFace(store, f, btns, frames)
	a.Logger = logger
	a.Now = control.Now
	if f.Cycle {
		store.SetCycling(true)
	}

	router := web.NewRouter(web.RouterConfig{
		API: web.APIV1Deps{
			Store:     store,
			Frames:    frames,
			RenderSVG: a.WriteSVG,
			PublicURL: cfg.Web.PublicURL,
		},
		StaticDir: opts.staticDir,
		DevMode:   opts.devMode,
		Extra:     func(r chi.Router) { control.Register(r, f.Location) },
	})
	server := web.NewHTTPServer(opts.listenAddr, router, logger)
	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("server start: %w", err)
	}
	defer server.Stop()

	logger.Infof("sim", "listening on %s, scenario %s", server.ListenAddr(), control.Scenario())
	logger.Infof("sim", "preview: http://%s/", displayAddr(server.ListenAddr()))

	start := time.Now()
	err = a.Start(ctx)
	logger.Infof("sim", "ran for %s", time.Since(start).Round(time.Second))
	return err
}

// displayAddr turns a listen address into something a browser can open.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "127.0.0.1" + addr
	}
	if addr == "" {
		return "127.0.0.1:8080"
	}
	return addr
}
