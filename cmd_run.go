package main

import (
	"github.com/spf13/cobra"

	"github.com/msd/superintendent/internal/app"
	"github.com/msd/superintendent/internal/buttons"
	"github.com/msd/superintendent/internal/render"
	"github.com/msd/superintendent/internal/state"
	"github.com/msd/superintendent/internal/web"
)

type runOptions struct {
	cycle     bool
	noConsole bool
	noFB      bool
	noWeb     bool
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Draw the face on the framebuffer until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDevice(cmd, root, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.cycle, "cycle", false, "cycle through every expression")
	cmd.Flags().BoolVar(&opts.noConsole, "no-console", false, "leave the tty in text mode")
	cmd.Flags().BoolVar(&opts.noFB, "no-fb", false, "do not open the framebuffer")
	cmd.Flags().BoolVar(&opts.noWeb, "no-web", false, "do not start the preview server")
	return cmd
}

func runDevice(cmd *cobra.Command, root *rootOptions, opts runOptions) error {
	ctx := cmd.Context()
	log := root.logger

	cfg, f, err := root.loadFace()
	if err != nil {
		return err
	}

	store := state.NewStore()
	frames := web.NewFrameHolder()
	presenters := []render.Presenter{frames}
	if !opts.noFB {
		fb := render.NewFBPresenter(f.Framebuffer)
		fb.Logger = log
		presenters = append(presenters, fb)
	}

	a := app.NewFromFace(store, f, buttons.NewEvdevButtons(log), presenters...)
	a.Logger = log
	a.Console = !opts.noConsole
	if opts.cycle {
		store.SetCycling(true)
	}

	var serverCfg *web.ServerConfig
	if !opts.noWeb {
		c, err := web.DefaultServerConfigFromEnv(cfg.Web.Listen)
		if err != nil {
			return err
		}
		serverCfg = &c
	}
	server := web.NewPreviewServer(serverCfg, web.APIV1Deps{
		Store:     store,
		Frames:    frames,
		RenderSVG: a.WriteSVG,
		PublicURL: cfg.Web.PublicURL,
	}, log)
	if err := server.Start(ctx); err != nil {
		log.Errorf("web", "preview server disabled: %v", err)
	} else {
		defer server.Stop()
	}

	log.Infof("main", "superintendent running %dx%d, head radius %.1fpx", f.Width, f.Height, f.HeadRadius)
	return a.Start(ctx)
}
