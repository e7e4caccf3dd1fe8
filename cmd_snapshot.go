package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/msd/superintendent/internal/app"
	"github.com/msd/superintendent/internal/face"
	"github.com/msd/superintendent/internal/render"
	"github.com/msd/superintendent/internal/state"
)

type snapshotOptions struct {
	at         string
	mode       string
	expression string
	layers     []string
	out        string
}

func newSnapshotCmd(root *rootOptions) *cobra.Command {
	opts := snapshotOptions{}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render a single frame to a PNG, JPEG or SVG file",
		Example: `  superintendent snapshot --expression angry --time 14:00:00 -o angry.png
  superintendent snapshot --mode ambient -o ambient.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(root, opts)
		},
	}
	cmd.Flags().StringVar(&opts.at, "time", "", "clock time as HH:MM[:SS] (default now)")
	cmd.Flags().StringVar(&opts.mode, "mode", "interactive", "draw mode")
	cmd.Flags().StringVar(&opts.expression, "expression", "idle", "face expression")
	cmd.Flags().StringSliceVar(&opts.layers, "layers", render.AllLayers.Names(), "enabled layers")
	cmd.Flags().StringVarP(&opts.out, "output", "o", "face.png", "output file; the extension picks the format")
	return cmd
}

func runSnapshot(root *rootOptions, opts snapshotOptions) error {
	_, f, err := root.loadFace()
	if err != nil {
		return err
	}

	store := state.NewStore()
	e, err := face.ParseExpression(opts.expression)
	if err != nil {
		return err
	}
	mode, err := render.ParseDrawMode(opts.mode)
	if err != nil {
		return err
	}
	layers, err := render.ParseLayerSet(opts.layers)
	if err != nil {
		return err
	}
	store.SetExpression(e)
	store.SetMode(mode)
	store.SetLayers(layers)

	now, err := clockTime(opts.at, time.Now().In(f.Location))
	if err != nil {
		return err
	}

	a := app.NewFromFace(store, f, nil)
	a.Logger = root.logger
	// The snapshot shows exactly the requested expression.
	store.SetCycling(false)

	if strings.EqualFold(filepath.Ext(opts.out), ".svg") {
		file, err := os.Create(opts.out)
		if err != nil {
			return err
		}
		defer file.Close()
		return a.WriteSVGAt(file, store.Snapshot(), now)
	}

	frame, _ := a.Frame(now)
	if err := imaging.Save(frame, opts.out); err != nil {
		return fmt.Errorf("save %s: %w", opts.out, err)
	}
	root.logger.Infof("snapshot", "wrote %s", opts.out)
	return nil
}

// clockTime puts an HH:MM[:SS] wall-clock time on the date of base.
func clockTime(s string, base time.Time) (time.Time, error) {
	if s == "" {
		return base, nil
	}
	for _, layout := range []string{"15:04:05", "15:04"} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return time.Date(base.Year(), base.Month(), base.Day(), t.Hour(), t.Minute(), t.Second(), 0, base.Location()), nil
		}
	}
	return time.Time{}, fmt.Errorf("time %q: want HH:MM or HH:MM:SS", s)
}
