package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"raytree/internal/core"
	"raytree/internal/render"
	"raytree/internal/sims/growth"
)

type outputs struct {
	pngDir string
	svgDir string
}

type runResult struct {
	seed     int64
	ticks    int
	segments int
	peakLive int
	settled  bool
	live     []float64
	elapsed  time.Duration
	err      error
}

func runSeed(cfg growth.Config, seed int64, maxTicks int, out outputs) runResult {
	world := growth.NewWithConfig(cfg)

	var raster *render.Raster
	var rec *render.Recorder
	var layers []core.Surface
	if out.pngDir != "" {
		raster = render.NewRaster(cfg.Width, cfg.Height)
		layers = append(layers, raster)
	}
	if out.svgDir != "" {
		rec = render.NewRecorder()
		layers = append(layers, rec)
	}
	if len(layers) > 0 {
		world.AttachLayers(core.Tee(layers...), nil)
	}

	start := time.Now()
	world.Reset(seed)
	res := runResult{seed: seed}
	for world.Active() && world.Ticks() < maxTicks {
		world.Step()
		n := world.Live()
		res.peakLive = max(res.peakLive, n)
		res.live = append(res.live, float64(n))
	}
	res.elapsed = time.Since(start)
	res.ticks = world.Ticks()
	res.segments = len(world.Segments())
	res.settled = !world.Active()

	name := fmt.Sprintf("growth-%d", seed)
	if raster != nil {
		img := render.Snapshot(raster.Image(), nil, render.DefaultPalette())
		if err := writeFile(filepath.Join(out.pngDir, name+".png"), func(w io.Writer) error {
			return render.WritePNG(w, img)
		}); err != nil {
			res.err = err
			return res
		}
	}
	if rec != nil {
		if err := writeFile(filepath.Join(out.svgDir, name+".svg"), func(w io.Writer) error {
			return render.WriteSVG(w, cfg.Width, cfg.Height, rec.Paths(), render.DefaultSVGOptions())
		}); err != nil {
			res.err = err
		}
	}
	return res
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
