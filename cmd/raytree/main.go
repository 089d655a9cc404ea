//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"raytree/internal/app"
	"raytree/internal/core"
	_ "raytree/internal/sims/growth"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.Options)
	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.HUDWidth)
	game.OnSettled = func(ticks int) {
		log.Printf("%s settled after %d ticks", sim.Name(), ticks)
	}
	game.Reset(cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("raytree - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+max(cfg.HUDWidth, 0), size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
