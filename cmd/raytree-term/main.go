// Command raytree-term runs the growth simulation in a terminal.
package main

import (
	"flag"
	"log"
	"time"

	"raytree/internal/app"
	"raytree/internal/core"
	"raytree/internal/sims/growth"

	"github.com/gdamore/tcell/v2"
)

func main() {
	seed := flag.Int64("seed", 1, "seed for simulation reset")
	tps := flag.Int("tps", 30, "ticks per second")
	opts := app.Options{}
	opts.Bind(flag.CommandLine)
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}

	world := growth.NewWithConfig(growth.FromMap(opts))
	pacer := core.NewPacer(world, *tps)
	v := newViewer(screen, pacer, world, *seed)
	v.reset(*seed)
	run(v)
	screen.Fini()

	log.Printf("stopped after %d ticks with %d segments", world.Ticks(), len(world.Segments()))
}

func run(v *viewer) {
	ticker := time.NewTicker(v.pacer.Interval())
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !v.handleInput(ev) {
				return
			}
		case <-ticker.C:
			v.pacer.Tick()
			v.draw()
		}
	}
}
