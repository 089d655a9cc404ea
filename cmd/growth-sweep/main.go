// Command growth-sweep runs the growth simulation headless over a range of
// seeds and reports how each run settled.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"raytree/internal/app"
	"raytree/internal/sims/growth"
)

func main() {
	seeds := flag.Int("seeds", 16, "number of seeds to run")
	first := flag.Int64("seed", 1, "first seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	maxTicks := flag.Int("max-ticks", 20000, "tick limit per run")
	pngDir := flag.String("png", "", "directory for PNG snapshots")
	svgDir := flag.String("svg", "", "directory for SVG snapshots")
	opts := app.Options{}
	opts.Bind(flag.CommandLine)
	flag.Parse()

	cfg := growth.FromMap(opts)
	for _, dir := range []string{*pngDir, *svgDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("create output dir: %v", err)
		}
	}
	if *workers < 1 {
		*workers = 1
	}

	fmt.Printf("Sweeping %d seeds from %d (%d workers, %dx%d)\n", *seeds, *first, *workers, cfg.Width, cfg.Height)

	out := outputs{pngDir: *pngDir, svgDir: *svgDir}
	jobs := make(chan int64)
	results := make(chan runResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runSeed(cfg, seed, *maxTicks, out)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *seeds; i++ {
			jobs <- *first + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []runResult
	for res := range results {
		if res.err != nil {
			log.Printf("seed %d: %v", res.seed, res.err)
		}
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seed < all[j].seed })

	fmt.Print(report(cfg, all, time.Since(start)))
}
