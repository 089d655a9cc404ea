package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"raytree/internal/sims/growth"
)

func smallConfig() growth.Config {
	cfg := growth.DefaultConfig()
	cfg.Width = 120
	cfg.Height = 90
	return cfg
}

func TestRunSeedSettlesAndWritesSnapshots(t *testing.T) {
	dir := t.TempDir()
	res := runSeed(smallConfig(), 4, 20000, outputs{pngDir: dir, svgDir: dir})
	if res.err != nil {
		t.Fatalf("runSeed: %v", res.err)
	}
	if !res.settled {
		t.Fatalf("expected seed 4 to settle, still growing after %d ticks", res.ticks)
	}
	if res.segments < 2 || len(res.live) != res.ticks {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.live[len(res.live)-1] != 0 {
		t.Fatalf("expected the last tick to end with no live rays, got %f", res.live[len(res.live)-1])
	}
	for _, name := range []string{"growth-4.png", "growth-4.svg"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
		if info.Size() == 0 {
			t.Fatalf("expected %s to have content", name)
		}
	}
	svg, err := os.ReadFile(filepath.Join(dir, "growth-4.svg"))
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if got := strings.Count(string(svg), "<path "); got != res.segments {
		t.Fatalf("expected one path per segment (%d), got %d", res.segments, got)
	}
}

func TestRunSeedStopsAtTickLimit(t *testing.T) {
	res := runSeed(smallConfig(), 4, 3, outputs{})
	if res.ticks != 3 || res.settled {
		t.Fatalf("expected the run to stop unsettled after 3 ticks, got %+v", res)
	}
}

func TestReportListsEverySeed(t *testing.T) {
	results := []runResult{
		{seed: 11, ticks: 40, segments: 30, peakLive: 6, settled: true, live: []float64{2, 4, 6, 3, 0}},
		{seed: 12, ticks: 5, segments: 3, peakLive: 2, live: []float64{2, 2, 2, 2, 2}},
	}
	out := report(smallConfig(), results, time.Second)
	for _, want := range []string{"11", "12", "still growing", "1/2 runs settled", "live rays per tick, seed 11"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in report:\n%s", want, out)
		}
	}
}
