package main

import (
	"fmt"
	"strings"
	"time"

	"raytree/internal/sims/growth"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

func report(cfg growth.Config, results []runResult, elapsed time.Duration) string {
	var s strings.Builder
	p := cfg.Params
	s.WriteString(headerStyle.Render("GROWTH SWEEP") + "\n")
	s.WriteString(labelStyle.Render("Area") + valueStyle.Render(fmt.Sprintf("%dx%d", cfg.Width, cfg.Height)) + "\n")
	s.WriteString(labelStyle.Render("Split") + valueStyle.Render(fmt.Sprintf("%s angle=%g density=%g", p.SplitMode, p.Angle, p.Density)) + "\n")
	s.WriteString(labelStyle.Render("Deviation") + valueStyle.Render(fmt.Sprintf("%s deviance=%g p=%g%%", p.DeviationMode, p.Deviance, p.DeviationProbability)) + "\n")
	s.WriteString(labelStyle.Render("Collision") + valueStyle.Render(p.CollisionPolicy.String()) + "\n\n")

	s.WriteString(labelStyle.Render("seed") + fmt.Sprintf("%8s %9s %8s %10s\n", "ticks", "segments", "peak", "time"))
	var longest *runResult
	settled := 0
	for i := range results {
		res := &results[i]
		line := fmt.Sprintf("%8d %9d %8d %10s", res.ticks, res.segments, res.peakLive, res.elapsed.Round(time.Millisecond))
		switch {
		case res.err != nil:
			line += "  " + warnStyle.Render(res.err.Error())
		case !res.settled:
			line += "  " + warnStyle.Render("still growing")
		default:
			settled++
		}
		s.WriteString(labelStyle.Render(fmt.Sprint(res.seed)) + valueStyle.Render(line) + "\n")
		if longest == nil || res.ticks > longest.ticks {
			longest = res
		}
	}

	if longest != nil && len(longest.live) > 1 {
		chart := asciigraph.Plot(longest.live,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("live rays per tick, seed %d", longest.seed)))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(fmt.Sprintf("\n%d/%d runs settled in %s\n", settled, len(results), elapsed.Round(time.Millisecond)))
	return s.String()
}
