package app

import (
	"flag"
	"io"
	"slices"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("raytree", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-scale", "2", "-seed", "7", "-set", "density=2", "-set", " angle = 60 "})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Scale != 2 || cfg.Seed != 7 || cfg.Sim != "growth" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Options["density"] != "2" || cfg.Options["angle"] != "60" {
		t.Fatalf("unexpected options %v", cfg.Options)
	}
	if keys := cfg.OptionKeys(); !slices.Equal(keys, []string{"angle", "density"}) {
		t.Fatalf("expected sorted keys, got %v", keys)
	}

	if err := fs.Parse([]string{"-set", "novalue"}); err == nil {
		t.Fatal("expected an option without '=' to be rejected")
	}
}

func TestOptionsOnOwnFlagSet(t *testing.T) {
	opts := Options{}
	fs := flag.NewFlagSet("sweep", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts.Bind(fs)

	if err := fs.Parse([]string{"-set", "w=320", "-set", "split_mode=primary-secondary", "-set", "w=200"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts["w"] != "200" || opts["split_mode"] != "primary-secondary" {
		t.Fatalf("expected the last value to win, got %v", opts)
	}
	if got := opts.String(); got != "split_mode=primary-secondary,w=200" {
		t.Fatalf("expected sorted pairs, got %q", got)
	}
	if err := opts.Set("=1"); err == nil {
		t.Fatal("expected an empty key to be rejected")
	}
}
