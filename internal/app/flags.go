package app

import (
	"flag"
	"fmt"
	"sort"
	"strings"
)

// Config represents the command-line parameters for the front-ends.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int

	// Options are passed to the simulation factory as key=value pairs.
	Options Options
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "growth", Scale: 1, TPS: 60, Seed: 1, HUDWidth: 300, Options: Options{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	if c.Options == nil {
		c.Options = Options{}
	}
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the control panel, 0 hides it")
	c.Options.Bind(fs)
}

// OptionKeys lists the option keys in sorted order.
func (c *Config) OptionKeys() []string {
	return c.Options.Keys()
}

// Options collects repeatable -set key=value flags for a simulation factory.
type Options map[string]string

// Bind registers o as the -set flag on fs.
func (o Options) Bind(fs *flag.FlagSet) {
	fs.Var(o, "set", "simulation option as key=value (repeatable)")
}

// Set parses one key=value pair.
func (o Options) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("option %q is not key=value", v)
	}
	o[key] = strings.TrimSpace(value)
	return nil
}

func (o Options) String() string {
	keys := o.Keys()
	for i, k := range keys {
		keys[i] = k + "=" + o[k]
	}
	return strings.Join(keys, ",")
}

// Keys lists the option keys in sorted order.
func (o Options) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
