package main

import "flag"

import "github.com/caarlos0/env/v11"
import "github.com/pkg/errors"
import "github.com/rs/zerolog"

type config struct {
	Cells    int    `env:"SIMRANGE_CELLS" envDefault:"1000"`
	Segments int    `env:"SIMRANGE_SEGMENTS" envDefault:"8"`
	Threads  int    `env:"SIMRANGE_THREADS" envDefault:"64"`
	Seed     int64  `env:"SIMRANGE_SEED" envDefault:"1"`
	Level    string `env:"SIMRANGE_LOG_LEVEL" envDefault:"info"`
	Device   int    `env:"SIMRANGE_DEVICE" envDefault:"0"`

	level zerolog.Level
}

// loadConfig reads the environment first, then lets flags override it.
func loadConfig(args []string) (cfg config, err error) {
	if err = env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(err, "parse env")
	}
	fs := flag.NewFlagSet("accumulate", flag.ContinueOnError)
	fs.IntVar(&cfg.Cells, "cells", cfg.Cells, "number of cells")
	fs.IntVar(&cfg.Segments, "segments", cfg.Segments, "maximum compartments per cell")
	fs.IntVar(&cfg.Threads, "threads", cfg.Threads, "goroutines accumulating at once")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "population seed")
	fs.StringVar(&cfg.Level, "level", cfg.Level, "log level")
	fs.IntVar(&cfg.Device, "device", cfg.Device, "CUDA device ordinal to query")
	if err = fs.Parse(args); err != nil {
		return cfg, errors.Wrap(err, "parse flags")
	}
	if cfg.Cells <= 0 || cfg.Segments <= 0 {
		return cfg, errors.Errorf("cells and segments must be positive, got %d and %d", cfg.Cells, cfg.Segments)
	}
	if cfg.level, err = zerolog.ParseLevel(cfg.Level); err != nil {
		return cfg, errors.Wrapf(err, "log level %q", cfg.Level)
	}
	return cfg, nil
}
