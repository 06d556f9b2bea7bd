// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/config"
	"github.com/katalvlaran/campusnav/loader"
)

// flags holds root-level overrides of the config file.
type flags struct {
	configPath string
	locations  string
	paths      string
	strict     bool
	logLevel   string
}

// app is the state shared by every command of one process, including all
// commands typed into a shell session.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	flags flags
	cfg   config.Config
	log   *zap.Logger
	m     *campus.Map
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{in: in, out: out, errOut: errOut, log: zap.NewNop()}
}

// ready reports whether the map has been loaded.
func (a *app) ready() bool { return a.m != nil }

// resolveConfig loads the config file and applies flag overrides on top.
func (a *app) resolveConfig() (config.Config, error) {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return cfg, err
	}
	if a.flags.locations != "" {
		cfg.Data.Locations = a.flags.locations
	}
	if a.flags.paths != "" {
		cfg.Data.Paths = a.flags.paths
	}
	if a.flags.strict {
		cfg.Data.Strict = true
	}
	if a.flags.logLevel != "" {
		cfg.Log.Level = a.flags.logLevel
	}

	return cfg, cfg.Validate()
}

// init resolves configuration, builds the logger and loads the map.
func (a *app) init() error {
	cfg, err := a.resolveConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.log, err = cfg.Log.NewLogger(); err != nil {
		return err
	}

	m, err := campus.New(
		campus.WithLogger(a.log.Named("campus")),
		campus.WithBridgeWeight(cfg.Analysis.BridgeWeight),
		campus.WithMSTMethod(cfg.Analysis.MSTMethod),
	)
	if err != nil {
		return err
	}

	opts := []loader.Option{loader.WithLogger(a.log.Named("loader"))}
	if cfg.Data.Strict {
		opts = append(opts, loader.WithStrict())
	}
	rep, err := loader.LoadFiles(cfg.Data.Locations, cfg.Data.Paths, m, opts...)
	if err != nil {
		return err
	}
	if rep.Skipped > 0 {
		a.log.Warn("rows skipped during load", zap.Int("skipped", rep.Skipped), zap.Error(rep.Err()))
	}
	a.m = m

	return nil
}

func (a *app) close() {
	_ = a.log.Sync()
}
