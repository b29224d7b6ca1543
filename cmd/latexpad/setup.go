package main

import (
	"github.com/cockroachdb/errors"
	"github.com/tesso57/latexpad/internal/application/settings"
	"github.com/tesso57/latexpad/internal/application/widget"
	"github.com/tesso57/latexpad/internal/infrastructure/config"
	"github.com/tesso57/latexpad/internal/infrastructure/logging"
	"github.com/tesso57/latexpad/internal/infrastructure/typeset"
)

// load reads the configuration, applies flag overrides and starts logging.
func (g *Globals) load() (settings.Settings, error) {
	store, err := config.Load(g.Config)
	if err != nil {
		return settings.Settings{}, errors.Wrap(err, "load config")
	}
	cfg := store.Settings
	if g.Backend != "" {
		cfg.Backend = g.Backend
	}
	if err := logging.Initialize(cfg.Log); err != nil {
		return settings.Settings{}, err
	}
	logging.Logger.Debugw("config loaded", "path", store.Path(), "backend", cfg.Backend)
	return cfg, nil
}

func newBackend(cfg settings.Settings) (widget.Backend, error) {
	backend, err := typeset.New(cfg.Backend)
	if err != nil {
		return nil, errors.Wrap(err, "select backend")
	}
	return backend, nil
}
