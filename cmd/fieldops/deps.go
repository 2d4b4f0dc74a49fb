package main

import (
	"github.com/fieldopshq/fieldops/internal/config"
	"github.com/fieldopshq/fieldops/internal/logging"
	"github.com/fieldopshq/fieldops/internal/storage/sqlite"
)

// deps carries the shared command dependencies. The store opens
// lazily so commands like version never touch the database.
type deps struct {
	cfg    config.Config
	logger logging.Logger
	store  *sqlite.Store
}

func newDeps(cfg config.Config, logger logging.Logger) *deps {
	if logger == nil {
		logger = logging.Noop()
	}
	return &deps{cfg: cfg, logger: logger}
}

// Store opens the cache database on first use.
func (d *deps) Store() (*sqlite.Store, error) {
	if d.store != nil {
		return d.store, nil
	}
	store, err := sqlite.Open(d.cfg.DBPath())
	if err != nil {
		return nil, err
	}
	d.store = store
	return d.store, nil
}

// Close releases the store and flushes logs.
func (d *deps) Close() {
	if d.store != nil {
		if err := d.store.Close(); err != nil {
			d.logger.Warn("close store", "error", err)
		}
		d.store = nil
	}
	_ = d.logger.Shutdown()
}
