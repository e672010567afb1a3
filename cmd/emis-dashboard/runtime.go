package main

import (
	"fmt"

	"github.com/kingrea/emis-dashboard/internal/alerts"
	"github.com/kingrea/emis-dashboard/internal/api"
	"github.com/kingrea/emis-dashboard/internal/config"
	"github.com/kingrea/emis-dashboard/internal/dashboard"
	"github.com/kingrea/emis-dashboard/internal/inspect"
	"github.com/kingrea/emis-dashboard/internal/logbook"
	"github.com/kingrea/emis-dashboard/internal/logging"
	"github.com/kingrea/emis-dashboard/internal/metrics"
	"github.com/kingrea/emis-dashboard/internal/store"
)

// runtime bundles everything one dashboard session needs.
type runtime struct {
	config    *config.Config
	logger    *logging.Logger
	journal   *logbook.Logbook
	metrics   *metrics.Metrics
	dashboard *dashboard.Dashboard
}

// newRuntime loads .emis/ under projectDir and wires the dashboard to the
// API client, the action journal and the metrics registry.
func newRuntime(projectDir string) (*runtime, error) {
	if err := config.InitEmisDir(projectDir); err != nil {
		return nil, fmt.Errorf("init .emis: %w", err)
	}
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(projectDir)
	if err != nil {
		return nil, err
	}
	journal, err := logbook.New(cfg.JournalPath())
	if err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("open journal: %w", err)
	}
	m := metrics.New()
	client := api.New(cfg.API(), api.WithLogger(logger))
	dash := dashboard.New(client,
		dashboard.WithLogger(logger),
		dashboard.WithOptions(dashboard.Options{
			Map: alerts.MapOptions{StorePoints: cfg.StoreMapPoints()},
		}),
		dashboard.WithObserver(func(a store.Action, _ dashboard.State) {
			journal.Record(a)
			m.Observe(a)
		}),
	)
	journal.Info("session opened · api %s", cfg.API().BaseURL)
	return &runtime{
		config:    cfg,
		logger:    logger,
		journal:   journal,
		metrics:   m,
		dashboard: dash,
	}, nil
}

// inspectServer builds the inspect server from the project settings.
func (r *runtime) inspectServer() *inspect.Server {
	return inspect.NewServer(inspect.SettingsFromConfig(r.config), r.dashboard,
		inspect.WithLogger(r.logger),
		inspect.WithMetrics(r.metrics.Handler()),
	)
}

func (r *runtime) Close() {
	r.journal.Info("session closed")
	_ = r.logger.Close()
}
