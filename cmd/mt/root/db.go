package root

import (
	"context"

	"go.uber.org/zap"

	"missiontracker/internal/catalog"
	"missiontracker/internal/config"
	"missiontracker/internal/engine"
	"missiontracker/internal/logging"
	"missiontracker/internal/storage"
)

type app struct {
	cfg      config.Config
	svc      *engine.Service
	log      *zap.Logger
	loader   catalog.Loader
	missions []engine.Mission
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if opts.dbPath != "" {
		cfg.DBPath = opts.dbPath
	}
	if opts.sheetURL != "" {
		cfg.SheetURL = opts.sheetURL
	}
	if opts.catalogFile != "" {
		cfg.CatalogFile = opts.catalogFile
	}
	if opts.offline {
		cfg.Offline = true
	}
	return cfg, nil
}

// openService wires config, logging, storage and the catalog. Unless board
// is set it also loads the catalog and reconciles the state; the board does
// both itself so it can refresh.
func openService(ctx context.Context, board bool) (*app, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	newLogger := logging.New
	if board {
		newLogger = logging.ForBoard
	}
	log, closeLog, err := newLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, nil, err
	}

	loc, err := cfg.Location()
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	sch, err := cfg.Schedule(loc)
	if err != nil {
		closeLog()
		return nil, nil, err
	}

	path, err := storage.ResolveDBPath(cfg.DBPath)
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	log.Debug("opened state database", zap.String("path", path))

	cleanup := func() {
		_ = db.Close()
		closeLog()
	}

	a := &app{
		cfg: cfg,
		log: log,
		svc: engine.NewService(storage.NewStateRepo(db),
			engine.WithClock(engine.RealClock{Location: loc}),
			engine.WithSchedule(sch),
			engine.WithLogger(log),
			engine.WithStateKey(cfg.StateKey),
		),
		loader: catalog.Loader{
			File:     cfg.CatalogFile,
			SheetURL: cfg.SheetSource(),
			Timeout:  cfg.FetchTimeout,
			Log:      log,
		},
	}
	if board {
		return a, cleanup, nil
	}

	a.missions = a.loader.Load(ctx)
	if _, _, err := a.svc.Reconcile(ctx, a.missions); err != nil {
		cleanup()
		return nil, nil, err
	}
	return a, cleanup, nil
}
