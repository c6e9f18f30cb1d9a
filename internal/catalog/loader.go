package catalog

import (
	"context"
	"time"

	"go.uber.org/zap"

	"missiontracker/internal/engine"
)

// Loader assembles the catalog from the built-ins plus optional sources.
// Source failures are logged and skipped; the built-ins are always present.
type Loader struct {
	File     string
	SheetURL string
	Timeout  time.Duration
	Fetcher  Fetcher
	Log      *zap.Logger
}

func (l Loader) logger() *zap.Logger {
	if l.Log == nil {
		return zap.NewNop()
	}
	return l.Log
}

func (l Loader) Load(ctx context.Context) []engine.Mission {
	log := l.logger()
	var imports [][]engine.Mission

	if l.File != "" {
		res, err := LoadFile(l.File)
		if err != nil {
			log.Warn("catalog file unavailable; using built-in missions", zap.String("path", l.File), zap.Error(err))
		} else {
			logIssues(log, "catalog file", res.Issues)
			imports = append(imports, res.Missions)
		}
	}

	if l.SheetURL != "" {
		fctx := ctx
		if l.Timeout > 0 {
			var cancel context.CancelFunc
			fctx, cancel = context.WithTimeout(ctx, l.Timeout)
			defer cancel()
		}
		res, err := l.Fetcher.Fetch(fctx, l.SheetURL)
		if err != nil {
			log.Warn("mission sheet unavailable; using built-in missions", zap.Error(err))
		} else {
			logIssues(log, "mission sheet", res.Issues)
			log.Debug("mission sheet loaded", zap.Int("missions", len(res.Missions)))
			imports = append(imports, res.Missions)
		}
	}

	return Merge(Builtin(), imports...)
}

func logIssues(log *zap.Logger, source string, issues []Issue) {
	for _, is := range issues {
		log.Warn("catalog entry issue",
			zap.String("source", source),
			zap.Int("line", is.Line),
			zap.String("id", is.ID),
			zap.Bool("skipped", is.Skipped),
			zap.Error(is.Err))
	}
}
