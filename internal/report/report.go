// Package report renders breaking results and run history for the
// terminal.
package report

import (
	"context"

	"github.com/Yug-Shah/cryptoPals/internal/model"
	"github.com/Yug-Shah/cryptoPals/internal/store"
)

// Report contains precomputed data for history rendering.
type Report struct {
	Runs []model.RunSummary
}

// BuildReport loads and prepares run history for rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.HistoryConfig) (Report, error) {
	runs, err := st.ListRuns(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Last > 0 && len(runs) > cfg.Last {
		runs = runs[len(runs)-cfg.Last:]
	}
	return Report{Runs: runs}, nil
}
