// Package app is the composition root: it opens the store, loads the latest
// snapshot, and wires the services and engines together. Engines are plain
// objects owned here, never package-level singletons.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/conjugo/internal/competency"
	"github.com/abhisek/conjugo/internal/evaluator"
	"github.com/abhisek/conjugo/internal/logging"
	"github.com/abhisek/conjugo/internal/placement"
	"github.com/abhisek/conjugo/internal/profile"
	"github.com/abhisek/conjugo/internal/progress"
	"github.com/abhisek/conjugo/internal/progression"
	"github.com/abhisek/conjugo/internal/recommend"
	"github.com/abhisek/conjugo/internal/requirements"
	"github.com/abhisek/conjugo/internal/store"
)

// snapshotKeep is how many persisted snapshots survive pruning.
const snapshotKeep = 10

// App owns the full engine stack for one process.
type App struct {
	Store        *store.Store
	Log          *zap.SugaredLogger
	Competencies *competency.Service
	Profiles     *profile.Service
	Requirements *requirements.Table
	Evaluator    *evaluator.Evaluator
	Progress     *progress.Calculator
	Progression  *progression.Engine
	Recommend    *recommend.Engine
	Placement    *placement.Runner
}

// New opens the database at dsn and wires everything up, restoring service
// state from the most recent snapshot.
func New(ctx context.Context, dsn string, log *zap.SugaredLogger) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}

	st, err := store.Open(dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	var data *store.SnapshotData
	snap, err := st.SnapshotRepo().Latest(ctx)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap != nil {
		data = &snap.Data
		log.Debugw("restored snapshot", "sequence", snap.Sequence, "timestamp", snap.Timestamp)
	}

	events := st.EventRepo()
	comps := competency.NewService(data, events, log)
	profiles := profile.NewService(data, comps, events, log)
	table := requirements.DefaultTable()

	eval := evaluator.New(comps, table, log)
	calc := progress.New(comps, table, eval, profiles, log)

	pool, err := placement.DefaultPool()
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("build question pool: %w", err)
	}

	return &App{
		Store:        st,
		Log:          log,
		Competencies: comps,
		Profiles:     profiles,
		Requirements: table,
		Evaluator:    eval,
		Progress:     calc,
		Progression:  progression.New(comps, table, profiles, log),
		Recommend:    recommend.New(profiles, eval, calc, log),
		Placement:    placement.NewRunner(pool, events, profiles, log),
	}, nil
}

// RecordAttempt is the write path for practice attempts: it folds the
// attempt into the learner's stats and invalidates every report cache.
func (a *App) RecordAttempt(ctx context.Context, userID string, attempt competency.Attempt) *competency.Stat {
	stat := a.Competencies.RecordAttempt(ctx, userID, attempt)
	a.InvalidateCaches()
	return stat
}

// InvalidateCaches clears all report caches. Invalidation is clear-all, not
// per-dependency: a stale report is merely outdated output, never invalid
// state.
func (a *App) InvalidateCaches() {
	a.Evaluator.InvalidateCache()
	a.Progress.InvalidateCache()
	a.Recommend.InvalidateCache()
}

// Save persists the current in-memory state as a new snapshot and prunes
// old ones.
func (a *App) Save(ctx context.Context) error {
	seq, err := a.Store.NextSequence(ctx)
	if err != nil {
		return fmt.Errorf("snapshot sequence: %w", err)
	}
	snap := &store.Snapshot{
		Sequence:  seq,
		Timestamp: time.Now(),
		Data: store.SnapshotData{
			Version:      1,
			Profiles:     a.Profiles.SnapshotData(),
			Competencies: a.Competencies.SnapshotData(),
		},
	}
	repo := a.Store.SnapshotRepo()
	if err := repo.Save(ctx, snap); err != nil {
		return err
	}
	if err := repo.Prune(ctx, snapshotKeep); err != nil {
		a.Log.Warnw("snapshot prune failed", "err", err)
	}
	return nil
}

// Close saves a final snapshot and closes the store.
func (a *App) Close(ctx context.Context) error {
	if err := a.Save(ctx); err != nil {
		a.Log.Warnw("final snapshot failed", "err", err)
	}
	return a.Store.Close()
}
