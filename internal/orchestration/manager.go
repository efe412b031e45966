package orchestration

import (
	"context"
	"errors"
	"fmt"

	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/checkpoint"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/config"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/platform/cloud"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/provisioning"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/provisioning/catalog"
)

// ErrStateExists rejects a fresh setup while a previous run's state is
// still on disk.
var ErrStateExists = errors.New("a previous run exists: use resume to continue or clear to start over")

// ErrUnknownStage is returned by Rerun for a stage ID outside the catalog.
var ErrUnknownStage = errors.New("unknown stage")

// Manager drives the persisted setup state machine.
type Manager struct {
	store    checkpoint.Store
	cloud    cloud.ControlPlane
	backup   provisioning.BackupStore
	stages   []provisioning.Stage
	observer provisioning.Observer
	timeouts *config.Timeouts

	// Confirm is asked before each stage executes. Nil means run without
	// asking (the --yes path).
	Confirm func(stage provisioning.Stage) (bool, error)
}

// Option customizes a Manager.
type Option func(*Manager)

// WithStages replaces the stage catalog, for tests.
func WithStages(stages []provisioning.Stage) Option {
	return func(m *Manager) { m.stages = stages }
}

// WithObserver replaces the console observer.
func WithObserver(o provisioning.Observer) Option {
	return func(m *Manager) { m.observer = o }
}

// WithBackupStore attaches the optional S3-compatible artifact store.
func WithBackupStore(s provisioning.BackupStore) Option {
	return func(m *Manager) { m.backup = s }
}

// WithTimeouts replaces the environment-derived timing configuration.
func WithTimeouts(t *config.Timeouts) Option {
	return func(m *Manager) { m.timeouts = t }
}

// NewManager creates a manager over the given store and control plane.
func NewManager(store checkpoint.Store, cp cloud.ControlPlane, opts ...Option) *Manager {
	m := &Manager{
		store:    store,
		cloud:    cp,
		stages:   catalog.Stages(),
		observer: provisioning.NewConsoleObserver(),
		timeouts: config.LoadTimeouts(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Configure validates the run context and persists a fresh document with
// every stage pending. The control plane is never touched: an invalid run
// context is rejected before any provider call.
func (m *Manager) Configure(_ context.Context, rc *config.RunContext) (*checkpoint.Document, error) {
	if err := rc.Err(); err != nil {
		return nil, err
	}

	if _, err := m.store.Load(); err == nil {
		return nil, ErrStateExists
	} else if !errors.Is(err, checkpoint.ErrNoPriorRun) {
		return nil, err
	}

	ids := make([]string, len(m.stages))
	for i, s := range m.stages {
		ids[i] = s.ID
	}
	doc := checkpoint.NewDocument(*rc, ids)
	if err := m.store.Save(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Run executes stages from the lowest non-completed one onward. Each stage
// is marked in-progress before execution and completed or failed right
// after; a failure stops the run. Declining a confirmation stops cleanly
// with the stage still pending.
func (m *Manager) Run(ctx context.Context) error {
	doc, err := m.store.Load()
	if err != nil {
		return err
	}

	pctx := m.newContext(ctx, &doc.RunContext)

	for {
		stageID, more := doc.NextStage()
		if !more {
			m.observer.Printf("all stages completed for project %s", doc.RunContext.ProjectID)
			return nil
		}

		stage, ok := m.findStage(stageID)
		if !ok {
			return fmt.Errorf("%w: %s (state file from a newer version?)", ErrUnknownStage, stageID)
		}

		if m.Confirm != nil {
			proceed, err := m.Confirm(stage)
			if err != nil {
				return err
			}
			if !proceed {
				m.observer.Printf("stopped before stage %s", stage.ID)
				return nil
			}
		}

		doc.Set(stage.ID, checkpoint.StatusInProgress, "")
		if err := m.store.Save(doc); err != nil {
			return err
		}

		result := provisioning.RunStage(pctx, stage)
		if result.Err != nil {
			doc.Set(stage.ID, checkpoint.StatusFailed, result.Err.Error())
			if saveErr := m.store.Save(doc); saveErr != nil {
				return fmt.Errorf("stage %s failed (%v); saving state also failed: %w",
					stage.ID, result.Err, saveErr)
			}
			return fmt.Errorf("stage %s failed: %w", stage.ID, result.Err)
		}

		doc.Set(stage.ID, checkpoint.StatusCompleted, result.Summary())
		if err := m.store.Save(doc); err != nil {
			return err
		}
	}
}

// Rerun resets the named stage and everything after it to pending, then
// runs forward. Resetting later stages preserves the ordering guarantee:
// stage k+1 never ends up completed against resources older than stage k's.
func (m *Manager) Rerun(ctx context.Context, stageID string) error {
	doc, err := m.store.Load()
	if err != nil {
		return err
	}

	if !doc.ResetFrom(stageID) {
		return fmt.Errorf("%w: %s", ErrUnknownStage, stageID)
	}
	if err := m.store.Save(doc); err != nil {
		return err
	}

	return m.Run(ctx)
}

// Status returns the persisted document.
func (m *Manager) Status() (*checkpoint.Document, error) {
	return m.store.Load()
}

// Clear removes the persisted document.
func (m *Manager) Clear() error {
	return m.store.Clear()
}

// Stages returns the stage catalog in execution order.
func (m *Manager) Stages() []provisioning.Stage {
	return m.stages
}

func (m *Manager) findStage(id string) (provisioning.Stage, bool) {
	for _, s := range m.stages {
		if s.ID == id {
			return s, true
		}
	}
	return provisioning.Stage{}, false
}

func (m *Manager) newContext(ctx context.Context, rc *config.RunContext) *provisioning.Context {
	return &provisioning.Context{
		Context:  ctx,
		Run:      rc,
		State:    provisioning.NewState(),
		Cloud:    m.cloud,
		Backup:   m.backup,
		Observer: m.observer,
		Timeouts: m.timeouts,
	}
}
