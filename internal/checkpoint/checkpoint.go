// Package checkpoint persists setup progress between invocations.
//
// A Document records the run context and one Checkpoint per stage. The
// FileStore writes the document atomically so an interrupted process never
// leaves a half-written state file behind; resume always sees either the
// previous document or the new one, never a torn mix.
package checkpoint

import (
	"time"

	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/config"
)

// DocumentVersion is the current checkpoint document schema version.
const DocumentVersion = 1

// Status is the lifecycle state of a single stage.
type Status string

// Stage checkpoint statuses.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Checkpoint records the outcome of one stage.
type Checkpoint struct {
	StageID   string    `yaml:"stage_id"`
	Status    Status    `yaml:"status"`
	Timestamp time.Time `yaml:"timestamp"`
	Detail    string    `yaml:"detail,omitempty"`
}

// Document is the persisted state of a setup run.
type Document struct {
	Version     int               `yaml:"version"`
	UpdatedAt   time.Time         `yaml:"updated_at"`
	RunContext  config.RunContext `yaml:"run_context"`
	Checkpoints []Checkpoint      `yaml:"checkpoints"`
}

// NewDocument creates a document with every stage pending.
func NewDocument(rc config.RunContext, stageIDs []string) *Document {
	now := time.Now().UTC()
	doc := &Document{
		Version:    DocumentVersion,
		UpdatedAt:  now,
		RunContext: rc,
	}
	for _, id := range stageIDs {
		doc.Checkpoints = append(doc.Checkpoints, Checkpoint{
			StageID:   id,
			Status:    StatusPending,
			Timestamp: now,
		})
	}
	return doc
}

// Get returns the checkpoint for a stage, or nil when unknown.
func (d *Document) Get(stageID string) *Checkpoint {
	for i := range d.Checkpoints {
		if d.Checkpoints[i].StageID == stageID {
			return &d.Checkpoints[i]
		}
	}
	return nil
}

// Set updates the checkpoint for a stage, appending one if the stage is not
// yet tracked.
func (d *Document) Set(stageID string, status Status, detail string) {
	now := time.Now().UTC()
	d.UpdatedAt = now

	if cp := d.Get(stageID); cp != nil {
		cp.Status = status
		cp.Timestamp = now
		cp.Detail = detail
		return
	}
	d.Checkpoints = append(d.Checkpoints, Checkpoint{
		StageID:   stageID,
		Status:    status,
		Timestamp: now,
		Detail:    detail,
	})
}

// NextStage returns the ID of the first checkpoint, in document order, that
// is not completed. The second return is false when every stage completed.
func (d *Document) NextStage() (string, bool) {
	for _, cp := range d.Checkpoints {
		if cp.Status != StatusCompleted {
			return cp.StageID, true
		}
	}
	return "", false
}

// ResetFrom marks the named stage and every later checkpoint pending,
// clearing their details. It reports whether the stage was found.
func (d *Document) ResetFrom(stageID string) bool {
	start := -1
	for i, cp := range d.Checkpoints {
		if cp.StageID == stageID {
			start = i
			break
		}
	}
	if start < 0 {
		return false
	}

	now := time.Now().UTC()
	d.UpdatedAt = now
	for i := start; i < len(d.Checkpoints); i++ {
		d.Checkpoints[i].Status = StatusPending
		d.Checkpoints[i].Timestamp = now
		d.Checkpoints[i].Detail = ""
	}
	return true
}

// Completed reports whether every stage completed.
func (d *Document) Completed() bool {
	_, more := d.NextStage()
	return !more && len(d.Checkpoints) > 0
}
