package provisioning

import (
	"context"

	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/config"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/platform/cloud"
)

// BackupStore is the S3-compatible artifact store the backup stage writes to.
type BackupStore interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
	CreateBucket(ctx context.Context, bucket string) error
	PutObject(ctx context.Context, bucket, key string, data []byte) error
}

// Context wraps all dependencies and state needed by stage execution.
type Context struct {
	context.Context
	Run      *config.RunContext
	State    *State
	Cloud    cloud.ControlPlane
	Backup   BackupStore // nil when no backup store is configured
	Observer Observer
	Timeouts *config.Timeouts
}

// NewContext creates a new execution context.
func NewContext(ctx context.Context, rc *config.RunContext, cp cloud.ControlPlane) *Context {
	return &Context{
		Context:  ctx,
		Run:      rc,
		State:    NewState(),
		Cloud:    cp,
		Observer: NewConsoleObserver(),
		Timeouts: config.LoadTimeouts(),
	}
}
