package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/platform/cloud"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/provisioning"
)

// Fixed resource names of the backup stage.
const (
	BackupJobName       = "nf-daily-backup"
	backupSchedule      = "0 3 * * *"
	backupRetentionDays = 7

	// RetentionManifestKey is the object the retention policy is written to,
	// next to the backup artifacts.
	RetentionManifestKey = "retention.json"
)

// BackupBucketName is the S3-compatible bucket backup artifacts land in.
func BackupBucketName(projectID string) string {
	return "nf-backups-" + projectID
}

// retentionManifest records the backup policy inside the bucket so consumers
// of the artifacts see the same schedule the job runs on.
type retentionManifest struct {
	Schedule      string `json:"schedule"`
	RetentionDays int    `json:"retentionDays"`
}

// backupStage schedules the daily backup job and, when a backup store is
// configured, ensures the artifact bucket exists.
func backupStage() provisioning.Stage {
	return provisioning.Stage{
		ID:    "backup",
		Title: "Backup",
		Resources: func(*provisioning.Context) []provisioning.Descriptor {
			return []provisioning.Descriptor{
				{
					Name: BackupJobName,
					Desired: func(ctx *provisioning.Context) cloud.Config {
						return cloud.BackupJobConfig{
							Schedule:      backupSchedule,
							RetentionDays: backupRetentionDays,
							Target:        InstanceName(ctx.Run.SetupType),
						}
					},
				},
			}
		},
		Post: ensureBackupBucket,
	}
}

// ensureBackupBucket converges the artifact bucket in the configured backup
// store and writes the retention manifest into it. An existing bucket is
// reused, mirroring the describe-then-act treatment of provider resources.
// Without credentials the step is skipped; the scheduled job itself does not
// depend on it.
func ensureBackupBucket(ctx *provisioning.Context) error {
	if ctx.Backup == nil {
		ctx.Observer.Printf("  no backup store configured, skipping artifact bucket")
		return nil
	}

	bucket := BackupBucketName(ctx.Run.ProjectID)
	exists, err := ctx.Backup.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("checking backup bucket %s: %w", bucket, err)
	}
	if exists {
		ctx.Observer.Printf("  backup bucket %s already exists", bucket)
	} else {
		if err := ctx.Backup.CreateBucket(ctx, bucket); err != nil {
			return fmt.Errorf("creating backup bucket %s: %w", bucket, err)
		}
		ctx.Observer.Printf("  backup bucket %s created", bucket)
	}

	manifest, err := json.Marshal(retentionManifest{
		Schedule:      backupSchedule,
		RetentionDays: backupRetentionDays,
	})
	if err != nil {
		return fmt.Errorf("encoding retention manifest: %w", err)
	}
	if err := ctx.Backup.PutObject(ctx, bucket, RetentionManifestKey, manifest); err != nil {
		return fmt.Errorf("writing retention manifest to %s: %w", bucket, err)
	}
	return nil
}
