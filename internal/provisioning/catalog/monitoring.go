package catalog

import (
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/platform/cloud"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/provisioning"
)

// Fixed resource names of the monitoring stage.
const (
	LoggingSinkName  = "nf-logging-sink"
	MetricsScopeName = "nf-metrics-scope"
)

// LogBucketName is the storage destination the logging sink routes to.
func LogBucketName(projectID string) string {
	return "nf-logs-" + projectID
}

// monitoringStage routes project logs to storage and registers the project
// in the monitoring metrics scope.
func monitoringStage() provisioning.Stage {
	return provisioning.Stage{
		ID:    "monitoring",
		Title: "Monitoring",
		Resources: func(*provisioning.Context) []provisioning.Descriptor {
			return []provisioning.Descriptor{
				{
					Name: LoggingSinkName,
					Desired: func(ctx *provisioning.Context) cloud.Config {
						return cloud.LoggingSinkConfig{
							Destination: "storage.googleapis.com/" + LogBucketName(ctx.Run.ProjectID),
						}
					},
				},
				{
					Name: MetricsScopeName,
					Desired: func(ctx *provisioning.Context) cloud.Config {
						return cloud.MetricsScopeConfig{MonitoredProject: ctx.Run.ProjectID}
					},
				},
			}
		},
	}
}
