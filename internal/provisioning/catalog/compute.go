package catalog

import (
	"fmt"
	"time"

	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/config"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/platform/cloud"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/provisioning"
)

// Fixed resource names of the compute stage. Exactly one instance exists per
// environment, selected by the setup type.
const (
	DevInstanceName      = "nf-dev-instance"
	AllInOneInstanceName = "nf-all-in-one"

	devMachineType      = "e2-standard-2"
	allInOneMachineType = "e2-standard-8"

	instanceImage  = "debian-12"
	devDiskGB      = 50
	allInOneDiskGB = 200

	instanceRunning = "RUNNING"
)

// InstanceName returns the instance the setup type provisions.
func InstanceName(setupType config.SetupType) string {
	if setupType == config.SetupAllInOne {
		return AllInOneInstanceName
	}
	return DevInstanceName
}

// computeStage provisions the environment's single instance and waits for it
// to reach RUNNING.
func computeStage() provisioning.Stage {
	return provisioning.Stage{
		ID:    "compute",
		Title: "Compute",
		Resources: func(ctx *provisioning.Context) []provisioning.Descriptor {
			name := InstanceName(ctx.Run.SetupType)

			return []provisioning.Descriptor{
				{
					Name: name,
					Desired: func(ctx *provisioning.Context) cloud.Config {
						cfg := cloud.ComputeInstanceConfig{
							MachineType: devMachineType,
							Zone:        ctx.Run.Zone,
							Subnet:      SubnetName,
							Image:       instanceImage,
							DiskSizeGB:  devDiskGB,
							Tags:        []string{sshTag},
						}
						if ctx.Run.SetupType == config.SetupAllInOne {
							cfg.MachineType = allInOneMachineType
							cfg.DiskSizeGB = allInOneDiskGB
						}
						return cfg
					},
				},
			}
		},
		Post: waitForInstanceRunning,
	}
}

// waitForInstanceRunning polls the instance status until RUNNING, with a
// bounded number of attempts. A timeout is fatal for the stage.
func waitForInstanceRunning(ctx *provisioning.Context) error {
	name := InstanceName(ctx.Run.SetupType)

	for attempt := 1; attempt <= ctx.Timeouts.InstancePollAttempts; attempt++ {
		exists, observed, err := ctx.Cloud.DescribeResource(ctx, cloud.KindComputeInstance, name)
		if err != nil && !cloud.IsTransient(err) {
			return fmt.Errorf("polling instance %s: %w", name, err)
		}
		if err == nil && exists {
			status := observed["status"]
			ctx.State.Record(cloud.KindComputeInstance, name, observed)
			if status == instanceRunning {
				ctx.Observer.Printf("  instance %s is %s", name, status)
				return nil
			}
			ctx.Observer.Event(provisioning.Event{
				Type:     provisioning.EventProgress,
				Stage:    "compute",
				Resource: name,
				Message:  "waiting for instance",
				Fields:   map[string]string{"status": status},
			})
		}

		if attempt < ctx.Timeouts.InstancePollAttempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(ctx.Timeouts.InstancePollInterval):
			}
		}
	}

	return fmt.Errorf("instance %s did not reach %s after %d polls",
		name, instanceRunning, ctx.Timeouts.InstancePollAttempts)
}
