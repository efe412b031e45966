package handlers

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/checkpoint"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/config"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/platform/cloud"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/platform/s3"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/provisioning/catalog"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/ui"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/util/prerequisites"
)

// saveAndRestoreFactories saves and restores the handler factory functions.
func saveAndRestoreFactories(t *testing.T) {
	origNewStore := newStore
	origNewControlPlane := newControlPlane
	origNewBackupStore := newBackupStore
	origAcquireLock := acquireLock
	origRunWizard := runWizard
	origBuildWizardContext := buildWizardContext
	origLoadConfigFile := loadConfigFile
	origFindConfigFile := findConfigFile
	origWriteConfigFile := writeConfigFile
	origCheckPrerequisites := checkPrerequisites
	origIsInteractive := isInteractive
	origConfirmer := confirmer

	t.Cleanup(func() {
		newStore = origNewStore
		newControlPlane = origNewControlPlane
		newBackupStore = origNewBackupStore
		acquireLock = origAcquireLock
		runWizard = origRunWizard
		buildWizardContext = origBuildWizardContext
		loadConfigFile = origLoadConfigFile
		findConfigFile = origFindConfigFile
		writeConfigFile = origWriteConfigFile
		checkPrerequisites = origCheckPrerequisites
		isInteractive = origIsInteractive
		confirmer = origConfirmer
	})
}

// wireTestFactories installs a memory store, a fake control plane with a
// pre-existing RUNNING instance, no backup store and a no-op lock.
func wireTestFactories(t *testing.T) (*checkpoint.MemoryStore, *cloud.Fake) {
	t.Helper()
	saveAndRestoreFactories(t)

	store := checkpoint.NewMemoryStore()
	fake := cloud.NewFake()
	fake.Seed(cloud.KindComputeInstance, catalog.DevInstanceName, map[string]string{
		"machineType": "e2-standard-2",
		"zone":        "us-central1-a",
		"subnet":      catalog.SubnetName,
		"tags":        "nf-ssh",
		"status":      "RUNNING",
	})

	newStore = func() checkpoint.Store { return store }
	newControlPlane = func(*config.RunContext) cloud.ControlPlane { return fake }
	newBackupStore = func() (*s3.Client, error) { return nil, nil }
	acquireLock = func() (func() error, error) { return func() error { return nil }, nil }
	checkPrerequisites = func() *prerequisites.CheckResults { return &prerequisites.CheckResults{} }
	isInteractive = func() bool { return true }

	return store, fake
}

func testRunContext() *config.RunContext {
	return &config.RunContext{
		ProjectID:    "nf-test-1",
		Region:       "us-central1",
		Zone:         "us-central1-a",
		Organization: "acme",
		Repository:   "platform",
		SetupType:    config.SetupStandard,
	}
}

// stubConfirmer records prompts and answers them all the same way.
type stubConfirmer struct {
	answer bool
	err    error
	calls  int
	titles []string
}

func (s *stubConfirmer) Confirm(title, _ string) (bool, error) {
	s.calls++
	s.titles = append(s.titles, title)
	return s.answer, s.err
}

var _ ui.Confirmer = (*stubConfirmer)(nil)

func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}
