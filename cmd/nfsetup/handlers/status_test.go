package handlers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/checkpoint"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/provisioning/catalog"
)

func TestStatus_NoPriorRun(t *testing.T) {
	wireTestFactories(t)

	output := captureOutput(func() {
		err := Status()
		require.NoError(t, err)
	})

	assert.Contains(t, output, "No setup run recorded.")
}

func TestStatus_RendersStageTable(t *testing.T) {
	store, _ := wireTestFactories(t)

	doc := checkpoint.NewDocument(*testRunContext(), catalog.StageIDs())
	doc.Set("bootstrap", checkpoint.StatusCompleted, "")
	doc.Set("federation", checkpoint.StatusFailed, "quota exceeded")
	require.NoError(t, store.Save(doc))

	output := captureOutput(func() {
		err := Status()
		require.NoError(t, err)
	})

	assert.Contains(t, output, "nf-test-1")
	assert.Contains(t, output, "Bootstrap & Networking")
	assert.Contains(t, output, "Identity Federation")
	assert.Contains(t, output, "quota exceeded")
}

func TestClear_NothingToClear(t *testing.T) {
	wireTestFactories(t)

	output := captureOutput(func() {
		err := Clear(true)
		require.NoError(t, err)
	})

	assert.Contains(t, output, "Nothing to clear.")
}

func TestClear_WithYes(t *testing.T) {
	store, _ := wireTestFactories(t)

	doc := checkpoint.NewDocument(*testRunContext(), catalog.StageIDs())
	require.NoError(t, store.Save(doc))

	output := captureOutput(func() {
		err := Clear(true)
		require.NoError(t, err)
	})

	assert.Contains(t, output, "Setup state cleared.")

	_, err := store.Load()
	assert.ErrorIs(t, err, checkpoint.ErrNoPriorRun)
}

func TestClear_Declined(t *testing.T) {
	store, _ := wireTestFactories(t)

	doc := checkpoint.NewDocument(*testRunContext(), catalog.StageIDs())
	require.NoError(t, store.Save(doc))

	stub := &stubConfirmer{answer: false}
	confirmer = stub

	err := Clear(false)
	require.NoError(t, err)
	assert.Equal(t, 1, stub.calls)

	_, err = store.Load()
	assert.NoError(t, err, "declined clear must keep the document")
}

func TestClear_NonInteractiveWithoutYes(t *testing.T) {
	store, _ := wireTestFactories(t)

	doc := checkpoint.NewDocument(*testRunContext(), catalog.StageIDs())
	require.NoError(t, store.Save(doc))

	isInteractive = func() bool { return false }

	err := Clear(false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
}

func TestClear_CorruptState(t *testing.T) {
	store, _ := wireTestFactories(t)

	doc := checkpoint.NewDocument(*testRunContext(), catalog.StageIDs())
	require.NoError(t, store.Save(doc))
	store.LoadErr = errors.New("state file is corrupt")

	output := captureOutput(func() {
		err := Clear(true)
		require.NoError(t, err)
	})

	assert.Contains(t, output, "State file is unreadable")
	assert.Contains(t, output, "Setup state cleared.")
}
