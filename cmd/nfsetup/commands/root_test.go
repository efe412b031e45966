package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	cmd := Root()

	require.NotNil(t, cmd)
	assert.Equal(t, "nfsetup", cmd.Use)
	assert.Equal(t, "Provision the NexusForge platform environment", cmd.Short)
	assert.NotNil(t, cmd.RunE, "root command should open the menu")
}

func TestRoot_Subcommands(t *testing.T) {
	cmd := Root()

	expected := []string{"setup", "resume", "rerun", "status", "clear", "version", "completion"}
	for _, name := range expected {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "subcommand %s should be registered", name)
	}
}
