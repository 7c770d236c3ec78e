package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	cmd := Root()

	require.NotNil(t, cmd)
	assert.Equal(t, "ductl", cmd.Use)
	assert.Equal(t, "Manage OAI RAN distributed units on Kubernetes", cmd.Short)
}

func TestRoot_HasSubcommands(t *testing.T) {
	cmd := Root()

	expectedSubcommands := []string{
		"init",
		"validate",
		"render",
		"bootstrap",
		"status",
		"version",
		"completion",
	}

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}

	for _, expected := range expectedSubcommands {
		assert.True(t, subcommands[expected], "Expected subcommand %s not found", expected)
	}
}

func TestRender_RequiredFlags(t *testing.T) {
	cmd := Render()

	// Without --cu-address and --plmn the command must not reach the handler.
	err := cmd.ValidateRequiredFlags()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cu-address")
	assert.Contains(t, err.Error(), "plmn")
}

func TestStatus_RequiresName(t *testing.T) {
	cmd := Status()

	require.NotNil(t, cmd.Args)
	assert.Error(t, cmd.Args(cmd, nil))
	assert.NoError(t, cmd.Args(cmd, []string{"du1"}))
}
