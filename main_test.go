package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Flags(t *testing.T) {
	cmd := newRootCommand()

	phase, err := cmd.Flags().GetString("phase")
	require.NoError(t, err)
	assert.Equal(t, "all", phase)

	limit, err := cmd.Flags().GetInt("limit")
	require.NoError(t, err)
	assert.Equal(t, 300, limit)

	for key, name := range flagBindings {
		assert.NotNil(t, cmd.Flags().Lookup(name), key)
	}
}

func TestRootCommand_RejectsUnknownPhase(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--phase", "deploy"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown phase "deploy"`)
}
