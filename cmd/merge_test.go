package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "tidyvue.dev/pkg/tidyvue/internal/model"
)

func TestMergeCmd_UsesRootOutputFlagByDefault(t *testing.T) {
	stub, cmd := withStubWorkflow(t, newMergeCmd())

	cmd.SetArgs([]string{"merge"})
	require.NoError(t, cmd.Execute())

	require.Len(t, stub.mergeArgs, 1)
	assert.Equal(t, m.Path(".tidyvue-reports"), stub.mergeArgs[0].Reports)
}

func TestMergeCmd_RootOutputFlagIsPassedThrough(t *testing.T) {
	stub, cmd := withStubWorkflow(t, newMergeCmd())

	cmd.SetArgs([]string{"--output", "./reports-dir", "merge"})
	require.NoError(t, cmd.Execute())

	require.Len(t, stub.mergeArgs, 1)
	assert.Equal(t, m.Path("./reports-dir"), stub.mergeArgs[0].Reports)
}
