package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "tidyvue.dev/pkg/tidyvue/internal/model"
)

func TestCheckCmd_DefaultArgs(t *testing.T) {
	stub, cmd := withStubWorkflow(t, newCheckCmd())

	cmd.SetArgs([]string{"check", "--parallel", "2", "./..."})
	require.NoError(t, cmd.Execute())

	require.Len(t, stub.checkArgs, 1)
	args := stub.checkArgs[0]
	assert.Equal(t, []m.Path{m.Path("./...")}, args.Paths)
	assert.Equal(t, 2, args.Threads)
	assert.Equal(t, 0, args.ShardIndex)
	assert.Equal(t, 1, args.TotalShardCount)
	assert.Equal(t, m.Path(".tidyvue-reports"), args.Reports)
	assert.True(t, args.UseCache)
	assert.Equal(t, m.DefaultConfig(), args.Config)
}

func TestCheckCmd_WithSharding(t *testing.T) {
	stub, cmd := withStubWorkflow(t, newCheckCmd())

	cmd.SetArgs([]string{"check", "--shard", "1/3", "./..."})
	require.NoError(t, cmd.Execute())

	require.Len(t, stub.checkArgs, 1)
	assert.Equal(t, 1, stub.checkArgs[0].ShardIndex)
	assert.Equal(t, 3, stub.checkArgs[0].TotalShardCount)
}

func TestCheckCmd_MultiplePaths(t *testing.T) {
	stub, cmd := withStubWorkflow(t, newCheckCmd())

	cmd.SetArgs([]string{"check", "./src", "./pages", "./components"})
	require.NoError(t, cmd.Execute())

	require.Len(t, stub.checkArgs, 1)
	assert.Equal(t, []m.Path{
		m.Path("./src"),
		m.Path("./pages"),
		m.Path("./components"),
	}, stub.checkArgs[0].Paths)
}

func TestCheckCmd_WithExcludePatterns(t *testing.T) {
	stub, cmd := withStubWorkflow(t, newCheckCmd())

	cmd.SetArgs([]string{"check", "-x", "^generated_", "-x", "\\.min\\.html$", "./..."})
	require.NoError(t, cmd.Execute())

	require.Len(t, stub.checkArgs, 1)
	assert.Equal(t, []string{"^generated_", "\\.min\\.html$"}, stub.checkArgs[0].Exclude)
}

func TestCheckCmd_NoCacheFlag_DisablesCache(t *testing.T) {
	stub, cmd := withStubWorkflow(t, newCheckCmd())

	cmd.SetArgs([]string{"--no-cache", "check", "./..."})
	require.NoError(t, cmd.Execute())

	require.Len(t, stub.checkArgs, 1)
	assert.False(t, stub.checkArgs[0].UseCache)
}

func TestNewCheckCmd(t *testing.T) {
	cmd := newCheckCmd()

	assert.Equal(t, "check [paths...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.Equal(t, checkLongDescription, cmd.Long)

	assert.NotNil(t, cmd.Flags().Lookup("parallel"))
	assert.NotNil(t, cmd.Flags().Lookup("shard"))
}
