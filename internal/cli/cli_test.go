package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphgen/graphgen"
	"github.com/katalvlaran/graphgen/partition"
)

// execute runs a fresh command tree and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand(&out, &errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func TestPartitions_List(t *testing.T) {
	out, _, err := execute(t, "partitions", "--items", "10", "--parts", "3", "--min", "2")
	require.NoError(t, err)
	assert.Equal(t, "(3, 3, 4)\n(2, 4, 4)\n(2, 3, 5)\n(2, 2, 6)\n", out)
}

func TestPartitions_MaxAndCount(t *testing.T) {
	out, _, err := execute(t, "partitions", "--items", "10", "--parts", "3", "--min", "2", "--max", "4")
	require.NoError(t, err)
	assert.Equal(t, "(3, 3, 4)\n(2, 4, 4)\n", out)

	out, _, err = execute(t, "partitions", "--items", "10", "--parts", "3", "--min", "2", "--count")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)
}

func TestPartitions_Errors(t *testing.T) {
	_, _, err := execute(t, "partitions", "--items", "3", "--parts", "5")
	require.ErrorIs(t, err, partition.ErrTooFewItems)
	assert.ErrorIs(t, err, partition.ErrInvalidArgument)

	_, _, err = execute(t, "partitions", "--parts", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "items")
}

func TestSample_ReplayWithEdges(t *testing.T) {
	out, _, err := execute(t, "sample",
		"--min-nodes", "6", "--max-nodes", "9",
		"--min-components", "2", "--min-component-size", "3",
		"--builder", "path", "--replay", "0", "--edges")
	require.NoError(t, err)
	assert.Equal(t, "sample 0: nodes=6 edges=4 components=[3 3] choices=0,0,0\n"+
		"  0 - 1\n  1 - 2\n  3 - 4\n  4 - 5\n", out)
}

func TestSample_FlagsOverrideProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min_nodes: 8\nmax_nodes: 8\nmax_component_size: 2\n"), 0o600))

	out, _, err := execute(t, "sample", "--config", path,
		"--min-nodes", "4", "--max-nodes", "4",
		"--builder", "complete", "--replay", "0")
	require.NoError(t, err)
	assert.Equal(t, "sample 0: nodes=4 edges=2 components=[2 2] choices=0,0,0\n", out)
}

func TestSample_EmptyGraph(t *testing.T) {
	out, _, err := execute(t, "sample", "--min-nodes", "0", "--max-nodes", "0")
	require.NoError(t, err)
	assert.Equal(t, "sample 0: nodes=0 edges=0 components=[] choices=0\n", out)
}

func TestSample_PrintedChoicesReplay(t *testing.T) {
	args := []string{"sample", "--min-nodes", "5", "--max-component-size", "3"}
	out, _, err := execute(t, append(args, "--count", "3", "--seed", "42", "--edges")...)
	require.NoError(t, err)

	var samples []string
	for _, block := range strings.Split(out, "sample ")[1:] {
		samples = append(samples, "sample "+block)
	}
	require.Len(t, samples, 3)

	for i, s := range samples {
		header := strings.SplitN(s, "\n", 2)[0]
		choices := header[strings.Index(header, "choices=")+len("choices="):]
		replayed, _, err := execute(t, append(args, "--replay", choices, "--edges")...)
		require.NoError(t, err)
		assert.Equal(t, strings.Replace(s, "sample "+string(rune('0'+i)), "sample 0", 1), replayed,
			"sample %d must replay from its printed choices", i)
	}
}

func TestSample_Metrics(t *testing.T) {
	out, _, err := execute(t, "sample", "--min-nodes", "6", "--count", "5", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "graphgen_partition_cache_misses_total")
	assert.Contains(t, out, "graphgen_partition_cache_hits_total")
	assert.Contains(t, out, "graphgen_partition_cache_entries")
}

func TestSample_Errors(t *testing.T) {
	_, _, err := execute(t, "sample", "--min-nodes", "-1")
	require.ErrorIs(t, err, graphgen.ErrInvalidArgument)

	_, _, err = execute(t, "sample", "--builder", "grid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown --builder "grid"`)

	_, _, err = execute(t, "sample", "--count", "0")
	require.Error(t, err)

	_, _, err = execute(t, "sample", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestVerboseLogsToStderr(t *testing.T) {
	out, errOut, err := execute(t, "-v", "sample", "--min-nodes", "3", "--max-nodes", "3")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "sample 0: nodes=3"))
	assert.Contains(t, errOut, "graph draw")

	_, errOut, err = execute(t, "sample", "--min-nodes", "3", "--max-nodes", "3")
	require.NoError(t, err)
	assert.Empty(t, errOut, "debug records are dropped without --verbose")
}

func TestLoggerFromContext_Default(t *testing.T) {
	assert.NotNil(t, loggerFromContext(context.Background()))
}
