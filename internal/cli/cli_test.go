package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--static", "--delay", "1ms"}, args...))
	err := cmd.Execute()

	return out.String(), err
}

func smallMaze(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 7\nmaze:\n  rows: 3\n  cols: 4\n"), 0o600))

	return path
}

func TestSortCommand(t *testing.T) {
	out, err := run(t, "sort", "--kind", "insertion", "3", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "insertion sort")
}

func TestSortCommand_RandomValues(t *testing.T) {
	_, err := run(t, "sort", "-n", "5")
	require.NoError(t, err)
}

func TestSortCommand_Errors(t *testing.T) {
	_, err := run(t, "sort", "--kind", "bogo")
	assert.Error(t, err)

	_, err = run(t, "sort", "1", "x")
	assert.Error(t, err)
}

func TestPathCommand(t *testing.T) {
	cfg := smallMaze(t)
	for _, algo := range []string{"bfs", "dfs", "dijkstra", "astar"} {
		t.Run(algo, func(t *testing.T) {
			out, err := run(t, "--config", cfg, "path", "--algo", algo)
			require.NoError(t, err)
			assert.Contains(t, out, algo)
		})
	}
}

func TestPathCommand_BellmanFord(t *testing.T) {
	out, err := run(t, "path", "--algo", "bellmanford")
	require.NoError(t, err)
	assert.Contains(t, out, "S→A(4)")
}

func TestPathCommand_UnknownAlgorithm(t *testing.T) {
	_, err := run(t, "--config", smallMaze(t), "path", "--algo", "greedy")
	assert.Error(t, err)
}

func TestMSTCommand(t *testing.T) {
	for _, m := range []string{"kruskal", "prim"} {
		out, err := run(t, "mst", "--method", m, "-n", "6")
		require.NoError(t, err)
		assert.Contains(t, out, "tree weight")
	}
}

func TestMazeCommand(t *testing.T) {
	out, err := run(t, "maze", "--rows", "2", "--cols", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "maze")
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "list", "--find", "b", "--remove", "0", "a", "b", "c")
	require.NoError(t, err)
	assert.Contains(t, out, "after removing index 0")

	_, err = run(t, "list", "--op", "rotate", "a")
	assert.Error(t, err)

	_, err = run(t, "list")
	assert.Error(t, err)
}

func TestBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sort: bogo\n"), 0o600))

	_, err := run(t, "--config", path, "sort", "1")
	assert.Error(t, err)
}
