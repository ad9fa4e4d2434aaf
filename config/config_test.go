package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parprim/config"
	"github.com/katalvlaran/parprim/graphio"
	"github.com/katalvlaran/parprim/prim_kruskal"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parprim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, 0, cfg.StartNode)
	assert.Equal(t, config.DefaultMaxWeight, cfg.MaxWeight)
	assert.Equal(t, prim_kruskal.MethodParallelPrim, cfg.Method)
	assert.Equal(t, config.SourceReference, cfg.Graph.Source)
	assert.Zero(t, cfg.Graph.MinNodes, "csv input is not padded unless asked")
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
start_node: 2
max_weight: 100
method: kruskal
max_workers: 4
deadline: 1500ms
graph:
  source: random
  nodes: 50
  extra_edges: 20
  seed: 9
  min_weight: 3
output:
  path: out/mst.csv
log:
  level: debug
  format: json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.StartNode)
	assert.Equal(t, int64(100), cfg.MaxWeight)
	assert.Equal(t, prim_kruskal.MethodKruskal, cfg.Method)
	assert.Equal(t, 4, cfg.MaxWorkers)
	assert.Equal(t, 1500*time.Millisecond, cfg.Deadline)
	assert.Equal(t, config.Graph{Source: "random", Nodes: 50, ExtraEdges: 20, Seed: 9, MinWeight: 3}, cfg.Graph)
	assert.Equal(t, "out/mst.csv", cfg.Output.Path)
	assert.Equal(t, config.Log{Level: "debug", Format: "json"}, cfg.Log)
}

// TestLoad_PartialFileKeepsDefaults checks that omitted keys keep defaults.
func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(writeFile(t, "start_node: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.StartNode)
	assert.Equal(t, config.DefaultMaxWeight, cfg.MaxWeight)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "start_node: 3\nmethod: prim\n")
	t.Setenv("PARPRIM_START_NODE", "4")
	t.Setenv("PARPRIM_MAX_WEIGHT", "50")
	t.Setenv("PARPRIM_DEADLINE", "2s")
	t.Setenv("PARPRIM_GRAPH_SOURCE", "csv")
	t.Setenv("PARPRIM_GRAPH_PATH", "edges.csv")
	t.Setenv("PARPRIM_GRAPH_MIN_NODES", "8")
	t.Setenv("PARPRIM_MAX_WORKERS", "not-a-number")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.StartNode)
	assert.Equal(t, int64(50), cfg.MaxWeight)
	assert.Equal(t, 2*time.Second, cfg.Deadline)
	assert.Equal(t, prim_kruskal.MethodPrim, cfg.Method, "unset env keeps file value")
	assert.Equal(t, config.SourceCSV, cfg.Graph.Source)
	assert.Equal(t, "edges.csv", cfg.Graph.Path)
	assert.Equal(t, 8, cfg.Graph.MinNodes)
	assert.Equal(t, 0, cfg.MaxWorkers, "unparsable env ignored")
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "start_node: [1, 2]\n"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "method: boruvka\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.Config)
		field  string
	}{
		{"negative start", func(c *config.Config) { c.StartNode = -1 }, "start_node"},
		{"negative max weight", func(c *config.Config) { c.MaxWeight = -1 }, "max_weight"},
		{"unknown method", func(c *config.Config) { c.Method = "x" }, "method"},
		{"negative workers", func(c *config.Config) { c.MaxWorkers = -2 }, "max_workers"},
		{"negative deadline", func(c *config.Config) { c.Deadline = -time.Second }, "deadline"},
		{"csv without path", func(c *config.Config) { c.Graph.Source = config.SourceCSV }, "graph.path"},
		{"negative csv min nodes", func(c *config.Config) {
			c.Graph.Source, c.Graph.Path, c.Graph.MinNodes = config.SourceCSV, "g.csv", -1
		}, "graph.min_nodes"},
		{"huge csv min nodes", func(c *config.Config) {
			c.Graph.Source, c.Graph.Path, c.Graph.MinNodes = config.SourceCSV, "g.csv", graphio.MaxNodes+1
		}, "graph.min_nodes"},
		{"random without nodes", func(c *config.Config) { c.Graph.Source = config.SourceRandom; c.Graph.Nodes = 0 }, "graph.nodes"},
		{"min above max", func(c *config.Config) { c.Graph.Source = config.SourceRandom; c.Graph.MinWeight = 11 }, "graph.min_weight"},
		{"unknown source", func(c *config.Config) { c.Graph.Source = "db" }, "graph.source"},
		{"unknown level", func(c *config.Config) { c.Log.Level = "trace" }, "log.level"},
		{"unknown format", func(c *config.Config) { c.Log.Format = "xml" }, "log.format"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := config.Default()
			tc.mutate(c)
			err := c.Validate()
			require.ErrorIs(t, err, config.ErrInvalid)
			assert.Contains(t, err.Error(), tc.field)
		})
	}

	c := config.Default()
	c.StartNode = -1
	c.Method = "x"
	err := c.Validate()
	assert.Contains(t, err.Error(), "start_node")
	assert.Contains(t, err.Error(), "method", "all violations reported")

	assert.NoError(t, config.Default().Validate())
}
