// SPDX-License-Identifier: MIT

// Package config loads the parprim run configuration: defaults, then an
// optional YAML file, then PARPRIM_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/parprim/graphio"
	"github.com/katalvlaran/parprim/prim_kruskal"
)

// ErrInvalid indicates a configuration value outside its allowed domain.
var ErrInvalid = errors.New("config: invalid value")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PARPRIM_"

// Graph sources.
const (
	SourceReference = "reference"
	SourceCSV       = "csv"
	SourceRandom    = "random"
)

// DefaultMaxWeight is the largest accepted edge weight unless overridden.
const DefaultMaxWeight int64 = 10

// Config is one parprim run: algorithm knobs plus the graph, output and log sections.
type Config struct {
	StartNode  int           `yaml:"start_node"`
	MaxWeight  int64         `yaml:"max_weight"`
	Method     string        `yaml:"method"`
	MaxWorkers int           `yaml:"max_workers"`
	Deadline   time.Duration `yaml:"deadline"`
	Graph      Graph         `yaml:"graph"`
	Output     Output        `yaml:"output"`
	Log        Log           `yaml:"log"`
}

// Graph selects where the input graph comes from.
type Graph struct {
	// Source is one of reference, csv, random.
	Source string `yaml:"source"`
	// Path of the edge list for the csv source.
	Path string `yaml:"path,omitempty"`
	// Nodes is the node count of a random graph.
	Nodes int `yaml:"nodes"`
	// MinNodes pads a csv graph to at least this many nodes (extra IDs are
	// isolated). Zero keeps the count implied by the edge list.
	MinNodes   int   `yaml:"min_nodes"`
	ExtraEdges int   `yaml:"extra_edges"`
	Seed       int64 `yaml:"seed"`
	MinWeight  int64 `yaml:"min_weight"`
}

// Output controls files written after a successful run.
type Output struct {
	// Path of the MST CSV; empty disables the file.
	Path string `yaml:"path,omitempty"`
}

// Log selects the slog handler: level is debug|info|warn|error, format is text|json.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration of the demonstration run.
func Default() *Config {
	return &Config{
		StartNode: 0,
		MaxWeight: DefaultMaxWeight,
		Method:    prim_kruskal.MethodParallelPrim,
		Graph: Graph{
			Source:     SourceReference,
			Nodes:      16,
			ExtraEdges: 16,
			Seed:       1,
			MinWeight:  1,
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

// Load builds the configuration. An empty configPath skips the file step.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("config: failed to read config file %s: %w", configPath, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: failed to parse config file %s: %w", configPath, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overrides fields from PARPRIM_* variables. Unparsable values are ignored.
func (c *Config) applyEnv() {
	c.StartNode = getEnvInt("START_NODE", c.StartNode)
	c.MaxWeight = getEnvInt64("MAX_WEIGHT", c.MaxWeight)
	c.Method = getEnv("METHOD", c.Method)
	c.MaxWorkers = getEnvInt("MAX_WORKERS", c.MaxWorkers)
	c.Deadline = getEnvDuration("DEADLINE", c.Deadline)

	c.Graph.Source = getEnv("GRAPH_SOURCE", c.Graph.Source)
	c.Graph.Path = getEnv("GRAPH_PATH", c.Graph.Path)
	c.Graph.Nodes = getEnvInt("GRAPH_NODES", c.Graph.Nodes)
	c.Graph.MinNodes = getEnvInt("GRAPH_MIN_NODES", c.Graph.MinNodes)
	c.Graph.ExtraEdges = getEnvInt("GRAPH_EXTRA_EDGES", c.Graph.ExtraEdges)
	c.Graph.Seed = getEnvInt64("GRAPH_SEED", c.Graph.Seed)
	c.Graph.MinWeight = getEnvInt64("GRAPH_MIN_WEIGHT", c.Graph.MinWeight)

	c.Output.Path = getEnv("OUTPUT_PATH", c.Output.Path)

	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)
}

// Validate checks every field; all violations are joined into one error.
func (c *Config) Validate() error {
	var errs []error
	bad := func(field string, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s: %s", ErrInvalid, field, fmt.Sprintf(format, args...)))
	}

	if c.StartNode < 0 {
		bad("start_node", "must be ≥ 0, got %d", c.StartNode)
	}
	if c.MaxWeight < 0 {
		bad("max_weight", "must be ≥ 0, got %d", c.MaxWeight)
	}
	switch c.Method {
	case prim_kruskal.MethodParallelPrim, prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal:
	default:
		bad("method", "unknown %q", c.Method)
	}
	if c.MaxWorkers < 0 {
		bad("max_workers", "must be ≥ 0, got %d", c.MaxWorkers)
	}
	if c.Deadline < 0 {
		bad("deadline", "must be ≥ 0, got %s", c.Deadline)
	}

	switch c.Graph.Source {
	case SourceReference:
	case SourceCSV:
		if c.Graph.Path == "" {
			bad("graph.path", "required for source %q", SourceCSV)
		}
		if c.Graph.MinNodes < 0 || c.Graph.MinNodes > graphio.MaxNodes {
			bad("graph.min_nodes", "must be in [0,%d], got %d", graphio.MaxNodes, c.Graph.MinNodes)
		}
	case SourceRandom:
		if c.Graph.Nodes < 1 {
			bad("graph.nodes", "must be ≥ 1 for source %q, got %d", SourceRandom, c.Graph.Nodes)
		}
		if c.Graph.ExtraEdges < 0 {
			bad("graph.extra_edges", "must be ≥ 0, got %d", c.Graph.ExtraEdges)
		}
		if c.Graph.MinWeight < 0 || c.Graph.MinWeight > c.MaxWeight {
			bad("graph.min_weight", "must be in [0,%d], got %d", c.MaxWeight, c.Graph.MinWeight)
		}
	default:
		bad("graph.source", "unknown %q", c.Graph.Source)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		bad("log.level", "unknown %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		bad("log.format", "unknown %q", c.Log.Format)
	}

	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
