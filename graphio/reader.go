// SPDX-License-Identifier: MIT

// Package graphio reads weighted edge lists and renders graphs and MST
// results as CSV files or console text.
package graphio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/parprim/core"
)

// ErrBadRecord indicates a CSV line that is not "src,dest,weight" with integer fields.
var ErrBadRecord = errors.New("graphio: malformed edge record")

// ErrNilResult indicates that a nil MST result was passed to a writer.
var ErrNilResult = errors.New("graphio: result is nil")

// HeaderFirst is the first header cell recognized (and skipped) by ReadEdgeList.
const HeaderFirst = "src"

// edgeColumns is the number of fields in an edge record.
const edgeColumns = 3

// MaxNodes bounds the node count of a graph read from an edge list; a
// record naming an ID at or above it is rejected with ErrBadRecord.
const MaxNodes = 1 << 24

// ReadEdgeList parses "src,dest,weight" records. Blank lines and lines
// starting with '#' are ignored; a first record whose first cell is "src" is
// treated as a header. The node count is one past the largest ID seen.
//
// IDs at or above MaxNodes are rejected here. Negative IDs and weights are
// left to core.NewGraph.
func ReadEdgeList(r io.Reader) (int, []core.Edge, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return 0, nil, fmt.Errorf("graphio: failed to read CSV: %w", err)
	}
	if len(records) > 0 && strings.EqualFold(strings.TrimSpace(records[0][0]), HeaderFirst) {
		records = records[1:]
	}

	n := 0
	edges := make([]core.Edge, 0, len(records))
	for i, record := range records {
		e, err := parseEdgeRecord(record, i+1)
		if err != nil {
			return 0, nil, err
		}
		n = max(n, e.From+1, e.To+1)
		edges = append(edges, e)
	}

	return n, edges, nil
}

// ReadEdgeListFile opens filename and parses it with ReadEdgeList.
func ReadEdgeListFile(filename string) (int, []core.Edge, error) {
	file, err := os.Open(filename)
	if err != nil {
		return 0, nil, fmt.Errorf("graphio: failed to open file: %w", err)
	}
	defer file.Close()

	return ReadEdgeList(file)
}

// ReadGraphFile loads an edge-list file into a graph with at least minNodes
// nodes; IDs above the largest edge endpoint become isolated nodes.
func ReadGraphFile(filename string, minNodes int, opts ...core.GraphOption) (*core.Graph, error) {
	n, edges, err := ReadEdgeListFile(filename)
	if err != nil {
		return nil, err
	}

	if minNodes > MaxNodes {
		return nil, fmt.Errorf("graphio: %s: min nodes %d > %d: %w", filename, minNodes, MaxNodes, ErrBadRecord)
	}

	g, err := core.NewGraph(max(n, minNodes), edges, opts...)
	if err != nil {
		return nil, fmt.Errorf("graphio: %s: %w", filename, err)
	}

	return g, nil
}

func parseEdgeRecord(record []string, recordNum int) (core.Edge, error) {
	if len(record) != edgeColumns {
		return core.Edge{}, fmt.Errorf("record %d: expected %d columns, got %d: %w",
			recordNum, edgeColumns, len(record), ErrBadRecord)
	}

	var vals [edgeColumns]int64
	for i, field := range record {
		bitSize := 64
		if i < edgeColumns-1 {
			bitSize = strconv.IntSize
		}
		v, err := strconv.ParseInt(strings.TrimSpace(field), 10, bitSize)
		if err != nil {
			return core.Edge{}, fmt.Errorf("record %d, column %d: invalid integer: %w: %w",
				recordNum, i+1, ErrBadRecord, err)
		}
		if i < edgeColumns-1 && v >= MaxNodes {
			return core.Edge{}, fmt.Errorf("record %d, column %d: node %d >= %d: %w",
				recordNum, i+1, v, MaxNodes, ErrBadRecord)
		}
		vals[i] = v
	}

	return core.Edge{From: int(vals[0]), To: int(vals[1]), Weight: vals[2]}, nil
}
