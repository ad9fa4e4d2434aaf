// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/parprim/core"
	"github.com/katalvlaran/parprim/prim_kruskal"
)

// EdgeHeaders is the header row written by the CSV writers.
var EdgeHeaders = []string{"src", "dest", "weight"}

// WriteCSV writes headers and rows to filePath, creating parent directories.
func WriteCSV(filePath string, headers []string, data [][]string) (err error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("graphio: failed to create directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("graphio: failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("graphio: failed to close file: %w", cerr)
		}
	}()

	writer := csv.NewWriter(file)
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("graphio: failed to write header: %w", err)
	}
	for i, row := range data {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("graphio: failed to write row %d: %w", i+1, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("graphio: failed to flush: %w", err)
	}

	return nil
}

// WriteEdgesCSV writes edges as "src,dest,weight" rows in the given order.
// The output is readable by ReadEdgeList.
func WriteEdgesCSV(filePath string, edges []core.Edge) error {
	rows := make([][]string, len(edges))
	for i, e := range edges {
		rows[i] = []string{
			strconv.Itoa(e.From),
			strconv.Itoa(e.To),
			strconv.FormatInt(e.Weight, 10),
		}
	}

	return WriteCSV(filePath, EdgeHeaders, rows)
}

// WriteMSTCSV writes the MST edges in selection order.
func WriteMSTCSV(filePath string, res *prim_kruskal.Result) error {
	if res == nil {
		return ErrNilResult
	}
	return WriteEdgesCSV(filePath, res.Edges)
}

// WriteGraph prints the adjacency of every node, one line per node:
//
//	Graph:
//	Node 0: -> 1(w=5) -> 2(w=9)
//	...
//
// followed by an empty line.
func WriteGraph(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Graph:")
	for i := 0; i < g.NodeCount(); i++ {
		fmt.Fprintf(bw, "Node %d:", i)
		for arc := range g.Neighbors(i) {
			fmt.Fprintf(bw, " -> %d(w=%d)", arc.To, arc.Weight)
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw)

	return bw.Flush()
}

// WriteSelected prints one "Edge selected" progress line.
func WriteSelected(w io.Writer, e core.Edge) error {
	_, err := fmt.Fprintf(w, "Edge selected: %d --(%d)--> %d\n", e.From, e.Weight, e.To)
	return err
}

// WriteReport prints the MST summary:
//
//	Minimum Spanning Tree constructed. Total weight: 24
//	Edges in MST:
//	0 --(5)--> 1
//	...
func WriteReport(w io.Writer, res *prim_kruskal.Result) error {
	if res == nil {
		return ErrNilResult
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "\nMinimum Spanning Tree constructed. Total weight: %d\n", res.TotalWeight)
	fmt.Fprintln(bw, "Edges in MST:")
	for _, e := range res.Edges {
		fmt.Fprintf(bw, "%d --(%d)--> %d\n", e.From, e.Weight, e.To)
	}

	return bw.Flush()
}

// WritePartialReport prints the tree built before a run stopped early:
//
//	Partial tree: 3 of 4 nodes reached. Total weight: 5
//	Edges in tree:
//	0 --(2)--> 1
//	...
func WritePartialReport(w io.Writer, res *prim_kruskal.Result, nodes int) error {
	if res == nil {
		return ErrNilResult
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "\nPartial tree: %d of %d nodes reached. Total weight: %d\n", res.Reached, nodes, res.TotalWeight)
	fmt.Fprintln(bw, "Edges in tree:")
	for _, e := range res.Edges {
		fmt.Fprintf(bw, "%d --(%d)--> %d\n", e.From, e.Weight, e.To)
	}

	return bw.Flush()
}
