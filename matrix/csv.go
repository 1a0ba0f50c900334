// SPDX-License-Identifier: MIT
package matrix

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/trafficgraph/core"
)

// WriteCSV renders g in the given form.
//
//	adjacency_matrix: header ",A,B,…", then one labeled row per vertex
//	adjacency_list:   "Node,Neighbors" with neighbors as "B(1.2), C(3)"
//	edge_list:        "Node1,Node2,Weight"
//
// Vertices are labeled by name, falling back to the ID when no name is set.
func WriteCSV(w io.Writer, g *core.Graph, form Form, opts ...Option) error {
	if g == nil {
		return ErrNilGraph
	}
	var records [][]string
	switch form {
	case FormAdjacencyMatrix:
		am, err := NewAdjacencyMatrix(g, opts...)
		if err != nil {
			return err
		}
		records = matrixRecords(am)
	case FormAdjacencyList:
		rows, err := AdjacencyList(g)
		if err != nil {
			return err
		}
		records = listRecords(rows)
	case FormEdgeList:
		rows, err := EdgeList(g)
		if err != nil {
			return err
		}
		records = edgeRecords(rows)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownForm, form)
	}

	cw := csv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("matrix: write csv: %w", err)
	}

	return nil
}

func matrixRecords(am *AdjacencyMatrix) [][]string {
	header := make([]string, 0, am.Size()+1)
	header = append(header, "")
	for _, l := range am.Labels {
		header = append(header, l.display())
	}
	out := [][]string{header}
	for i, r := range am.Rows() {
		rec := make([]string, 0, len(r)+1)
		rec = append(rec, am.Labels[i].display())
		for _, v := range r {
			rec = append(rec, formatWeight(v))
		}
		out = append(out, rec)
	}

	return out
}

func listRecords(rows []AdjacencyRow) [][]string {
	out := [][]string{{"Node", "Neighbors"}}
	for _, r := range rows {
		parts := make([]string, len(r.Neighbors))
		for i, nb := range r.Neighbors {
			parts[i] = Label{ID: nb.ID, Name: nb.Name}.display() + "(" + formatWeight(nb.Weight) + ")"
		}
		out = append(out, []string{r.display(), strings.Join(parts, ", ")})
	}

	return out
}

func edgeRecords(rows []EdgeRow) [][]string {
	out := [][]string{{"Node1", "Node2", "Weight"}}
	for _, r := range rows {
		out = append(out, []string{r.From.display(), r.To.display(), formatWeight(r.Weight)})
	}

	return out
}

func (l Label) display() string {
	if l.Name != "" {
		return l.Name
	}

	return l.ID
}

func formatWeight(w float64) string { return strconv.FormatFloat(w, 'f', -1, 64) }
