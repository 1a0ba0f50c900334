// SPDX-License-Identifier: MIT
package dfs

import (
	"fmt"

	"github.com/katalvlaran/trafficgraph/core"
)

// FindCycle reports whether the undirected graph g contains a cycle and
// returns the first one found as a closed walk [v0 v1 … vk v0].
// Components are scanned in vertex insertion order and neighbors in edge
// insertion order, so the result is deterministic.
//
// A nil graph is treated as cycle-free.
// Complexity: O(V + E).
func FindCycle(g *core.Graph) (bool, []string, error) {
	if g == nil {
		return false, nil, nil
	}

	verts := g.Vertices()
	state := make(map[string]int, len(verts))
	path := make([]string, 0, len(verts))

	for _, v := range verts {
		if state[v] != White {
			continue
		}
		cycle, err := visitCycle(g, v, "", state, &path)
		if err != nil {
			return false, nil, fmt.Errorf("dfs: FindCycle: %w", err)
		}
		if cycle != nil {
			return true, cycle, nil
		}
	}

	return false, nil, nil
}

// visitCycle explores id, skipping the tree edge back to parent. A Gray
// neighbor closes a cycle that is read off the current path.
func visitCycle(g *core.Graph, id, parent string, state map[string]int, path *[]string) ([]string, error) {
	state[id] = Gray
	*path = append(*path, id)

	nbs, err := g.NeighborIDs(id)
	if err != nil {
		return nil, err
	}
	for _, nbr := range nbs {
		if nbr == parent {
			continue
		}
		switch state[nbr] {
		case White:
			cycle, err := visitCycle(g, nbr, id, state, path)
			if err != nil || cycle != nil {
				return cycle, err
			}
		case Gray:
			return closeCycle(*path, nbr), nil
		}
	}

	state[id] = Black
	*path = (*path)[:len(*path)-1]

	return nil, nil
}

// closeCycle copies path from the first occurrence of start and repeats start.
func closeCycle(path []string, start string) []string {
	i := len(path) - 1
	for i >= 0 && path[i] != start {
		i--
	}
	out := make([]string, 0, len(path)-i+1)
	out = append(out, path[i:]...)

	return append(out, start)
}
