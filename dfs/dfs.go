// SPDX-License-Identifier: MIT
package dfs

import (
	"fmt"

	"github.com/katalvlaran/trafficgraph/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  DFSOptions  // traversal options
	res   *DFSResult  // result collector
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components; otherwise, it starts only from startID.
// Neighbors are explored in edge insertion order.
// Returns DFSResult or error if aborted by context or hook.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify startID
	if !dopts.FullTraversal && !g.HasVertex(startID) {
		return nil, fmt.Errorf("dfs: start %q: %w", startID, ErrStartVertexNotFound)
	}

	// 4. Initialize result with capacity hint
	vertices := g.Vertices()
	res := &DFSResult{
		Order:    make([]string, 0, len(vertices)),
		PreOrder: make([]string, 0, len(vertices)),
		Depth:    make(map[string]int, len(vertices)),
		Parent:   make(map[string]string, len(vertices)),
		Visited:  make(map[string]bool, len(vertices)),
	}
	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for _, v := range vertices {
			if res.Visited[v] {
				continue
			}
			if err := walker.traverse(v, 0); err != nil {
				return res, err
			}
		}
	} else if err := walker.traverse(startID, 0); err != nil {
		return res, err
	}

	// 6. Expose diagnostics
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// traverse visits vertex id at given depth, recursing to neighbors.
func (w *dfsWalker) traverse(id string, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and record depth
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.PreOrder = append(w.res.PreOrder, id)

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	// 4. Explore neighbors unless the depth limit is reached
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		nbs, err := w.graph.NeighborIDs(id)
		if err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
		}
		for _, nid := range nbs {
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(id, nid) {
				w.opts.SkippedNeighbors++
				continue
			}
			if w.res.Visited[nid] {
				continue
			}
			w.res.Parent[nid] = id
			w.res.TreeEdges = append(w.res.TreeEdges, TreeEdge{From: id, To: nid})
			if err = w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	// 5. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}

	// 6. Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}
