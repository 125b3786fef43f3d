// SPDX-License-Identifier: MIT

package pagerank

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
)

// Graph is an ordered adjacency list: node id → ordered out-link ids.
//
// The order in which nodes are added is the canonical node order; it fixes
// the row/column indices of the transition matrix and the positions of the
// rank vector. Out-link lists are copied on insertion, so callers cannot
// mutate a graph through slices they passed in.
//
// Every link target must itself be a node (closed universe). AddNode accepts
// forward references, since targets may be added later; Validate and
// BuildStochastic enforce the invariant once the graph is complete.
type Graph struct {
	ids   []string       // canonical order
	index map[string]int // id → position in ids
	links [][]string     // links[i] are the out-links of ids[i]
}

// NewGraph returns an empty graph ready for AddNode.
func NewGraph() *Graph {
	return &Graph{index: make(map[string]int)}
}

// FromMap builds a Graph from a plain Go map. Map iteration order is
// unspecified, so nodes are ordered by ascending id to keep the canonical
// order deterministic.
//
// Errors:
//   - ErrEmptyNodeID if the map contains the "" key.
//   - ErrUnknownNode (possibly several, aggregated) if a link targets a missing key.
func FromMap(adj map[string][]string) (*Graph, error) {
	ids := make([]string, 0, len(adj))
	for id := range adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	g := NewGraph()
	for _, id := range ids {
		if err := g.AddNode(id, adj[id]...); err != nil {
			return nil, err
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// AddNode appends id with the given out-links to the canonical order.
// The zero Graph is ready to use.
//
// Errors:
//   - ErrEmptyNodeID for id == "".
//   - ErrDuplicateNode if id was already added.
func (g *Graph) AddNode(id string, links ...string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if g.index == nil {
		g.index = make(map[string]int)
	}
	if _, ok := g.index[id]; ok {
		return fmt.Errorf("AddNode(%q): %w", id, ErrDuplicateNode)
	}
	cp := make([]string, len(links))
	copy(cp, links)

	g.index[id] = len(g.ids)
	g.ids = append(g.ids, id)
	g.links = append(g.links, cp)

	return nil
}

// Len returns the node count N.
func (g *Graph) Len() int { return len(g.ids) }

// IDs returns a copy of the node ids in canonical order.
func (g *Graph) IDs() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// Index returns the canonical position of id.
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]

	return i, ok
}

// Links returns a copy of the out-links of id.
func (g *Graph) Links(id string) ([]string, bool) {
	i, ok := g.index[id]
	if !ok {
		return nil, false
	}
	out := make([]string, len(g.links[i]))
	copy(out, g.links[i])

	return out, true
}

// OutDegree returns the length of the out-link list of id.
func (g *Graph) OutDegree(id string) (int, bool) {
	i, ok := g.index[id]
	if !ok {
		return 0, false
	}

	return len(g.links[i]), true
}

// Dangling returns the ids with zero out-links, in canonical order.
// Their transition-matrix columns are all zero.
func (g *Graph) Dangling() []string {
	var out []string
	for i, l := range g.links {
		if len(l) == 0 {
			out = append(out, g.ids[i])
		}
	}

	return out
}

// Validate checks the closed-universe invariant. Every dangling reference is
// reported; each entry wraps ErrUnknownNode.
//
// Complexity: O(N + E).
func (g *Graph) Validate() error {
	if g == nil {
		return ErrGraphNil
	}
	var merr *multierror.Error
	for i, l := range g.links {
		for _, target := range l {
			if _, ok := g.index[target]; !ok {
				merr = multierror.Append(merr,
					fmt.Errorf("%q -> %q: %w", g.ids[i], target, ErrUnknownNode))
			}
		}
	}

	return merr.ErrorOrNil()
}

// Clone returns a deep copy; the copy shares no slices with g.
func (g *Graph) Clone() *Graph {
	cp := &Graph{
		ids:   make([]string, len(g.ids)),
		index: make(map[string]int, len(g.index)),
		links: make([][]string, len(g.links)),
	}
	copy(cp.ids, g.ids)
	for id, i := range g.index {
		cp.index[id] = i
	}
	for i, l := range g.links {
		cp.links[i] = append([]string(nil), l...)
	}

	return cp
}
