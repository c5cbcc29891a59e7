// Package taskgraph implements the directed graph over task names: nodes,
// dependency edges, and the two traversal orders the engine drives
// execution from.
package taskgraph

import (
	"strings"

	"github.com/alexisbeaulieu97/forge/pkg/builderrors"
)

// node is a single vertex. predecessors holds the nodes that must run
// before this one (edges point start -> end, "end depends on start"), in
// the order their edges were inserted.
type node struct {
	name         string
	predecessors []*node
}

// Graph is a directed graph over case-insensitively unique task names.
// The zero value is not usable; construct with New.
type Graph struct {
	order []*node
	byKey map[string]*node
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{byKey: make(map[string]*node)}
}

func canonical(name string) string {
	return strings.ToLower(name)
}

// Add appends a node under name. Fails with a DuplicateNode
// builderrors.StructuralError if the name (case-insensitively) already
// exists.
func (g *Graph) Add(name string) error {
	key := canonical(name)
	if _, exists := g.byKey[key]; exists {
		return builderrors.NewDuplicateNode(name)
	}
	n := &node{name: name}
	g.byKey[key] = n
	g.order = append(g.order, n)
	return nil
}

// Exists reports case-insensitive membership.
func (g *Graph) Exists(name string) bool {
	_, ok := g.byKey[canonical(name)]
	return ok
}

func (g *Graph) ensure(name string) *node {
	key := canonical(name)
	if n, ok := g.byKey[key]; ok {
		return n
	}
	n := &node{name: name}
	g.byKey[key] = n
	g.order = append(g.order, n)
	return n
}

// Connect inserts an edge start -> end, meaning end depends on start (start
// must run first). Any node not yet present is added. Fails with
// ReflexiveEdge if start and end are the same name, or InverseEdge if the
// opposite edge already exists. A duplicate of an existing edge is a
// silent no-op.
func (g *Graph) Connect(start, end string) error {
	if canonical(start) == canonical(end) {
		return builderrors.NewReflexiveEdge(start)
	}

	endNode := g.ensure(end)
	startNode := g.ensure(start)

	for _, pred := range endNode.predecessors {
		if pred == startNode {
			return nil // duplicate edge, idempotent
		}
	}
	for _, pred := range startNode.predecessors {
		if pred == endNode {
			return builderrors.NewInverseEdge(start, end)
		}
	}

	endNode.predecessors = append(endNode.predecessors, startNode)
	return nil
}

// traverseState tracks DFS progress for cycle detection: onPath marks
// nodes currently on the recursion stack, emitted marks nodes already
// appended to the result.
type traverseState struct {
	onPath   map[*node]bool
	emitted  map[*node]bool
	result   []string
}

// Traverse returns a depth-first post-order traversal rooted at target:
// every transitive prerequisite of target, each exactly once, with target
// last. Fails with CyclicGraph if a back-edge is encountered.
func (g *Graph) Traverse(target string) ([]string, error) {
	root, ok := g.byKey[canonical(target)]
	if !ok {
		return nil, builderrors.NewUnknownTarget(target)
	}

	st := &traverseState{
		onPath:  make(map[*node]bool),
		emitted: make(map[*node]bool),
	}
	if err := st.visit(root); err != nil {
		return nil, err
	}
	return st.result, nil
}

func (st *traverseState) visit(n *node) error {
	if st.onPath[n] {
		return builderrors.NewCyclicGraph(n.name)
	}
	if st.emitted[n] {
		return nil
	}

	st.onPath[n] = true
	for _, pred := range n.predecessors {
		if err := st.visit(pred); err != nil {
			return err
		}
	}
	st.onPath[n] = false

	st.emitted[n] = true
	st.result = append(st.result, n.name)
	return nil
}

// Group is a contiguous slice of the traversal order whose members are
// mutually independent and may therefore run concurrently.
type Group []string

// TraverseAndGroup produces the flattened traversal order for target,
// partitioned into groups of mutually independent tasks: walking the
// flat order left to right, a group accumulates nodes until one is
// encountered that transitively depends (via predecessors, recursively)
// on a node already in the running group; that dependent starts the next
// group. The final node always forms a trailing singleton group.
func (g *Graph) TraverseAndGroup(target string) ([]Group, error) {
	flat, err := g.Traverse(target)
	if err != nil {
		return nil, err
	}
	if len(flat) == 0 {
		return nil, nil
	}

	var groups []Group
	current := Group{flat[0]}
	currentSet := map[string]bool{canonical(flat[0]): true}

	for _, name := range flat[1:] {
		if g.dependsOnAny(name, currentSet) {
			groups = append(groups, current)
			current = Group{name}
			currentSet = map[string]bool{canonical(name): true}
			continue
		}
		current = append(current, name)
		currentSet[canonical(name)] = true
	}
	groups = append(groups, current)

	return groups, nil
}

// dependsOnAny reports whether name transitively depends on any node whose
// canonical name is in set, by walking predecessors.
func (g *Graph) dependsOnAny(name string, set map[string]bool) bool {
	n, ok := g.byKey[canonical(name)]
	if !ok {
		return false
	}
	visited := make(map[*node]bool)
	var walk func(*node) bool
	walk = func(cur *node) bool {
		if visited[cur] {
			return false
		}
		visited[cur] = true
		for _, pred := range cur.predecessors {
			if set[canonical(pred.name)] {
				return true
			}
			if walk(pred) {
				return true
			}
		}
		return false
	}
	return walk(n)
}
