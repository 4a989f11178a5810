package netgraph

import (
	"errors"
	"fmt"
	"sort"
)

// ClassName is the nominal class tag carried by graph values. Validation
// keys its specialized graph comparison on this tag.
const ClassName = "network"

// VersionAttr is the reserved graph attribute holding the format version.
const VersionAttr = "version"

var (
	// ErrDuplicateVertex is returned when a vertex name is added twice.
	ErrDuplicateVertex = errors.New("netgraph: duplicate vertex")

	// ErrUnknownVertex is returned when an edge references a vertex that
	// has not been added to the graph.
	ErrUnknownVertex = errors.New("netgraph: unknown vertex")
)

// Edge is a single connection between two named vertices. For undirected
// graphs the From/To orientation is storage order only.
type Edge struct {
	From string
	To   string
}

// Graph is a network structure with named vertices, edges between them, and
// a set of named graph-level attributes. One attribute, "version", is
// treated specially: it tags the structural revision of the graph and is
// compared during prototype validation.
//
// Vertex and attribute iteration order is deterministic: vertices keep
// insertion order, attribute names are reported sorted.
type Graph struct {
	directed bool
	vertices []string
	index    map[string]int
	edges    []Edge
	attrs    map[string]any
}

// Option configures graph construction.
type Option func(*Graph)

// Directed marks the graph as directed. The default is undirected.
func Directed() Option {
	return func(g *Graph) { g.directed = true }
}

// WithVersion sets the "version" graph attribute at construction time.
func WithVersion(v string) Option {
	return func(g *Graph) { g.attrs[VersionAttr] = v }
}

// New creates an empty graph.
func New(opts ...Option) *Graph {
	g := &Graph{
		index: make(map[string]int),
		attrs: make(map[string]any),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// AddVertex adds a named vertex. Names are unique within a graph.
func (g *Graph) AddVertex(name string) error {
	if _, ok := g.index[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, name)
	}
	g.index[name] = len(g.vertices)
	g.vertices = append(g.vertices, name)
	return nil
}

// AddEdge connects two previously added vertices.
func (g *Graph) AddEdge(from, to string) error {
	if _, ok := g.index[from]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVertex, from)
	}
	if _, ok := g.index[to]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVertex, to)
	}
	g.edges = append(g.edges, Edge{From: from, To: to})
	return nil
}

// HasVertex reports whether a vertex with the given name exists.
func (g *Graph) HasVertex(name string) bool {
	_, ok := g.index[name]
	return ok
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.vertices) }

// Size returns the number of edges.
func (g *Graph) Size() int { return len(g.edges) }

// Directed reports whether the graph was constructed as directed.
func (g *Graph) Directed() bool { return g.directed }

// Vertices returns the vertex names in insertion order.
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.vertices))
	copy(out, g.vertices)
	return out
}

// Edges returns a copy of the edge list in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// SetAttr sets a named graph-level attribute, replacing any previous value.
func (g *Graph) SetAttr(name string, value any) {
	g.attrs[name] = value
}

// Attr returns a named graph-level attribute and whether it is set.
func (g *Graph) Attr(name string) (any, bool) {
	v, ok := g.attrs[name]
	return v, ok
}

// DeleteAttr removes a named graph-level attribute if present.
func (g *Graph) DeleteAttr(name string) {
	delete(g.attrs, name)
}

// NumAttrs returns the number of graph-level attributes.
func (g *Graph) NumAttrs() int { return len(g.attrs) }

// AttrNames returns the sorted names of all graph-level attributes.
func (g *Graph) AttrNames() []string {
	names := make([]string, 0, len(g.attrs))
	for name := range g.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Version returns the "version" attribute. The second return is false when
// the attribute is absent or not a string.
func (g *Graph) Version() (string, bool) {
	v, ok := g.attrs[VersionAttr]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
