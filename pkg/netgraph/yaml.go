package netgraph

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrMalformedGraph is returned when a YAML document cannot be decoded
// into a structurally valid graph.
var ErrMalformedGraph = errors.New("netgraph: malformed graph document")

// graphDoc is the YAML wire shape of a graph.
type graphDoc struct {
	Directed   bool           `yaml:"directed,omitempty"`
	Vertices   []string       `yaml:"vertices,omitempty"`
	Edges      []edgeDoc      `yaml:"edges,omitempty"`
	Attributes map[string]any `yaml:"attributes,omitempty"`
}

type edgeDoc struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// MarshalYAML implements yaml.Marshaler.
func (g *Graph) MarshalYAML() (any, error) {
	doc := graphDoc{
		Directed: g.directed,
		Vertices: g.Vertices(),
	}
	for _, e := range g.edges {
		doc.Edges = append(doc.Edges, edgeDoc{From: e.From, To: e.To})
	}
	if len(g.attrs) > 0 {
		doc.Attributes = make(map[string]any, len(g.attrs))
		for k, v := range g.attrs {
			doc.Attributes[k] = v
		}
	}
	return doc, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Edges referencing vertices not
// listed in the document are rejected.
func (g *Graph) UnmarshalYAML(node *yaml.Node) error {
	var doc graphDoc
	if err := node.Decode(&doc); err != nil {
		return errors.Join(ErrMalformedGraph, err)
	}

	rebuilt := New()
	rebuilt.directed = doc.Directed
	for _, name := range doc.Vertices {
		if err := rebuilt.AddVertex(name); err != nil {
			return errors.Join(ErrMalformedGraph, err)
		}
	}
	for _, e := range doc.Edges {
		if err := rebuilt.AddEdge(e.From, e.To); err != nil {
			return errors.Join(ErrMalformedGraph, err)
		}
	}
	for k, v := range doc.Attributes {
		rebuilt.SetAttr(k, v)
	}

	*g = *rebuilt
	return nil
}

// Encode renders the graph as a YAML document.
func (g *Graph) Encode() ([]byte, error) {
	out, err := yaml.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("netgraph: encode: %w", err)
	}
	return out, nil
}

// Decode parses a YAML document produced by Encode (or written by hand)
// into a new graph.
func Decode(data []byte) (*Graph, error) {
	g := New()
	if err := yaml.Unmarshal(data, g); err != nil {
		if errors.Is(err, ErrMalformedGraph) {
			return nil, err
		}
		return nil, errors.Join(ErrMalformedGraph, err)
	}
	return g, nil
}
