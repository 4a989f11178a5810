// Package netgraph provides a small network (graph) value type with named
// vertices, edges, and graph-level attributes.
//
// Graphs are the specialized object kind understood by the argval validation
// engine: a prototype graph's attribute set and "version" attribute are
// compared against a candidate graph during validation. Beyond that, the
// package offers a YAML codec so graph fixtures can be stored alongside
// configuration.
//
// # Usage
//
//	g := netgraph.New(netgraph.WithVersion("1.2"))
//	_ = g.AddVertex("a")
//	_ = g.AddVertex("b")
//	_ = g.AddEdge("a", "b")
//	g.SetAttr("directed", false)
//
// Graphs are not safe for concurrent mutation; construct them fully before
// sharing.
package netgraph
