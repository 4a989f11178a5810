package argval

import (
	"github.com/argkit/argkit/pkg/netgraph"
)

// Mode is the coarse classification of a value.
type Mode string

const (
	ModeNumeric Mode = "numeric"
	ModeTextual Mode = "character"
	ModeLogical Mode = "logical"
	ModeList    Mode = "list"
)

// Type is the storage classification of a value, finer than Mode: two types
// may share a mode (integer and double are both numeric).
type Type string

const (
	Integer   Type = "integer"
	Double    Type = "double"
	Character Type = "character"
	Logical   Type = "logical"
	List      Type = "list"
)

// Mode returns the coarse classification for the storage type.
func (t Type) Mode() Mode {
	switch t {
	case Integer, Double:
		return ModeNumeric
	case Character:
		return ModeTextual
	case Logical:
		return ModeLogical
	default:
		return ModeList
	}
}

type valueKind uint8

const (
	kindScalar valueKind = iota + 1
	kindVector
	kindArray
	kindGraph
)

// Value describes an argument (or a prototype for one) by its runtime
// classification: storage type, flat length or multi-dimensional shape, and
// nominal class chain. Textual values additionally carry their elements so
// keyword checks can probe them; graph values carry the graph itself.
//
// Values are immutable once constructed; the validation engine never
// modifies them.
type Value struct {
	kind    valueKind
	typ     Type
	n       int
	shape   []int
	class   []string
	elems   []string
	graph   *netgraph.Graph
	keyword Keyword
}

// Scalar describes a single flat element of the given storage type.
func Scalar(t Type) Value {
	return Value{kind: kindScalar, typ: t, n: 1}
}

// String describes a single textual scalar with a known element value.
func String(s string) Value {
	return Value{kind: kindScalar, typ: Character, n: 1, elems: []string{s}}
}

// Strings describes a flat textual vector with known element values.
func Strings(elems ...string) Value {
	return Value{kind: kindVector, typ: Character, n: len(elems), elems: elems}
}

// Vector describes a flat container of n elements of the given storage type.
func Vector(t Type, n int) Value {
	return Value{kind: kindVector, typ: t, n: n}
}

// Array describes a multi-dimensional container with the given dimension
// sizes. Its length is the product of the dimensions. Without dimensions
// there is no shape to declare, so the result degrades to a flat scalar.
func Array(t Type, dims ...int) Value {
	if len(dims) == 0 {
		return Scalar(t)
	}
	shape := make([]int, len(dims))
	copy(shape, dims)
	n := 1
	for _, d := range shape {
		n *= d
	}
	return Value{kind: kindArray, typ: t, n: n, shape: shape}
}

// GraphValue describes a network graph object.
func GraphValue(g *netgraph.Graph) Value {
	return Value{kind: kindGraph, typ: List, n: 1, graph: g}
}

// KeywordProto builds a prototype that requests a semantic keyword check in
// place of a purely structural one. Structurally it is a textual scalar, so
// the mode, type and class phases still compare it against the value.
func KeywordProto(kw Keyword) Value {
	return Value{kind: kindScalar, typ: Character, n: 1, keyword: kw}
}

// WithClass returns a copy of the value with its class chain overridden.
func (v Value) WithClass(classes ...string) Value {
	v.class = make([]string, len(classes))
	copy(v.class, classes)
	return v
}

// Type returns the storage classification.
func (v Value) Type() Type { return v.typ }

// Mode returns the coarse classification.
func (v Value) Mode() Mode { return v.typ.Mode() }

// Len returns the element count. Scalars have length 1; arrays report the
// product of their dimensions.
func (v Value) Len() int { return v.n }

// Shape returns the dimension sizes, or nil for flat values.
func (v Value) Shape() []int {
	if v.kind != kindArray {
		return nil
	}
	out := make([]int, len(v.shape))
	copy(out, v.shape)
	return out
}

// IsFlat reports whether the value has no declared shape.
func (v Value) IsFlat() bool { return v.kind != kindArray }

// Graph returns the underlying graph for graph values, nil otherwise.
func (v Value) Graph() *netgraph.Graph { return v.graph }

// Elements returns the textual elements, nil for non-textual values.
func (v Value) Elements() []string {
	if len(v.elems) == 0 {
		return nil
	}
	out := make([]string, len(v.elems))
	copy(out, v.elems)
	return out
}

// Class returns the nominal class chain. When no explicit class was set the
// chain defaults from the value's structure: graphs carry the network class,
// two-dimensional arrays are matrices, and flat values take their type name
// (doubles classify as "numeric").
func (v Value) Class() []string {
	if len(v.class) > 0 {
		out := make([]string, len(v.class))
		copy(out, v.class)
		return out
	}
	switch v.kind {
	case kindGraph:
		return []string{netgraph.ClassName}
	case kindArray:
		if len(v.shape) == 2 {
			return []string{"matrix", "array"}
		}
		return []string{"array"}
	}
	if v.typ == Double {
		return []string{"numeric"}
	}
	return []string{string(v.typ)}
}
