package netgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argkit/argkit/pkg/netgraph"
)

func TestGraphConstruction(t *testing.T) {
	t.Parallel()

	t.Run("vertices and edges accumulate", func(t *testing.T) {
		g := netgraph.New()
		require.NoError(t, g.AddVertex("a"))
		require.NoError(t, g.AddVertex("b"))
		require.NoError(t, g.AddEdge("a", "b"))

		assert.Equal(t, 2, g.Order())
		assert.Equal(t, 1, g.Size())
		assert.Equal(t, []string{"a", "b"}, g.Vertices())
		assert.Equal(t, []netgraph.Edge{{From: "a", To: "b"}}, g.Edges())
	})

	t.Run("duplicate vertex is rejected", func(t *testing.T) {
		g := netgraph.New()
		require.NoError(t, g.AddVertex("a"))
		assert.ErrorIs(t, g.AddVertex("a"), netgraph.ErrDuplicateVertex)
	})

	t.Run("edge to an unknown vertex is rejected", func(t *testing.T) {
		g := netgraph.New()
		require.NoError(t, g.AddVertex("a"))
		assert.ErrorIs(t, g.AddEdge("a", "ghost"), netgraph.ErrUnknownVertex)
		assert.ErrorIs(t, g.AddEdge("ghost", "a"), netgraph.ErrUnknownVertex)
	})

	t.Run("directed option sticks", func(t *testing.T) {
		assert.False(t, netgraph.New().Directed())
		assert.True(t, netgraph.New(netgraph.Directed()).Directed())
	})
}

func TestGraphAttributes(t *testing.T) {
	t.Parallel()

	t.Run("names come back sorted", func(t *testing.T) {
		g := netgraph.New()
		g.SetAttr("zeta", 1)
		g.SetAttr("alpha", 2)
		g.SetAttr("mid", 3)
		assert.Equal(t, []string{"alpha", "mid", "zeta"}, g.AttrNames())
		assert.Equal(t, 3, g.NumAttrs())
	})

	t.Run("set replaces and delete removes", func(t *testing.T) {
		g := netgraph.New()
		g.SetAttr("k", 1)
		g.SetAttr("k", 2)
		v, ok := g.Attr("k")
		require.True(t, ok)
		assert.Equal(t, 2, v)

		g.DeleteAttr("k")
		_, ok = g.Attr("k")
		assert.False(t, ok)
	})

	t.Run("version reads the reserved attribute", func(t *testing.T) {
		g := netgraph.New(netgraph.WithVersion("1.2"))
		v, ok := g.Version()
		require.True(t, ok)
		assert.Equal(t, "1.2", v)
	})

	t.Run("non-string version reports absent", func(t *testing.T) {
		g := netgraph.New()
		g.SetAttr(netgraph.VersionAttr, 12)
		_, ok := g.Version()
		assert.False(t, ok)
	})

	t.Run("missing version reports absent", func(t *testing.T) {
		_, ok := netgraph.New().Version()
		assert.False(t, ok)
	})
}

func TestGraphYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	g := netgraph.New(netgraph.Directed(), netgraph.WithVersion("2.0"))
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddVertex("c"))
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))
	g.SetAttr("weighted", false)

	data, err := g.Encode()
	require.NoError(t, err)

	decoded, err := netgraph.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, g.Vertices(), decoded.Vertices())
	assert.Equal(t, g.Edges(), decoded.Edges())
	assert.True(t, decoded.Directed())
	assert.Equal(t, g.AttrNames(), decoded.AttrNames())
	version, ok := decoded.Version()
	require.True(t, ok)
	assert.Equal(t, "2.0", version)
}

func TestGraphDecode(t *testing.T) {
	t.Parallel()

	t.Run("hand-written document", func(t *testing.T) {
		doc := []byte(`
vertices: [a, b]
edges:
  - {from: a, to: b}
attributes:
  version: "1.0"
`)
		g, err := netgraph.Decode(doc)
		require.NoError(t, err)
		assert.Equal(t, 2, g.Order())
		assert.Equal(t, 1, g.Size())
		version, ok := g.Version()
		require.True(t, ok)
		assert.Equal(t, "1.0", version)
	})

	t.Run("edge referencing an unlisted vertex fails", func(t *testing.T) {
		doc := []byte(`
vertices: [a]
edges:
  - {from: a, to: ghost}
`)
		_, err := netgraph.Decode(doc)
		assert.ErrorIs(t, err, netgraph.ErrMalformedGraph)
	})

	t.Run("invalid yaml fails", func(t *testing.T) {
		_, err := netgraph.Decode([]byte("vertices: [unclosed"))
		assert.ErrorIs(t, err, netgraph.ErrMalformedGraph)
	})

	t.Run("duplicate vertex fails", func(t *testing.T) {
		_, err := netgraph.Decode([]byte("vertices: [a, a]"))
		assert.ErrorIs(t, err, netgraph.ErrMalformedGraph)
	})
}
