package argval

import (
	"slices"
	"strings"

	"github.com/argkit/argkit/pkg/netgraph"
)

// checkClass compares the nominal class chains of value and prototype, then
// runs the specialized graph comparison when the prototype is a network
// graph.
func checkClass(r *Report, param string, value, proto Value) {
	got := strings.Join(value.Class(), "/")
	want := strings.Join(proto.Class(), "/")
	if got != want {
		r.addf(param, CodeClassMismatch, "validation.class_mismatch",
			map[string]any{"got": got, "want": want},
			"class is %q, expected %q", got, want)
	}

	if proto.Class()[0] == netgraph.ClassName && proto.Graph() != nil && value.Graph() != nil {
		checkGraph(r, param, value.Graph(), proto.Graph())
	}
}

// checkGraph compares graph-level attributes in three strictly ordered
// steps: attribute count, then sorted attribute-name sets, then the version
// attribute. Each step runs only when the previous one matched, so a count
// mismatch suppresses name and version diagnostics for this call.
func checkGraph(r *Report, param string, value, proto *netgraph.Graph) {
	if value.NumAttrs() != proto.NumAttrs() {
		r.addf(param, CodeGraphAttrCountMismatch, "validation.graph_attr_count",
			map[string]any{"got": value.NumAttrs(), "want": proto.NumAttrs()},
			"has %d graph attributes, expected %d", value.NumAttrs(), proto.NumAttrs())
		return
	}
	if proto.NumAttrs() == 0 {
		return
	}

	got := value.AttrNames()
	want := proto.AttrNames()
	if !slices.Equal(got, want) {
		r.addf(param, CodeGraphAttrNameMismatch, "validation.graph_attr_names",
			map[string]any{"got": strings.Join(got, ", "), "want": strings.Join(want, ", ")},
			"graph attributes [%s] do not match expected [%s]",
			strings.Join(got, ", "), strings.Join(want, ", "))
		return
	}

	wantVersion, ok := proto.Version()
	if !ok {
		return
	}
	gotVersion, _ := value.Version()
	if gotVersion != wantVersion {
		r.addf(param, CodeGraphVersionMismatch, "validation.graph_version",
			map[string]any{"got": gotVersion, "want": wantVersion},
			"graph version is %q, expected %q", gotVersion, wantVersion)
	}
}
