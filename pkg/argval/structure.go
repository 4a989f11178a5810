package argval

import (
	"strconv"
	"strings"
)

// checkModeType compares the coarse mode and the storage type of value and
// prototype. The two checks are orthogonal; both can fire for one call.
func checkModeType(r *Report, param string, value, proto Value) {
	if value.Mode() != proto.Mode() {
		r.addf(param, CodeModeMismatch, "validation.mode_mismatch",
			map[string]any{"got": string(value.Mode()), "want": string(proto.Mode())},
			"mode is %s, expected %s", value.Mode(), proto.Mode())
	}
	if value.Type() != proto.Type() {
		r.addf(param, CodeTypeMismatch, "validation.type_mismatch",
			map[string]any{"got": string(value.Type()), "want": string(proto.Type())},
			"type is %s, expected %s", value.Type(), proto.Type())
	}
}

// checkShape compares dimensionality against the prototype. A flat
// prototype constrains the value to be flat with an equal length; a
// multi-dimensional prototype requires an identical dimension vector, with
// no coercion or partial matching.
func checkShape(r *Report, param string, value, proto Value) {
	if proto.IsFlat() {
		if !value.IsFlat() {
			r.addf(param, CodeDimensionMismatch, "validation.dimension_mismatch",
				map[string]any{"got": formatShape(value.Shape()), "want": "no shape"},
				"has dimension %s, expected a flat value", formatShape(value.Shape()))
			return
		}
		if value.Len() != proto.Len() {
			r.addf(param, CodeLengthMismatch, "validation.length_mismatch",
				map[string]any{"got": value.Len(), "want": proto.Len()},
				"length is %d, expected %d", value.Len(), proto.Len())
		}
		return
	}

	got := formatShape(value.Shape())
	want := formatShape(proto.Shape())
	if got != want {
		r.addf(param, CodeDimensionMismatch, "validation.dimension_mismatch",
			map[string]any{"got": got, "want": want},
			"dimension is %s, expected %s", got, want)
	}
}

// formatShape renders a dimension vector as "3x4"; flat values render as
// the literal "no shape".
func formatShape(dims []int) string {
	if len(dims) == 0 {
		return "no shape"
	}
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, "x")
}
