package argval

// Option configures a single validation call.
type Option func(*options)

type options struct {
	checkSize bool
}

// CheckSize enables the shape phase: flat prototypes additionally constrain
// the value's length, multi-dimensional prototypes its dimension vector.
func CheckSize() Option {
	return func(o *options) { o.checkSize = true }
}

// Validate compares value against proto and returns every way it fails to
// conform. The param name is attached to each diagnostic so the report
// reads attributably when several arguments are validated in a row.
//
// Four phases run in a fixed order and never short-circuit one another:
// keyword checks (when proto was built with KeywordProto and value is a
// non-empty textual container), mode/type comparison, the optional shape
// comparison, and the class comparison with its specialized graph check.
// Mismatches accumulate; the engine itself never fails. An empty report
// means value conforms.
//
// Validate keeps no state between calls and never mutates its inputs, so
// concurrent callers need no coordination.
func Validate(param string, value, proto Value, opts ...Option) Report {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var report Report

	if proto.keyword != KeywordNone && value.Mode() == ModeTextual && len(value.elems) > 0 {
		checkKeyword(&report, param, proto.keyword, value.elems)
	}

	checkModeType(&report, param, value, proto)

	if o.checkSize {
		checkShape(&report, param, value, proto)
	}

	checkClass(&report, param, value, proto)

	return report
}
