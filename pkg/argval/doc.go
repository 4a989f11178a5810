// Package argval validates arguments against prototype values and reports
// every mismatch at once instead of failing on the first.
//
// A prototype is an ordinary Value used as a read-only template: the
// argument must match its mode (coarse classification), storage type,
// nominal class, and, when requested, its length or dimension vector.
// Prototypes built with KeywordProto additionally request per-element
// semantic checks on textual arguments: directory existence, file
// existence, writability, or versioned-identifier (GUID) syntax.
//
// All applicable checks run on every call and append to a single ordered
// Report, so a caller gets the complete diagnosis in one pass:
//
//	report := argval.Validate("tracefile", argval.Strings(path),
//		argval.KeywordProto(argval.KeywordFileWritable))
//	if !report.OK() {
//		// every failure, each attributed to "tracefile"
//	}
//
// Structural comparison:
//
//	report := argval.Validate("weights",
//		argval.Vector(argval.Integer, 3),
//		argval.Vector(argval.Double, 4),
//		argval.CheckSize())
//	// -> type mismatch (integer vs double) and length mismatch (3 vs 4);
//	//    no mode mismatch, both are numeric
//
// When the prototype is a network graph (see the netgraph package) the
// class phase deepens into a three-step attribute comparison: attribute
// count, sorted attribute names, then the "version" attribute, each step
// gated on the previous one matching.
//
// The engine is total: mismatches never surface as errors or panics, only
// as report entries. Diagnostics carry translation keys compatible with the
// i18n package for rendering in other languages. Validation keeps no state
// between calls and is safe for concurrent use.
package argval
