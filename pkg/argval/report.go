package argval

import (
	"fmt"
	"strings"
)

// Code identifies the kind of mismatch a diagnostic reports.
type Code string

const (
	CodeModeMismatch           Code = "mode_mismatch"
	CodeTypeMismatch           Code = "type_mismatch"
	CodeDimensionMismatch      Code = "dimension_mismatch"
	CodeLengthMismatch         Code = "length_mismatch"
	CodeClassMismatch          Code = "class_mismatch"
	CodeGraphAttrCountMismatch Code = "graph_attr_count_mismatch"
	CodeGraphAttrNameMismatch  Code = "graph_attr_name_mismatch"
	CodeGraphVersionMismatch   Code = "graph_version_mismatch"
	CodeDirectoryNotFound      Code = "directory_not_found"
	CodeFileNotFound           Code = "file_not_found"
	CodeFileNotWritable        Code = "file_not_writable"
	CodeInvalidIdentifier      Code = "invalid_identifier"
)

// Diagnostic is a single validation failure with translation support.
// Message is self-describing and safe to surface to an end user; the
// translation fields allow rendering it in another language via an i18n
// catalog.
type Diagnostic struct {
	Param             string
	Code              Code
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// String formats the diagnostic with its parameter name attached.
func (d Diagnostic) String() string {
	return d.Param + ": " + d.Message
}

// Report is the ordered list of diagnostics produced by one validation
// call. An empty report means the value conforms to its prototype. Reports
// implement the error interface so callers can return them directly, but a
// non-nil empty report is not a failure; test with OK.
type Report []Diagnostic

// OK reports whether the validation passed, i.e. the report is empty.
func (r Report) OK() bool { return len(r) == 0 }

// Error implements the error interface.
func (r Report) Error() string {
	if len(r) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(r))
	for i, d := range r {
		parts[i] = d.String()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any diagnostic carries the given code.
func (r Report) Has(code Code) bool {
	for _, d := range r {
		if d.Code == code {
			return true
		}
	}
	return false
}

// Count returns the number of diagnostics carrying the given code.
func (r Report) Count(code Code) int {
	n := 0
	for _, d := range r {
		if d.Code == code {
			n++
		}
	}
	return n
}

// ByParam returns the diagnostics attributed to the given parameter name.
func (r Report) ByParam(param string) Report {
	var out Report
	for _, d := range r {
		if d.Param == param {
			out = append(out, d)
		}
	}
	return out
}

// Messages returns each diagnostic formatted with its parameter name, in
// report order.
func (r Report) Messages() []string {
	out := make([]string, len(r))
	for i, d := range r {
		out[i] = d.String()
	}
	return out
}

func (r *Report) add(param string, code Code, message, key string, values map[string]any) {
	if values == nil {
		values = map[string]any{}
	}
	values["param"] = param
	*r = append(*r, Diagnostic{
		Param:             param,
		Code:              code,
		Message:           message,
		TranslationKey:    key,
		TranslationValues: values,
	})
}

func (r *Report) addf(param string, code Code, key string, values map[string]any, format string, args ...any) {
	r.add(param, code, fmt.Sprintf(format, args...), key, values)
}
