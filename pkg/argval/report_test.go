package argval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argkit/argkit/pkg/argval"
)

func TestReportOK(t *testing.T) {
	t.Parallel()

	var empty argval.Report
	assert.True(t, empty.OK())

	report := argval.Validate("x", argval.Scalar(argval.Integer), argval.Scalar(argval.Double))
	assert.False(t, report.OK())
}

func TestReportError(t *testing.T) {
	t.Parallel()

	report := argval.Validate("x", argval.Scalar(argval.Integer), argval.Scalar(argval.Double))
	require.False(t, report.OK())
	assert.Contains(t, report.Error(), "validation failed: ")
	assert.Contains(t, report.Error(), "x: ")
}

func TestReportHasAndCount(t *testing.T) {
	t.Parallel()

	report := argval.Validate("x", argval.Scalar(argval.Integer), argval.Scalar(argval.Double))
	assert.True(t, report.Has(argval.CodeTypeMismatch))
	assert.Equal(t, 1, report.Count(argval.CodeTypeMismatch))
	assert.False(t, report.Has(argval.CodeModeMismatch))
	assert.Equal(t, 0, report.Count(argval.CodeModeMismatch))
}

func TestReportByParam(t *testing.T) {
	t.Parallel()

	var combined argval.Report
	combined = append(combined, argval.Validate("first", argval.Scalar(argval.Integer), argval.Scalar(argval.Double))...)
	combined = append(combined, argval.Validate("second", argval.Scalar(argval.Logical), argval.Scalar(argval.Logical))...)
	combined = append(combined, argval.Validate("third", argval.Scalar(argval.Character), argval.Scalar(argval.Double))...)

	assert.Empty(t, combined.ByParam("second"))
	assert.NotEmpty(t, combined.ByParam("first"))
	for _, d := range combined.ByParam("third") {
		assert.Equal(t, "third", d.Param)
	}
}

func TestReportMessages(t *testing.T) {
	t.Parallel()

	report := argval.Validate("cfg", argval.Scalar(argval.Integer), argval.Scalar(argval.Double))
	msgs := report.Messages()
	require.Len(t, msgs, len(report))
	for _, m := range msgs {
		assert.Contains(t, m, "cfg: ")
	}
}

func TestDiagnosticTranslationMetadata(t *testing.T) {
	t.Parallel()

	report := argval.Validate("n", argval.Scalar(argval.Integer), argval.Scalar(argval.Double))
	require.False(t, report.OK())

	d := report[0]
	assert.Equal(t, "validation.type_mismatch", d.TranslationKey)
	assert.Equal(t, "n", d.TranslationValues["param"])
	assert.Equal(t, "integer", d.TranslationValues["got"])
	assert.Equal(t, "double", d.TranslationValues["want"])
}
