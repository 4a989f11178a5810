// Package logsink appends textual messages to a log destination file.
//
// It is the logging collaborator for validation reports: callers that find
// a non-empty report typically append its messages here before deciding
// what to do. Messages must be textual, a single string or a slice of
// strings; anything else is rejected with ErrNotTextual rather than being
// stringified silently.
//
// Two usage styles exist. An explicit sink carries its own destination:
//
//	sink := logsink.New("/var/log/app/validation.log")
//	_ = sink.Append(report.Messages())
//
// The process-wide default binds its destination once from the
// ARGKIT_LOG_FILE environment variable (see Config):
//
//	sink, err := logsink.Default()
//
// Prefer the explicit form; the default exists for callers mirroring a
// single global log file.
package logsink
