package logsink

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/argkit/argkit/pkg/config"
)

// ErrNotTextual is returned when Append is given a message that is neither
// a string nor a slice of strings.
var ErrNotTextual = errors.New("logsink: message must be a string or a slice of strings")

// Config names the process-wide log destination. It is consulted once,
// when the default sink is first used.
type Config struct {
	Destination string `env:"ARGKIT_LOG_FILE" envDefault:"argkit.log"`
}

// Sink appends textual messages to a single destination file. Appends are
// serialized, so one sink may be shared between goroutines. The file is
// created on first append.
type Sink struct {
	mu   sync.Mutex
	path string
}

// New returns a sink bound to the given destination path. Prefer an
// explicit sink over Default wherever the destination is known; it keeps
// tests free of process-wide state.
func New(path string) *Sink {
	return &Sink{path: path}
}

// Path returns the destination the sink appends to.
func (s *Sink) Path() string { return s.path }

var (
	defaultOnce sync.Once
	defaultSink *Sink
	defaultErr  error
)

// Default returns the process-wide sink, binding its destination from
// configuration on first use. The binding is permanent for the process
// lifetime.
func Default() (*Sink, error) {
	defaultOnce.Do(func() {
		var cfg Config
		if err := config.Load(&cfg); err != nil {
			defaultErr = err
			return
		}
		defaultSink = New(cfg.Destination)
	})
	return defaultSink, defaultErr
}

// Append writes the message followed by the platform line terminator to the
// destination. The message must be a string or a slice of strings; a slice
// is joined with line breaks first. On Windows any internal newline
// sequences are normalized to CRLF before the append. Anything non-textual
// returns ErrNotTextual.
func (s *Sink) Append(message any) error {
	text, err := coerce(message)
	if err != nil {
		return err
	}
	text = normalize(text) + lineEnding()

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("logsink: open %q: %w", s.path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(text); err != nil {
		return fmt.Errorf("logsink: append to %q: %w", s.path, err)
	}
	return nil
}

func coerce(message any) (string, error) {
	switch m := message.(type) {
	case string:
		return m, nil
	case []string:
		return strings.Join(m, "\n"), nil
	default:
		return "", fmt.Errorf("%w, got %T", ErrNotTextual, message)
	}
}

func lineEnding() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// normalize rewrites internal line breaks to the platform ending. Unix
// passes through untouched; on Windows both bare LF and preexisting CRLF
// come out as CRLF.
func normalize(text string) string {
	if runtime.GOOS != "windows" {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\n", "\r\n")
}
