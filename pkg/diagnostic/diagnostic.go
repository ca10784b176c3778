// Package diagnostic provides a verbosity-gated message sink for the
// solver pipeline. Earlier C++ tooling gated all output behind a single
// process-wide static bool; here a Sink is threaded explicitly through the
// call chain instead, so pkg/validate and pkg/solve never reach for a
// global.
package diagnostic

import (
	"fmt"
	"io"
)

// Sink receives human-readable diagnostic messages. Messages reference
// 1-based row and position indices but carry no contractual meaning beyond
// that; callers should never parse them.
type Sink interface {
	Printf(format string, args ...any)
}

// discard is a Sink that drops every message. It is the default: when
// diagnostics are disabled, messages are simply discarded.
type discard struct{}

func (discard) Printf(string, ...any) {}

// Discard is the no-op Sink used when diagnostics are disabled.
var Discard Sink = discard{}

// Writer is a Sink that formats messages to an underlying io.Writer, one
// line per call. Construct with NewWriter.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Sink that writes formatted messages to w, typically
// os.Stderr when a CLI program's -v flag is set.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Printf writes the formatted message followed by a newline.
func (s *Writer) Printf(format string, args ...any) {
	fmt.Fprintf(s.w, format+"\n", args...)
}
