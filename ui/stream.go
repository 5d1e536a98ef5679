// Package ui holds the fallback presentation layer: plain line-oriented
// writers for the trace and log streams, with optional color when the
// destination is a terminal.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"

	"github.com/emustep/emustep/models"
)

var traceColor = ansi.ColorCode("cyan")
var logColor = ansi.ColorCode("default")

// StreamUI writes each line to the configured trace/log writers.
// OnFinished is a no-op; a stream has no affordances to disable.
type StreamUI struct {
	trace, log io.Writer

	// color is applied per stream only when that stream is a tty
	traceColor string
	logColor   string
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// NewStream builds the fallback UI for a config. Color is only applied
// when requested and the stream lands on a terminal.
func NewStream(conf *models.Config) *StreamUI {
	conf = conf.Init()
	s := &StreamUI{trace: conf.Trace, log: conf.Log}
	if conf.Color {
		if isTerminal(conf.Trace) {
			s.traceColor = traceColor
		}
		if isTerminal(conf.Log) {
			s.logColor = logColor
		}
	}
	return s
}

func (s *StreamUI) emit(w io.Writer, color, line string) {
	if color != "" {
		fmt.Fprintf(w, "%s%s%s\n", color, line, ansi.Reset)
	} else {
		fmt.Fprintf(w, "%s\n", line)
	}
}

func (s *StreamUI) Trace(line string) {
	s.emit(s.trace, s.traceColor, line)
}

func (s *StreamUI) Log(line string) {
	s.emit(s.log, s.logColor, line)
}

func (s *StreamUI) OnFinished() {}
