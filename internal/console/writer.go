package console

import (
	"fmt"
	"io"
)

// Writer is the output surface the orchestrator writes through.
type Writer interface {
	// Message prints informational output. Suppressed in quiet mode.
	Message(text string)
	// Notice prints warnings and errors. Always shown.
	Notice(text string)
	// List prints a header followed by indented items. Suppressed in
	// quiet mode.
	List(header string, items []string)
}

// ConsoleWriter writes styled text to an io.Writer.
type ConsoleWriter struct {
	out    io.Writer
	styles Styles
	quiet  bool
}

// NewWriter returns a ConsoleWriter. quiet suppresses everything except
// notices.
func NewWriter(out io.Writer, styles Styles, quiet bool) *ConsoleWriter {
	return &ConsoleWriter{out: out, styles: styles, quiet: quiet}
}

func (w *ConsoleWriter) Message(text string) {
	if w.quiet {
		return
	}
	fmt.Fprintln(w.out, text)
}

func (w *ConsoleWriter) Notice(text string) {
	fmt.Fprintln(w.out, w.styles.Notice.Render(text))
}

func (w *ConsoleWriter) List(header string, items []string) {
	if w.quiet {
		return
	}
	fmt.Fprintln(w.out, w.styles.Header.Render(header))
	for _, item := range items {
		fmt.Fprintf(w.out, "  %s\n", w.styles.Item.Render(item))
	}
}
