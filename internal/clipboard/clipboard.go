// Package clipboard wraps the system clipboard behind a small interface so
// the UI can be driven without touching the real clipboard.
package clipboard

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/muesli/termenv"
)

// Writer places text on a clipboard
type Writer interface {
	WriteAll(text string) error
}

// System writes to the operating system clipboard
type System struct{}

// NewSystem returns a Writer for the OS clipboard
func NewSystem() System {
	return System{}
}

// WriteAll copies text to the OS clipboard
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write to clipboard: %w", err)
	}
	return nil
}

// OSC52 asks the terminal to set the clipboard with an OSC 52 escape
// sequence. It works over SSH and without a clipboard utility, but the
// terminal gives no acknowledgement, so a terminal without OSC 52 support
// drops the copy silently.
type OSC52 struct {
	out *termenv.Output
}

// NewOSC52 returns a Writer emitting OSC 52 sequences to w
func NewOSC52(w io.Writer) *OSC52 {
	return &OSC52{out: termenv.NewOutput(w)}
}

// WriteAll emits text as an OSC 52 clipboard sequence
func (o *OSC52) WriteAll(text string) error {
	o.out.Copy(text)
	return nil
}

// Default returns the OS clipboard when a clipboard utility exists and an
// OSC 52 writer on stdout otherwise
func Default() Writer {
	if SystemAvailable() {
		return NewSystem()
	}
	return NewOSC52(os.Stdout)
}

// SystemAvailable reports whether a system clipboard utility was found
func SystemAvailable() bool {
	return !clipboard.Unsupported
}
