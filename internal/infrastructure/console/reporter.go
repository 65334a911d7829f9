package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"

	"CivicWatch/internal/ports"
)

// Reporter prints "[source] message" lines to a writer.
type Reporter struct {
	mu     sync.Mutex
	w      io.Writer
	alert  *color.Color
	normal *color.Color
}

var _ ports.Reporter = (*Reporter)(nil)

// NewReporter writes to w; colored forces ANSI colors on or off regardless of the terminal.
func NewReporter(w io.Writer, colored bool) *Reporter {
	alert := color.New(color.FgRed, color.Bold)
	normal := color.New(color.FgGreen, color.Bold)
	if colored {
		alert.EnableColor()
		normal.EnableColor()
	} else {
		alert.DisableColor()
		normal.DisableColor()
	}

	return &Reporter{w: w, alert: alert, normal: normal}
}

// Report writes one line; alert lines get the alert color on their tag.
func (r *Reporter) Report(source, message string, alert bool) error {
	if r.w == nil {
		return goerr.New("console reporter has no writer")
	}

	tag := r.normal
	if alert {
		tag = r.alert
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := fmt.Fprintf(r.w, "%s %s\n", tag.Sprintf("[%s]", source), message); err != nil {
		return goerr.Wrap(err, "write console line", goerr.V("source", source))
	}
	return nil
}
