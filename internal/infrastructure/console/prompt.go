package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"CivicWatch/internal/ports"
)

const maxLineSize = 1 << 20

type scanResult struct {
	line string
	err  error
}

// Prompter prints a label and reads the next input line.
// Lines are scanned on a background goroutine so a pending Prompt can be cancelled.
type Prompter struct {
	in        io.Reader
	out       io.Writer
	once      sync.Once
	lines     chan scanResult
	done      chan struct{}
	closeOnce sync.Once
}

var _ ports.Prompter = (*Prompter)(nil)

// NewPrompter reads lines from in and writes labels to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if out == nil {
		out = io.Discard
	}
	return &Prompter{
		in:    in,
		out:   out,
		lines: make(chan scanResult),
		done:  make(chan struct{}),
	}
}

// Prompt returns the next line without its terminator, io.EOF, or ctx.Err().
func (p *Prompter) Prompt(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if label != "" {
		if _, err := fmt.Fprint(p.out, label); err != nil {
			return "", goerr.Wrap(err, "write prompt")
		}
	}

	p.once.Do(func() { go p.scan() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-p.done:
		return "", io.EOF
	case res, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	}
}

// Close releases the scanning goroutine once it finishes its current read.
func (p *Prompter) Close() {
	p.closeOnce.Do(func() { close(p.done) })
}

func (p *Prompter) scan() {
	defer close(p.lines)

	scanner := bufio.NewScanner(p.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		if !p.send(scanResult{line: scanner.Text()}) {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		p.send(scanResult{err: goerr.Wrap(err, "scan input")})
	}
}

func (p *Prompter) send(res scanResult) bool {
	select {
	case p.lines <- res:
		return true
	case <-p.done:
		return false
	}
}
