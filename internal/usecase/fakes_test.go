package usecase

import (
	"context"
	"fmt"
	"io"

	"CivicWatch/internal/domain"
)

type line struct {
	source  string
	message string
	alert   bool
}

type recordingReporter struct {
	lines []line
	err   error
}

func (r *recordingReporter) Report(source, message string, alert bool) error {
	if r.err != nil {
		return r.err
	}
	r.lines = append(r.lines, line{source: source, message: message, alert: alert})
	return nil
}

type recordingSubscriber struct {
	name string
	log  *[]string
	got  []domain.Reading
	err  error
}

func (s *recordingSubscriber) Name() string { return s.name }

func (s *recordingSubscriber) Receive(reading domain.Reading) error {
	s.got = append(s.got, reading)
	if s.log != nil {
		*s.log = append(*s.log, fmt.Sprintf("%s:%d", s.name, reading))
	}
	return s.err
}

type countingCheck struct {
	name    string
	fail    bool
	calls   int
	visited *[]string
}

func (c *countingCheck) Name() string { return c.name }

func (c *countingCheck) Evaluate(article domain.Article) domain.Verdict {
	c.calls++
	if c.visited != nil {
		*c.visited = append(*c.visited, c.name)
	}
	if c.fail {
		return domain.Fail(c.name + " failed")
	}
	return domain.Pass(c.name + " passed")
}

type scriptedPrompter struct {
	lines    []string
	labels   []string
	err      error
	onPrompt func()
}

func (p *scriptedPrompter) Prompt(_ context.Context, label string) (string, error) {
	p.labels = append(p.labels, label)
	if p.onPrompt != nil {
		p.onPrompt()
	}
	if len(p.lines) == 0 {
		if p.err != nil {
			return "", p.err
		}
		return "", io.EOF
	}
	next := p.lines[0]
	p.lines = p.lines[1:]
	return next, nil
}
