package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"CivicWatch/internal/domain"
	"CivicWatch/internal/ports"
)

const (
	exitCommand = "exit"
	inputSource = "Input"
)

// SessionDeps wires console collaborators into an interactive session.
type SessionDeps struct {
	Prompter ports.Prompter
	Reporter ports.Reporter
	Out      io.Writer
	Logger   *slog.Logger
}

// Session drives the prompt loops for both programs.
type Session struct {
	prompter ports.Prompter
	reporter ports.Reporter
	out      io.Writer
	logger   *slog.Logger
}

// Stats counts what a session processed.
type Stats struct {
	Readings int
	Invalid  int
	Articles int
	Rejected int
}

// NewSession builds a session; Out defaults to io.Discard.
func NewSession(deps SessionDeps) *Session {
	out := deps.Out
	if out == nil {
		out = io.Discard
	}
	return &Session{
		prompter: deps.Prompter,
		reporter: deps.Reporter,
		out:      out,
		logger:   deps.Logger,
	}
}

// RunReadings publishes one reading per line until -1, EOF or cancellation.
// A line that arrives after cancellation is dropped.
// Lines that are not integers are reported and skipped.
func (s *Session) RunReadings(ctx context.Context, sensor *Sensor) (Stats, error) {
	var stats Stats
	if s.prompter == nil || sensor == nil {
		return stats, nil
	}

	fmt.Fprintln(s.out, "Enter AQI readings (type -1 to exit):")
	for {
		if err := ctx.Err(); err != nil {
			return stats, s.finish("readings", stats, err)
		}

		line, err := s.prompter.Prompt(ctx, "AQI> ")
		if errors.Is(err, io.EOF) {
			return stats, s.finish("readings", stats, nil)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return stats, s.finish("readings", stats, ctxErr)
		}
		if err != nil {
			return stats, goerr.Wrap(err, "read reading")
		}

		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			stats.Invalid++
			s.warn("invalid reading", "input", line)
			if s.reporter != nil {
				if rErr := s.reporter.Report(inputSource, fmt.Sprintf("invalid reading %q", strings.TrimSpace(line)), true); rErr != nil {
					return stats, goerr.Wrap(rErr, "report invalid reading")
				}
			}
			continue
		}

		reading := domain.Reading(value)
		if reading == domain.SentinelReading {
			return stats, s.finish("readings", stats, nil)
		}

		if err := sensor.Publish(reading); err != nil {
			return stats, err
		}
		stats.Readings++
		fmt.Fprintln(s.out)
	}
}

// RunArticles sends one article per line through the pipeline until "exit",
// EOF or cancellation.
func (s *Session) RunArticles(ctx context.Context, pipeline *Pipeline) (Stats, error) {
	var stats Stats
	if s.prompter == nil || pipeline == nil {
		return stats, nil
	}

	fmt.Fprintln(s.out, "Enter news article text (type 'exit' to quit):")
	for {
		if err := ctx.Err(); err != nil {
			return stats, s.finish("articles", stats, err)
		}

		line, err := s.prompter.Prompt(ctx, "> ")
		if errors.Is(err, io.EOF) {
			return stats, s.finish("articles", stats, nil)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return stats, s.finish("articles", stats, ctxErr)
		}
		if err != nil {
			return stats, goerr.Wrap(err, "read article")
		}

		if strings.EqualFold(strings.TrimSpace(line), exitCommand) {
			return stats, s.finish("articles", stats, nil)
		}

		fmt.Fprintln(s.out, "---- Analyzing ----")
		trace, err := pipeline.Handle(domain.NewArticle(line))
		if err != nil {
			return stats, err
		}
		stats.Articles++
		if trace.Rejected() {
			stats.Rejected++
		}
		fmt.Fprintln(s.out)
	}
}

// finish logs the counters; cancellation is not treated as a failure.
func (s *Session) finish(kind string, stats Stats, cause error) error {
	if s.logger != nil {
		s.logger.Info("session finished",
			"kind", kind,
			"readings", stats.Readings,
			"invalid", stats.Invalid,
			"articles", stats.Articles,
			"rejected", stats.Rejected,
			"cancelled", cause != nil,
		)
	}
	if cause != nil && !errors.Is(cause, context.Canceled) {
		return goerr.Wrap(cause, "session interrupted", goerr.V("kind", kind))
	}
	return nil
}

func (s *Session) warn(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
