package ports

import (
	"context"

	"CivicWatch/internal/domain"
)

// Subscriber reacts to every reading published by a sensor.
type Subscriber interface {
	Name() string
	Receive(reading domain.Reading) error
}

// Check is one stage of the article review chain. Evaluate must be pure.
type Check interface {
	Name() string
	Evaluate(article domain.Article) domain.Verdict
}

// Reporter writes one tagged console line per call.
type Reporter interface {
	Report(source, message string, alert bool) error
}

// Prompter reads one line of interactive input; io.EOF ends the session.
// Prompt returns ctx.Err() as soon as ctx is done, even while waiting for input.
type Prompter interface {
	Prompt(ctx context.Context, label string) (string, error)
}
