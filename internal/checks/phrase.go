package checks

import (
	"strings"

	"CivicWatch/internal/domain"
	"CivicWatch/internal/ports"
)

// Spec describes a trigger-phrase check.
type Spec struct {
	Name    string
	Phrases []string
	Reject  string
	Accept  string
}

// PhraseCheck fails an article when any of its trigger phrases occurs in it.
type PhraseCheck struct {
	name    string
	phrases []string
	reject  string
	accept  string
}

var _ ports.Check = (*PhraseCheck)(nil)

// NewPhraseCheck folds the trigger phrases once so Evaluate only folds the article.
func NewPhraseCheck(spec Spec) *PhraseCheck {
	phrases := make([]string, 0, len(spec.Phrases))
	for _, p := range spec.Phrases {
		if folded := Fold(strings.TrimSpace(p)); folded != "" {
			phrases = append(phrases, folded)
		}
	}

	return &PhraseCheck{
		name:    spec.Name,
		phrases: phrases,
		reject:  spec.Reject,
		accept:  spec.Accept,
	}
}

// Name identifies the check inside the registry and on the console.
func (c *PhraseCheck) Name() string {
	return c.name
}

// Phrases returns the folded trigger phrases.
func (c *PhraseCheck) Phrases() []string {
	return append([]string(nil), c.phrases...)
}

// Evaluate reports a fail verdict on the first trigger phrase found.
func (c *PhraseCheck) Evaluate(article domain.Article) domain.Verdict {
	text := Fold(article.Text)
	for _, phrase := range c.phrases {
		if strings.Contains(text, phrase) {
			return domain.Fail(c.reject)
		}
	}
	return domain.Pass(c.accept)
}
