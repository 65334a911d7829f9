package usecase

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"CivicWatch/internal/domain"
	"CivicWatch/internal/ports"
)

// PipelineDeps wires the ordered checks and the console sink into the pipeline.
// Prepare, when set, rewrites the article text once before the first check.
type PipelineDeps struct {
	Checks   []ports.Check
	Reporter ports.Reporter
	Prepare  func(string) string
	Logger   *slog.Logger
}

// Step records one visited check.
type Step struct {
	Check   string
	Verdict domain.Verdict
}

// Trace describes a single traversal of the chain.
type Trace struct {
	Steps  []Step
	Halted bool
}

// Rejected reports whether a check failed the article.
func (t Trace) Rejected() bool {
	return t.Halted
}

// link is one node of the chain. Each link owns the rest of the chain.
type link struct {
	check    ports.Check
	next     *link
	reporter ports.Reporter
}

func (l *link) setNext(next *link) {
	l.next = next
}

// handle evaluates this link's check and forwards the unmodified article
// only when the verdict is pass and a next link exists.
func (l *link) handle(article domain.Article, trace *Trace) error {
	verdict := l.check.Evaluate(article)
	trace.Steps = append(trace.Steps, Step{Check: l.check.Name(), Verdict: verdict})

	if l.reporter != nil {
		if err := l.reporter.Report(l.check.Name(), verdict.Message, !verdict.Passed()); err != nil {
			return goerr.Wrap(err, "report verdict", goerr.V("check", l.check.Name()))
		}
	}

	if !verdict.Passed() {
		trace.Halted = true
		return nil
	}
	if l.next == nil {
		return nil
	}
	return l.next.handle(article, trace)
}

// Pipeline runs articles through a fixed chain of checks.
type Pipeline struct {
	head    *link
	size    int
	prepare func(string) string
	logger  *slog.Logger
}

// NewPipeline links the checks once, in the order given.
func NewPipeline(deps PipelineDeps) *Pipeline {
	p := &Pipeline{prepare: deps.Prepare, logger: deps.Logger}

	var tail *link
	for _, check := range deps.Checks {
		if check == nil {
			continue
		}
		node := &link{check: check, reporter: deps.Reporter}
		if tail == nil {
			p.head = node
		} else {
			tail.setNext(node)
		}
		tail = node
		p.size++
	}

	return p
}

// Len returns the number of checks in the chain.
func (p *Pipeline) Len() int {
	return p.size
}

// Handle passes the article to the head of the chain. Every check sees
// the same text; the caller's article is left untouched.
func (p *Pipeline) Handle(article domain.Article) (Trace, error) {
	var trace Trace
	if p.head == nil {
		return trace, nil
	}

	if p.prepare != nil {
		article.Text = p.prepare(article.Text)
	}

	if err := p.head.handle(article, &trace); err != nil {
		return trace, goerr.Wrap(err, "handle article", goerr.V("article_id", article.ID))
	}

	p.debug("article handled",
		"article_id", article.ID,
		"visited", len(trace.Steps),
		"rejected", trace.Rejected(),
	)
	return trace, nil
}

func (p *Pipeline) debug(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}
