package domain

// Outcome enumerates check results.
type Outcome string

const (
	OutcomePass Outcome = "pass"
	OutcomeFail Outcome = "fail"
)

// Verdict is what a check reports about an article.
type Verdict struct {
	Outcome Outcome
	Message string
}

// Pass builds a passing verdict.
func Pass(message string) Verdict {
	return Verdict{Outcome: OutcomePass, Message: message}
}

// Fail builds a failing verdict.
func Fail(message string) Verdict {
	return Verdict{Outcome: OutcomeFail, Message: message}
}

// Passed reports whether the chain may continue past this verdict.
func (v Verdict) Passed() bool {
	return v.Outcome == OutcomePass
}
