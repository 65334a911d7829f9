package subscribers

import (
	"fmt"

	"CivicWatch/internal/domain"
	"CivicWatch/internal/ports"
)

// Policy is a subscriber's own threshold and wording.
type Policy struct {
	Name      string
	Threshold int
	High      string
	Normal    string
}

// Threshold reports the high message for readings strictly above its
// threshold and the normal message otherwise.
type Threshold struct {
	policy   Policy
	reporter ports.Reporter
}

var _ ports.Subscriber = (*Threshold)(nil)

// NewThreshold binds a policy to the console sink.
func NewThreshold(policy Policy, reporter ports.Reporter) *Threshold {
	return &Threshold{policy: policy, reporter: reporter}
}

// Name identifies the subscriber on the console.
func (t *Threshold) Name() string {
	return t.policy.Name
}

// Receive emits exactly one line for the reading.
func (t *Threshold) Receive(reading domain.Reading) error {
	if t.reporter == nil {
		return nil
	}

	high := int(reading) > t.policy.Threshold
	message := t.policy.Normal
	if high {
		message = t.policy.High
	}
	return t.reporter.Report(t.policy.Name, fmt.Sprintf("AQI %d - %s", int(reading), message), high)
}
