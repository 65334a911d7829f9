package checks

import (
	"github.com/m-mizutani/goerr/v2"

	"CivicWatch/internal/ports"
)

// ErrUnknownCheck is returned when an order names a check nobody registered.
var ErrUnknownCheck = goerr.New("check is not registered")

// Registry looks checks up by the name they print on the console.
type Registry struct {
	checks map[string]ports.Check
}

// NewRegistry returns a registry with no checks.
func NewRegistry() *Registry {
	return &Registry{checks: map[string]ports.Check{}}
}

// Register stores check under its Name, replacing any earlier check with that name.
func (r *Registry) Register(check ports.Check) {
	if r.checks == nil {
		r.checks = map[string]ports.Check{}
	}
	r.checks[check.Name()] = check
}

// Resolve fails with ErrUnknownCheck for names nobody registered.
func (r *Registry) Resolve(name string) (ports.Check, error) {
	if check, ok := r.checks[name]; ok {
		return check, nil
	}
	return nil, goerr.Wrap(ErrUnknownCheck, "resolve check", goerr.V("name", name))
}

// Ordered turns a chain order into checks, stopping at the first unknown name.
func (r *Registry) Ordered(names []string) ([]ports.Check, error) {
	ordered := make([]ports.Check, 0, len(names))
	for _, name := range names {
		check, err := r.Resolve(name)
		if err != nil {
			return nil, err
		}
		ordered = append(ordered, check)
	}
	return ordered, nil
}
