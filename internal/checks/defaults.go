package checks

const (
	FactCheck         = "FactCheck"
	ToxicityCheck     = "ToxicityCheck"
	BiasCheck         = "BiasCheck"
	SourceCredibility = "SourceCredibility"
)

// DefaultOrder runs the cheapest, most decisive checks first.
var DefaultOrder = []string{FactCheck, ToxicityCheck, BiasCheck, SourceCredibility}

// DefaultSpecs returns the built-in checks keyed by name.
func DefaultSpecs() map[string]Spec {
	return map[string]Spec{
		FactCheck: {
			Name:    FactCheck,
			Phrases: []string{"earth is flat"},
			Reject:  "Fake claim detected!",
			Accept:  "Passed fact check",
		},
		ToxicityCheck: {
			Name:    ToxicityCheck,
			Phrases: []string{"hate", "stupid"},
			Reject:  "Toxic language detected",
			Accept:  "No toxic language",
		},
		BiasCheck: {
			Name:    BiasCheck,
			Phrases: []string{"biased"},
			Reject:  "Political bias detected",
			Accept:  "Neutral content",
		},
		SourceCredibility: {
			Name:    SourceCredibility,
			Phrases: []string{"whatsapp forward"},
			Reject:  "Untrusted source",
			Accept:  "Trusted source",
		},
	}
}

// NewDefaultRegistry registers one PhraseCheck per spec.
func NewDefaultRegistry(specs map[string]Spec) *Registry {
	reg := NewRegistry()
	for name, spec := range specs {
		if spec.Name == "" {
			spec.Name = name
		}
		reg.Register(NewPhraseCheck(spec))
	}
	return reg
}
