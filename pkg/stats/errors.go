package stats

// Kind classifies a validation failure.
type Kind int

const (
	// SchemaMismatch means an instance disagrees with the first instance
	// on feature counts.
	SchemaMismatch Kind = iota

	// InvalidGOValue means a gene-ontology feature held something other
	// than 0 or 1.
	InvalidGOValue

	// InvalidPPIValue means an interaction score was not a number in
	// [0, 1].
	InvalidPPIValue

	// CountMismatch means derived counts disagree with each other, which
	// indicates a computation bug rather than bad input.
	CountMismatch

	// EmptyDataset means a dataset has no instances to aggregate.
	EmptyDataset

	// EmptyFamily means a dataset has no features in one of the two
	// families, leaving its ratios undefined.
	EmptyFamily
)

func (k Kind) String() string {
	switch k {
	case SchemaMismatch:
		return "schema mismatch"
	case InvalidGOValue:
		return "invalid GO value"
	case InvalidPPIValue:
		return "invalid PPI value"
	case CountMismatch:
		return "count mismatch"
	case EmptyDataset:
		return "empty dataset"
	case EmptyFamily:
		return "empty feature family"
	}
	return "unknown"
}

// ValidationError reports a dataset that violates the GO/PPI contract.
// Feature and Instance are filled when the failure can be pinned to one.
type ValidationError struct {
	Kind     Kind
	Feature  string
	Instance string
	Detail   string
}

func (e *ValidationError) Error() string {
	msg := e.Kind.String()
	if e.Feature != "" {
		msg += " for " + e.Feature
	}
	if e.Instance != "" {
		msg += " on instance " + e.Instance
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}
