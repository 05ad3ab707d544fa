package engine

// Decision is a human verdict on one candidate match.
type Decision string

// Decision values.
const (
	DecisionConfirmed Decision = "confirmed"
	DecisionRejected  Decision = "rejected"
)

// DecisionSet maps person index to candidate officer id to the human
// decision. It is threaded through the pipeline as an explicit value so
// the resolution is testable without an interactive harness. Setting the
// same key twice is idempotent; the latest verdict wins.
type DecisionSet map[int]map[string]Decision

// NewDecisionSet creates an empty decision set.
func NewDecisionSet() DecisionSet {
	return make(DecisionSet)
}

// Set records the decision for one (person, candidate) pair.
func (ds DecisionSet) Set(personIdx int, officerID string, decision Decision) {
	if ds[personIdx] == nil {
		ds[personIdx] = make(map[string]Decision)
	}
	ds[personIdx][officerID] = decision
}

// IsConfirmed reports whether the candidate was confirmed for the person.
// Undecided candidates count as rejected.
func (ds DecisionSet) IsConfirmed(personIdx int, officerID string) bool {
	return ds[personIdx][officerID] == DecisionConfirmed
}
