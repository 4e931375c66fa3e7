// Package intent classifies a user query into one of a closed set of
// intents, evaluated in strict priority order. Classification is pure and
// deterministic: same text in, same intent out.
package intent

// Intent is the classified purpose of a query. Lower value = higher
// priority; the classifier returns the first detector that matches.
type Intent int

const (
	Symptom         Intent = 1
	DrugInteraction Intent = 2
	TestOrReport    Intent = 3
	Disease         Intent = 4
	Research        Intent = 5
	Unknown         Intent = 99
)

func (i Intent) String() string {
	switch i {
	case Symptom:
		return "symptom"
	case DrugInteraction:
		return "drug_interaction"
	case TestOrReport:
		return "test_or_report"
	case Disease:
		return "disease"
	case Research:
		return "research"
	default:
		return "unknown"
	}
}
