// Package routing maps a classified intent to the knowledge partitions
// trusted for it, augments queries with intent-specific retrieval keywords,
// and re-ranks retrieved candidates by source trust. Pure lookups, no I/O.
package routing

import (
	"sort"
	"strings"

	"health-assistant-be/pkg/clinical"
	"health-assistant-be/pkg/clinical/intent"
)

// Partition names one subset of the knowledge base. The string values are
// the dataset tags stored on documents.
type Partition string

const (
	SymptomFallback   Partition = "symptom_fallback"
	PatientEducationA Partition = "medlineplus"
	PatientEducationB Partition = "who_nhs"
	Taxonomy          Partition = "icd11"
	DrugSafety        Partition = "drug_interactions"
	ResearchAbstracts Partition = "pubmed"
)

// Route returns the partitions allowed for an intent, ordered by trust.
// The switch is total over the Intent enum; Unknown defaults to patient
// education plus taxonomy.
func Route(queryIntent intent.Intent) []Partition {
	switch queryIntent {
	case intent.Symptom:
		return []Partition{SymptomFallback, PatientEducationA, PatientEducationB}
	case intent.DrugInteraction:
		return []Partition{DrugSafety}
	case intent.TestOrReport:
		return []Partition{PatientEducationA, PatientEducationB}
	case intent.Disease:
		return []Partition{PatientEducationA, PatientEducationB, Taxonomy}
	case intent.Research:
		return []Partition{ResearchAbstracts}
	default:
		return []Partition{PatientEducationA, PatientEducationB, Taxonomy}
	}
}

// Augment prepends the fixed retrieval keyword phrase for an intent.
func Augment(text string, queryIntent intent.Intent) string {
	var keywords string
	switch queryIntent {
	case intent.Symptom:
		keywords = "symptom causes treatment management"
	case intent.DrugInteraction:
		keywords = "drug interaction safety warning"
	case intent.TestOrReport:
		keywords = "test results interpretation normal range"
	case intent.Disease:
		keywords = "disease condition overview causes symptoms"
	case intent.Research:
		keywords = "research study clinical evidence"
	default:
		return text
	}
	return keywords + " " + text
}

// FilterByPartition drops documents whose dataset tag is not in the allowed
// list. Documents without a dataset tag are matched against their source
// label for backward compatibility with older corpora.
func FilterByPartition(docs []clinical.RetrievedDocument, allowed []Partition) []clinical.RetrievedDocument {
	if len(allowed) == 0 {
		return docs
	}

	allowedSet := make(map[Partition]bool, len(allowed))
	for _, p := range allowed {
		allowedSet[p] = true
	}

	filtered := make([]clinical.RetrievedDocument, 0, len(docs))
	for _, doc := range docs {
		if allowedSet[Partition(strings.ToLower(doc.Dataset))] {
			filtered = append(filtered, doc)
			continue
		}
		if doc.Dataset == "" && allowedSet[partitionFromSource(doc.Source)] {
			filtered = append(filtered, doc)
		}
	}
	return filtered
}

// Rerank sorts documents by source trust first, semantic score second.
// Trust order: primary symptom content, drug safety, patient education,
// taxonomy, research, everything else.
func Rerank(docs []clinical.RetrievedDocument) []clinical.RetrievedDocument {
	ranked := make([]clinical.RetrievedDocument, len(docs))
	copy(ranked, docs)
	sort.SliceStable(ranked, func(i, j int) bool {
		pi, pj := trustPriority(ranked[i]), trustPriority(ranked[j])
		if pi != pj {
			return pi < pj
		}
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

func trustPriority(doc clinical.RetrievedDocument) int {
	source := strings.ToLower(doc.Source)
	category := strings.ToLower(doc.Category)
	dataset := strings.ToLower(doc.Dataset)

	switch {
	case strings.Contains(category, "primary symptom"):
		return 0
	case strings.Contains(source, "drug interaction") || dataset == string(DrugSafety):
		return 1
	case strings.Contains(source, "medlineplus") || dataset == string(PatientEducationA) || dataset == string(PatientEducationB):
		return 2
	case strings.Contains(source, "icd-11") || strings.Contains(source, "icd11") || dataset == string(Taxonomy):
		return 3
	case strings.Contains(source, "pubmed") || dataset == string(ResearchAbstracts):
		return 4
	default:
		return 5
	}
}

func partitionFromSource(source string) Partition {
	s := strings.ToLower(source)
	switch {
	case strings.Contains(s, "medlineplus"):
		return PatientEducationA
	case strings.Contains(s, "who") || strings.Contains(s, "nhs"):
		return PatientEducationB
	case strings.Contains(s, "icd"):
		return Taxonomy
	case strings.Contains(s, "drug interaction"):
		return DrugSafety
	case strings.Contains(s, "pubmed"):
		return ResearchAbstracts
	default:
		return Partition("")
	}
}
