package intent

import (
	"regexp"
	"strings"
)

// Single-word symptom vocabulary, matched on token boundaries so that
// "ill" does not fire inside "pill".
var symptomWords = map[string]bool{
	"nausea": true, "nauseous": true, "headache": true, "fever": true,
	"feverish": true, "bloating": true, "fatigue": true, "tired": true,
	"dizziness": true, "dizzy": true, "pain": true, "cough": true,
	"coughing": true, "cold": true, "weakness": true, "vomiting": true,
	"vomit": true, "diarrhea": true, "constipation": true, "insomnia": true,
	"rash": true, "sweating": true, "chills": true, "swelling": true,
	"itching": true, "numbness": true, "anxiety": true, "confusion": true,
	"ache": true, "aching": true, "hurt": true, "hurting": true,
	"sore": true, "painful": true, "discomfort": true, "uncomfortable": true,
	"sick": true, "ill": true, "unwell": true, "sneezing": true,
}

// Multi-word symptom phrases, matched as substrings.
var symptomPhrases = []string{
	"back pain", "sore throat", "runny nose", "loss of appetite",
	"weight loss", "chest pain", "joint pain", "muscle ache",
	"shortness of breath", "stomach pain", "abdominal pain",
}

var (
	symptomExperiencePattern = regexp.MustCompile(`i have|i feel|i'm feeling|i am feeling|experiencing|suffering from`)

	// Drug-pair phrasings ("warfarin and aspirin", "ibuprofen with
	// metformin") plus explicit interaction vocabulary. Symptom queries
	// containing "and" are caught by the higher-priority symptom detector
	// before these fire.
	drugPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\w+\s+and\s+\w+`),
		regexp.MustCompile(`\w+\s+with\s+\w+`),
		regexp.MustCompile(`\binteraction\b`),
		regexp.MustCompile(`drug interaction`),
		regexp.MustCompile(`medication interaction`),
		regexp.MustCompile(`can i take`),
		regexp.MustCompile(`taking.*with`),
		regexp.MustCompile(`combine.*medication`),
	}

	testPatterns = []*regexp.Regexp{
		regexp.MustCompile(`blood test`),
		regexp.MustCompile(`lab test`),
		regexp.MustCompile(`thyroid test`),
		regexp.MustCompile(`glucose test`),
		regexp.MustCompile(`cholesterol`),
		regexp.MustCompile(`test results?`),
		regexp.MustCompile(`\breport\b`),
		regexp.MustCompile(`lab report`),
	}

	diseasePatterns = []*regexp.Regexp{
		regexp.MustCompile(`what is \w+`),
		regexp.MustCompile(`tell me about \w+`),
		regexp.MustCompile(`explain \w+`),
		regexp.MustCompile(`\w+ disease`),
		regexp.MustCompile(`\w+ condition`),
		regexp.MustCompile(`symptoms (of|for) \w+`),
		regexp.MustCompile(`signs of \w+`),
		regexp.MustCompile(`causes of \w+`),
	}

	researchPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bresearch\b`),
		regexp.MustCompile(`\bstud(y|ies)\b`),
		regexp.MustCompile(`clinical trial`),
		regexp.MustCompile(`\bevidence\b`),
	}

	// Informational phrasings about a disease's symptoms. Never treated as
	// the user reporting their own symptoms.
	diseaseSymptomPhrases = []string{
		"symptoms of", "symptoms for", "what are the symptoms",
		"signs of", "signs and symptoms",
	}
)

// Classify returns the highest-priority matching intent.
//
// Disease-symptom phrasings ("symptoms of diabetes") are checked before the
// symptom detector, otherwise the word "symptoms" would shadow them.
func Classify(text string) Intent {
	lower := strings.ToLower(text)

	if IsDiseaseSymptomQuery(lower) {
		return Disease
	}
	if isSymptomQuery(lower) {
		return Symptom
	}
	if matchAny(drugPatterns, lower) {
		return DrugInteraction
	}
	if matchAny(testPatterns, lower) {
		return TestOrReport
	}
	if matchAny(diseasePatterns, lower) {
		return Disease
	}
	if matchAny(researchPatterns, lower) {
		return Research
	}
	return Unknown
}

// IsDiseaseSymptomQuery reports whether text asks about a disease's
// symptoms rather than describing the user's own.
func IsDiseaseSymptomQuery(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range diseaseSymptomPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func isSymptomQuery(lower string) bool {
	for _, phrase := range symptomPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	for _, word := range tokenize(lower) {
		if symptomWords[word] {
			return true
		}
	}
	return symptomExperiencePattern.MatchString(lower)
}

func matchAny(patterns []*regexp.Regexp, lower string) bool {
	for _, p := range patterns {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}

func tokenize(lower string) []string {
	fields := strings.Fields(lower)
	for i, f := range fields {
		fields[i] = strings.Trim(f, ".,?!;:'\"()")
	}
	return fields
}
