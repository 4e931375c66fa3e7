package intent

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		{"direct symptom word", "I have a headache", Symptom},
		{"symptom phrase", "my sore throat is getting worse", Symptom},
		{"experience pattern without keyword", "I am feeling strange lately", Symptom},
		{"symptom beats drug pair", "headache and fever since friday", Symptom},
		{"drug pair with and", "warfarin and aspirin", DrugInteraction},
		{"drug pair with with", "ibuprofen with metformin", DrugInteraction},
		{"interaction vocabulary", "is there an interaction between these", DrugInteraction},
		{"can i take", "can i take paracetamol twice", DrugInteraction},
		{"blood test", "what does my blood test show", TestOrReport},
		{"cholesterol", "cholesterol was 240 last month", TestOrReport},
		{"lab report", "please explain this lab report", TestOrReport},
		{"what is", "what is hypertension", Disease},
		{"tell me about", "tell me about diabetes", Disease},
		{"disease symptoms phrasing", "What are the symptoms of diabetes", Disease},
		{"signs of", "signs of anemia", Disease},
		{"research", "what does research say about coffee", Research},
		{"clinical trial", "any clinical trial results for this", Research},
		{"unknown", "hello there", Unknown},
		{"empty", "", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text)
			if got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyIdempotent(t *testing.T) {
	inputs := []string{
		"I have a headache",
		"warfarin and aspirin",
		"what is hypertension",
		"random words here",
	}
	for _, text := range inputs {
		first := Classify(text)
		for i := 0; i < 10; i++ {
			if got := Classify(text); got != first {
				t.Fatalf("Classify(%q) unstable: %v then %v", text, first, got)
			}
		}
	}
}

func TestIsDiseaseSymptomQuery(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"what are the symptoms of diabetes", true},
		{"signs of dehydration", true},
		{"signs and symptoms of flu", true},
		{"I have a headache", false},
		{"my symptoms are getting worse", false},
	}
	for _, tt := range tests {
		if got := IsDiseaseSymptomQuery(tt.text); got != tt.want {
			t.Errorf("IsDiseaseSymptomQuery(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestPriorityOrdering(t *testing.T) {
	// A query matching several detectors must resolve to the highest
	// priority one.
	text := "I have nausea, can i take omeprazole with my research medication"
	if got := Classify(text); got != Symptom {
		t.Errorf("expected Symptom to win priority, got %v", got)
	}

	text = "interaction of metformin, what is it, any studies?"
	if got := Classify(text); got != DrugInteraction {
		t.Errorf("expected DrugInteraction over Disease/Research, got %v", got)
	}
}
