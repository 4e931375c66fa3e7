// Package fallback holds the static symptom table used both as a shortcut
// around retrieval and as the last-resort answer when retrieval or
// generation fails. Lookup is pure and safe for concurrent use.
package fallback

import (
	"sort"
	"strings"

	"health-assistant-be/pkg/clinical"
)

// Entry is one resolved fallback hit.
type Entry struct {
	Key    string
	Advice string
}

// entries maps a symptom key to a canned explanation covering common
// causes, self-care and red-flag thresholds.
var entries = map[string]string{
	"nausea":           "Nausea is often caused by indigestion, food sensitivity, motion sickness, stress, or a mild stomach infection. Sip clear fluids, eat small bland meals, and rest. See a doctor if it lasts more than two days, you cannot keep fluids down, or it comes with severe abdominal pain or repeated vomiting.",
	"headache":         "Headaches are commonly triggered by dehydration, eye strain, stress, poor sleep, or skipped meals. Drink water, rest in a quiet dark room, and consider an over-the-counter pain reliever if you normally tolerate them. Seek care urgently for a sudden severe headache, headache after a head injury, or one accompanied by fever, stiff neck, confusion, or vision changes.",
	"bloating":         "Bloating usually comes from gas produced during digestion, eating quickly, carbonated drinks, or foods such as beans and cabbage. Eating slowly, gentle walking, and peppermint or warm fluids often help. See a doctor if bloating is persistent, painful, or paired with weight loss or changes in bowel habit.",
	"fever":            "Fever is most often the body's response to a viral or bacterial infection. Rest, drink plenty of fluids, and use paracetamol or ibuprofen to stay comfortable. Seek medical attention for a fever above 39.4°C (103°F), one lasting more than three days, or fever with rash, stiff neck, confusion, or trouble breathing.",
	"fatigue":          "Fatigue frequently reflects poor sleep, stress, low iron, dehydration, or recent illness. Prioritize regular sleep, hydration, balanced meals, and light exercise. If tiredness persists beyond two weeks despite rest, or comes with weight loss, fever, or low mood, arrange a medical review.",
	"dizziness":        "Dizziness can result from dehydration, standing up quickly, inner-ear disturbances, low blood sugar, or medication side effects. Sit or lie down until it passes, hydrate, and rise slowly. Get urgent care if dizziness comes with fainting, slurred speech, weakness on one side, or a severe headache.",
	"cough":            "A cough most often follows a cold, flu, or mild airway irritation and settles within two to three weeks. Warm fluids, honey, and rest usually help. See a doctor if the cough lasts more than three weeks, produces blood, or is accompanied by high fever, wheeze, or breathlessness.",
	"cold":             "The common cold is a mild viral infection causing a runny nose, sneezing, sore throat, and sometimes a low fever. Rest, fluids, and simple remedies manage most cases within a week to ten days. Seek care if symptoms worsen after a week, or if you develop high fever, ear pain, or breathing difficulty.",
	"sore throat":      "Sore throats are usually viral and improve within a week. Warm salty-water gargles, lozenges, fluids, and rest ease the discomfort. See a doctor for severe pain, difficulty swallowing liquids, a fever above 38.5°C, white patches on the tonsils, or symptoms lasting beyond a week.",
	"runny nose":       "A runny nose is typically caused by a cold or allergies. Saline rinses, steam, hydration, and antihistamines (for allergy) usually settle it. Seek advice if discharge persists beyond ten days, becomes one-sided, or comes with facial pain or high fever.",
	"vomiting":         "Vomiting is commonly due to gastroenteritis, food poisoning, or motion sickness. Take small sips of oral rehydration fluid and reintroduce bland food slowly. Seek care if vomiting lasts over 24 hours, contains blood, or comes with severe abdominal pain, drowsiness, or signs of dehydration.",
	"diarrhea":         "Diarrhea is most often caused by viral infection or food intolerance and settles within a few days. Stay well hydrated, ideally with oral rehydration solution, and avoid dairy and fatty food briefly. See a doctor for blood in stool, high fever, severe pain, or diarrhea lasting more than three days.",
	"constipation":     "Constipation usually improves with more fiber, more water, and regular movement. Prunes, kiwifruit, and establishing a routine also help. Seek advice if constipation persists over two weeks, or comes with severe pain, vomiting, or blood in the stool.",
	"insomnia":         "Insomnia is commonly driven by stress, caffeine, irregular schedules, or screens before bed. Keep fixed sleep and wake times, limit caffeine after midday, and wind down without devices. If poor sleep persists beyond a month or affects daytime functioning, discuss it with a clinician.",
	"rash":             "Rashes are often due to irritant contact, mild allergy, heat, or viral illness. Keep the area clean and moisturized, avoid scratching, and try an antihistamine for itch. Seek urgent care for a rash with fever, rapid spreading, blistering, or one that does not fade when pressed.",
	"back pain":        "Most back pain is muscular, from strain, posture, or lifting, and improves within a few weeks. Stay gently active, apply heat, and use simple pain relief as needed. See a doctor promptly for pain after trauma, numbness in the groin, leg weakness, or loss of bladder or bowel control.",
	"joint pain":       "Joint pain can follow overuse, minor injury, or early arthritis. Relative rest, ice or heat, and gradual return to activity usually help. Seek review if a joint is hot, swollen, and red, if pain follows significant injury, or if it persists beyond a few weeks.",
	"muscle ache":      "Muscle aches commonly follow unaccustomed exercise, viral illness, or tension. Gentle stretching, hydration, warmth, and rest usually resolve them within days. See a doctor if aches are severe, persistent, or accompanied by dark urine or marked weakness.",
	"stomach pain":     "Stomach pain is often caused by indigestion, gas, constipation, or a mild stomach bug. Small bland meals, fluids, and a warm compress usually ease it. Seek urgent care for severe or worsening pain, pain with fever and vomiting, or a rigid, tender abdomen.",
	"abdominal pain":   "Abdominal pain has many benign causes including trapped gas, indigestion, and constipation. Rest, fluids, and light food often settle mild cases. Get urgent assessment for severe pain, pain localizing to the lower right side, pain with fever or repeated vomiting, or blood in stool.",
	"chills":           "Chills usually accompany the onset of fever during infection. Keep warm, hydrate, and monitor your temperature. Seek care if chills persist, recur with high fever, or follow travel to a region with malaria.",
	"sweating":         "Excess sweating can be due to heat, exertion, anxiety, fever, or hormonal changes. Light clothing, hydration, and cooling measures help. See a doctor for drenching night sweats, sweating with weight loss, or sweating with chest discomfort.",
	"swelling":         "Mild swelling often follows minor injury, prolonged standing, or salt intake. Elevation, gentle movement, and compression usually help. Seek prompt care for sudden one-sided leg swelling, swelling with breathlessness, or swelling of the face and lips.",
	"itching":          "Itching commonly comes from dry skin, irritants, or mild allergy. Moisturizers, cool compresses, and antihistamines usually relieve it. See a doctor if itching is widespread, persistent beyond two weeks, or paired with jaundice or weight loss.",
	"numbness":         "Temporary numbness often results from pressure on a nerve or poor circulation in one position. Changing position and gentle movement normally restore feeling. Seek urgent care for sudden numbness on one side of the body, facial drooping, or numbness with weakness or speech difficulty.",
	"loss of appetite": "A short-lived loss of appetite often accompanies colds, stress, or minor stomach upsets. Small frequent meals and fluids help until it returns. Seek advice if appetite does not recover within a week, or if it comes with weight loss, fever, or persistent pain.",
	"weakness":         "General weakness often follows poor sleep, dehydration, skipped meals, or recovering illness. Rest, fluids, and regular balanced meals usually restore energy. Seek care urgently if weakness is sudden, one-sided, or accompanied by speech or vision changes.",
	"anxiety":          "Feelings of anxiety are common under stress and often ease with regular exercise, reduced caffeine, breathing exercises, and good sleep. Talking with someone you trust also helps. If anxiety is persistent, interferes with daily life, or brings thoughts of self-harm, seek professional support promptly.",
	"sneezing":         "Frequent sneezing usually points to a cold or allergic rhinitis. Avoiding triggers, saline rinses, and antihistamines typically help. See a doctor if sneezing is accompanied by wheeze, persistent sinus pain, or symptoms lasting beyond two weeks.",
}

// keysByLength caches the table keys sorted longest first, so that
// overlapping keys ("abdominal pain" vs "pain") resolve to the most
// specific match deterministically.
var keysByLength = func() []string {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// Lookup finds the most specific symptom key contained in text.
// Case-insensitive substring match.
func Lookup(text string) (Entry, bool) {
	lower := strings.ToLower(text)
	for _, key := range keysByLength {
		if strings.Contains(lower, key) {
			return Entry{Key: key, Advice: entries[key]}, true
		}
	}
	return Entry{}, false
}

// Entries returns a copy of the full table, for seeding the knowledge base.
func Entries() map[string]string {
	out := make(map[string]string, len(entries))
	for k, v := range entries {
		out[k] = v
	}
	return out
}

// BuildReport converts a fallback entry into a HealthReport. Both the
// shortcut path and the degradation paths go through this single
// constructor so they cannot drift apart. The alreadyDiscussed variant is
// used when the same symptom appeared in a recent user turn.
func BuildReport(entry Entry, alreadyDiscussed bool) *clinical.HealthReport {
	report := &clinical.HealthReport{
		InformationText:    entry.Advice,
		PossibleConditions: []string{"Common, self-limiting causes are most likely; see the guidance above."},
		ConfidenceLabel:    "general guidance",
		Sources: []clinical.KnowledgeSource{
			{Source: "Curated symptom guide", Description: "Static clinical guidance for common symptoms"},
		},
	}

	if alreadyDiscussed {
		report.Reasoning = "You mentioned " + entry.Key + " recently as well. Since the symptom is still present, monitoring how it develops matters more than the initial advice."
		report.NextSteps = []string{
			"Keep a simple note of when the " + entry.Key + " occurs and how severe it feels.",
			"If it has persisted or worsened since you last mentioned it, arrange a medical review rather than waiting further.",
		}
	} else {
		report.Reasoning = "Your message mentions " + entry.Key + ", a common symptom with well-understood self-care guidance."
		report.NextSteps = []string{
			"Follow the self-care steps above and monitor for the red-flag signs described.",
			"Consult a healthcare provider if the symptom persists, worsens, or red-flag signs appear.",
		}
	}

	return report
}
