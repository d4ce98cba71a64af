// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcript

import (
	"strings"

	"github.com/1-arjayabalan-0/doc-prescription/pkg/types"
)

// Indicator phrases for content-based speaker identification. Scoring is a
// plain substring count over the lowercased utterance, so multi-word
// phrases are deliberately kept short.
var (
	doctorIndicators = []string{
		"how can i help", "what brings you", "symptoms", "diagnosis",
		"prescribe", "prescribing", "medication", "treatment", "examine",
		"clinical", "follow up", "recommend", "advise", "suggest",
		"take this", "let me check", "examination", "test results",
		"blood pressure", "heart rate", "temperature", "i recommend",
		"you should", "your condition", "medical history",
	}

	patientIndicators = []string{
		"i have", "i feel", "i've been", "i'm feeling", "i need",
		"pain", "hurt", "sick", "unwell", "problem", "concern",
		"appointment", "thank you, doctor", "suffering", "headache",
		"fever", "cough", "ache", "nausea", "dizzy", "my doctor",
	}
)

// Identify labels a single utterance text as doctor or patient by scoring
// it against the indicator lists. Ties (including no hits at all) fall back
// to alternation by utterance index: even indices read as the doctor, who
// conventionally opens the consultation.
func Identify(text string, index int) types.Speaker {
	lower := strings.ToLower(text)

	var doctorScore, patientScore int
	for _, ind := range doctorIndicators {
		if strings.Contains(lower, ind) {
			doctorScore++
		}
	}
	for _, ind := range patientIndicators {
		if strings.Contains(lower, ind) {
			patientScore++
		}
	}

	switch {
	case doctorScore > patientScore:
		return types.SpeakerDoctor
	case patientScore > doctorScore:
		return types.SpeakerPatient
	case index%2 == 0:
		return types.SpeakerDoctor
	default:
		return types.SpeakerPatient
	}
}

// Diarize returns a copy of the utterances with unknown speakers replaced
// by content-identified labels. Utterances that already carry a doctor or
// patient label are left untouched.
func Diarize(utterances []types.Utterance) []types.Utterance {
	out := make([]types.Utterance, len(utterances))
	for i, u := range utterances {
		out[i] = u
		if u.Speaker == types.SpeakerDoctor || u.Speaker == types.SpeakerPatient {
			continue
		}
		out[i].Speaker = Identify(u.Text, i)
	}
	return out
}
