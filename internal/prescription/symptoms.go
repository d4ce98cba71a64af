// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prescription

import (
	"regexp"
	"strings"

	"github.com/1-arjayabalan-0/doc-prescription/pkg/types"
)

// symptomKeywords is the complaint battery. Order fixes the output order;
// each entry matches whole words including simple plurals.
var symptomKeywords = []struct {
	name string
	re   *regexp.Regexp
}{
	{"headache", regexp.MustCompile(`(?i)\bheadaches?\b`)},
	{"fever", regexp.MustCompile(`(?i)\bfevers?\b`)},
	{"cough", regexp.MustCompile(`(?i)\bcough(?:ing)?\b`)},
	{"sore throat", regexp.MustCompile(`(?i)\bsore throat\b`)},
	{"fatigue", regexp.MustCompile(`(?i)\b(?:fatigue|tiredness)\b`)},
	{"nausea", regexp.MustCompile(`(?i)\bnause(?:a|ous)\b`)},
	{"dizziness", regexp.MustCompile(`(?i)\bdizz(?:y|iness)\b`)},
	{"body ache", regexp.MustCompile(`(?i)\bbody (?:aches?|pains?)\b`)},
	{"chest pain", regexp.MustCompile(`(?i)\bchest (?:pain|discomfort)\b`)},
	{"shortness of breath", regexp.MustCompile(`(?i)\b(?:shortness of breath|breathing trouble|difficulty breathing)\b`)},
	{"rash", regexp.MustCompile(`(?i)\brash(?:es)?\b`)},
	{"swelling", regexp.MustCompile(`(?i)\bswelling\b`)},
	{"congestion", regexp.MustCompile(`(?i)\b(?:congestion|runny nose)\b`)},
	{"vomiting", regexp.MustCompile(`(?i)\bvomit(?:ing)?\b`)},
	{"pain", regexp.MustCompile(`(?i)\bpains?\b`)},
}

var symptomDurationRe = regexp.MustCompile(`(?i)\bfor (?:the (?:past|last) )?((?:\d+|a|one|two|three|four|five|six|seven|several|few)\s+(?:hours?|days?|weeks?|months?))\b`)

var severityRe = regexp.MustCompile(`(?i)\b(mild|moderate|severe|really bad|very bad)\b`)

// extractSymptoms runs the complaint battery over the text. Duration and
// severity are read from the line carrying the keyword's first occurrence,
// so unrelated phrasings elsewhere in the transcript do not attach.
func extractSymptoms(text string) []types.Symptom {
	var symptoms []types.Symptom
	for _, kw := range symptomKeywords {
		loc := kw.re.FindStringIndex(text)
		if loc == nil {
			continue
		}

		line := lineAround(text, loc[0])
		s := types.Symptom{Name: kw.name}
		if m := symptomDurationRe.FindStringSubmatch(line); m != nil {
			s.Duration = m[1]
		}
		if m := severityRe.FindStringSubmatch(line); m != nil {
			s.Severity = normalizeSeverity(m[1])
		}
		symptoms = append(symptoms, s)
	}
	return symptoms
}

// lineAround returns the full line of text containing byte offset pos.
func lineAround(text string, pos int) string {
	start := strings.LastIndexByte(text[:pos], '\n') + 1
	end := strings.IndexByte(text[pos:], '\n')
	if end < 0 {
		return text[start:]
	}
	return text[start : pos+end]
}

func normalizeSeverity(s string) string {
	switch strings.ToLower(s) {
	case "really bad", "very bad":
		return "severe"
	default:
		return strings.ToLower(s)
	}
}
