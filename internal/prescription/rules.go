// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prescription

import (
	"regexp"
	"strings"
)

// rule pairs a compiled pattern with the capture group that carries the
// field value. Single-value fields try their rules in table order and take
// the first match, so explicit labels ("Name:") must precede looser
// phrasings ("Mr. X").
type rule struct {
	re    *regexp.Regexp
	group int
}

// firstMatch runs an ordered rule table against text and returns the first
// non-empty trimmed capture, or "" when nothing matches.
func firstMatch(text string, rules []rule) string {
	for _, r := range rules {
		m := r.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		g := r.group
		if g == 0 {
			g = 1
		}
		if v := strings.TrimSpace(m[g]); v != "" {
			return v
		}
	}
	return ""
}

// Capitalization is load-bearing in several rules below, so (?i) is scoped
// to the literal words rather than applied to the whole expression.
var (
	nameRules = []rule{
		{re: regexp.MustCompile(`(?i)(?:patient(?:'s)?\s+)?name\s*[:\-]\s*([A-Za-z][A-Za-z '-]+)`)},
		{re: regexp.MustCompile(`\bPatient\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`)},
		{re: regexp.MustCompile(`(?:(?i:my name is|i am|i'm|this is))\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`)},
		{re: regexp.MustCompile(`\b(?:Mr|Mrs|Ms|Miss)\.?\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)},
	}

	ageRules = []rule{
		{re: regexp.MustCompile(`(?i)\bage\s*[:\-]\s*(\d{1,3})`)},
		{re: regexp.MustCompile(`(?i)\b(\d{1,3})[\s-]*(?:years?|yrs?)[\s-]*old\b`)},
		{re: regexp.MustCompile(`(?i)\baged\s+(\d{1,3})\b`)},
	}

	genderRules = []rule{
		{re: regexp.MustCompile(`(?i)\b(?:gender|sex)\s*[:\-]\s*(male|female|man|woman|other)`)},
		{re: regexp.MustCompile(`(?i)\b(male|female)\b`)},
		{re: regexp.MustCompile(`(?i)\b(man|woman)\b`)},
	}

	overviewRules = []rule{
		{re: regexp.MustCompile(`(?i)\b(?:overview|chief complaint|presenting complaint)\s*[:\-]\s*([^\n]+)`)},
		{re: regexp.MustCompile(`(?i)\bsummary\s*[:\-]\s*([^\n]+)`)},
	}

	diagnosisRules = []rule{
		{re: regexp.MustCompile(`(?i)\bdiagnosis\s*[:\-]\s*([^\n.;]+)`)},
		{re: regexp.MustCompile(`(?i)\bdiagnosed\s+with\s+([^\n.,;]+)`)},
		{re: regexp.MustCompile(`(?i)\bthis (?:looks like|appears to be)\s+(?:a\s+|an\s+)?([^\n.;]+)`)},
		{re: regexp.MustCompile(`(?i)\bassessment\s*[:\-]\s*([^\n.;]+)`)},
	}

	followUpRules = []rule{
		{re: regexp.MustCompile(`(?i)\bfollow[\s-]?up\s*[:\-]\s*([^\n.;]+)`)},
		{re: regexp.MustCompile(`(?i)\bfollow[\s-]?up\s+(?:appointment\s+)?(?:in|after)\s+([^\n.;]+)`)},
	}

	specialInstructionRules = []rule{
		{re: regexp.MustCompile(`(?i)\bspecial\s+instructions?\s*[:\-]\s*([^\n]+)`)},
	}

	notesRules = []rule{
		{re: regexp.MustCompile(`(?i)\b(?:additional\s+)?notes?\s*[:\-]\s*([^\n]+)`)},
	}
)

// List-section headings. Anchored to line starts so sentences that merely
// mention the word ("your medical history suggests...") do not open a block.
var (
	pastConditionsHeading = regexp.MustCompile(`(?mi)^\s*(?:past\s+medical\s+history|medical\s+history|past\s+conditions?)\s*[:\-]`)
	allergiesHeading      = regexp.MustCompile(`(?mi)^\s*allerg(?:y|ies)\s*[:\-]`)
	currentMedsHeading    = regexp.MustCompile(`(?mi)^\s*current\s+medications?\s*[:\-]`)
	keyFindingsHeading    = regexp.MustCompile(`(?mi)^\s*(?:key\s+)?findings\s*[:\-]`)
	decisionsHeading      = regexp.MustCompile(`(?mi)^\s*(?:decisions?|plan)\s*[:\-]`)
	instructionsHeading   = regexp.MustCompile(`(?mi)^\s*(?:general\s+)?instructions?\s*[:\-]`)
	precautionsHeading    = regexp.MustCompile(`(?mi)^\s*(?:precautions?|warnings?)\s*[:\-]`)
	differentialsHeading  = regexp.MustCompile(`(?mi)^\s*differentials?(?:\s+diagnos[ei]s)?\s*[:\-]`)
	examinationHeading    = regexp.MustCompile(`(?mi)^\s*(?:physical\s+)?exam(?:ination)?(?:\s+findings?)?\s*[:\-]`)
)

// allergicToRe catches conversational allergy statements that never form a
// heading ("I'm allergic to penicillin").
var allergicToRe = regexp.MustCompile(`(?i)\ballergic\s+to\s+([^\n.;?]+)`)

// normalizeGender folds conversational variants into the canonical labels.
func normalizeGender(g string) string {
	switch strings.ToLower(g) {
	case "man":
		return "male"
	case "woman":
		return "female"
	default:
		return strings.ToLower(g)
	}
}
