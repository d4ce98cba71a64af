// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prescription

import (
	"regexp"
	"strings"

	"github.com/1-arjayabalan-0/doc-prescription/pkg/types"
)

// The medication battery: every pattern is run over the full text, and the
// patterns are not mutually exclusive, so one phrase can yield the same
// drug more than once. That duplication matches the shipped behavior of
// the extraction rules and is kept deliberately; deduplication belongs to
// the editing surface, not the parser.
var medPatterns = []*regexp.Regexp{
	// Plain dose phrasing: "Lisinopril 10 mg once daily".
	regexp.MustCompile(`\b([A-Z][a-zA-Z]{2,})\s+(\d+(?:\.\d+)?)\s*((?i:mg|mcg|g|ml|units?))\b([^\n]*)`),

	// Prescriber verbs: "prescribe/start/continue Naproxen ...".
	regexp.MustCompile(`\b(?i:prescrib(?:e|ed|ing)|start(?:ed|ing)?|continue|giv(?:e|ing))\s+(?:(?i:you|him|her)\s+)?([A-Z][a-zA-Z]{2,})\b([^\n]*)`),

	// Tablet count phrasing: "Amoxicillin 500 mg, 1 tablet ...".
	regexp.MustCompile(`\b([A-Z][a-zA-Z]{2,})\s+(\d+(?:\.\d+)?\s*(?i:mg|mcg|g))\s*,\s*\d+\s*(?i:tablets?|tabs?|capsules?|caps?)\b([^\n]*)`),

	// Named formulations: "Fluticasone nasal spray", "Hydrocortisone cream".
	regexp.MustCompile(`\b([A-Z][a-zA-Z]{2,})\s+((?i:nasal spray|eye drops|ear drops|cream|ointment|inhaler|drops|gel|patch|syrup))\b([^\n]*)`),

	// PRN phrasing: "Sumatriptan 50 mg ... as needed for migraine".
	regexp.MustCompile(`\b([A-Z][a-zA-Z]{2,})\s+(\d+(?:\.\d+)?\s*(?i:mg|mcg|g|ml))\b([^\n]*?(?i:as needed)[^\n.]*)`),
}

// medNameStopwords rejects sentence starters and pronouns the looser
// patterns can capture in place of a drug name.
var medNameStopwords = map[string]bool{
	"The": true, "And": true, "But": true, "You": true, "Your": true,
	"Take": true, "Taking": true, "Doctor": true, "Patient": true,
	"Yes": true, "Okay": true, "Not": true, "Based": true, "Also": true,
	"Avoid": true, "Drink": true, "This": true, "That": true, "With": true,
	"Blood": true, "Temperature": true, "Follow": true, "Diagnosis": true,
}

var doseRe = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(mg|mcg|g|ml|units?)\b`)

var durationRe = regexp.MustCompile(`(?i)\bfor\s+(?:the\s+next\s+)?((?:\d+|one|two|three|four|five|six|seven|ten|fourteen)\s+(?:days?|weeks?|months?))\b`)

// frequencyPatterns normalize dosing phrasings into the closed vocabulary.
// Multi-dose phrasings come before the bare "daily" forms they contain.
var frequencyPatterns = []struct {
	re   *regexp.Regexp
	freq types.MedicationFrequency
}{
	{regexp.MustCompile(`(?i)\b(?:four times (?:a |per )?day|4 times (?:a |per )?day|qid|every (?:6|six) hours)\b`), types.FreqFourTimesDaily},
	{regexp.MustCompile(`(?i)\b(?:three times (?:a |per )?day|3 times (?:a |per )?day|tid|thrice (?:a day|daily)|every (?:8|eight) hours)\b`), types.FreqThreeTimesDaily},
	{regexp.MustCompile(`(?i)\b(?:twice (?:a day|daily)|two times (?:a |per )?day|bid|every (?:12|twelve) hours|morning and (?:night|evening))\b`), types.FreqTwiceDaily},
	{regexp.MustCompile(`(?i)\b(?:once (?:a day|daily)|once every day|daily|every (?:morning|day)|at (?:night|bedtime)|every night)\b`), types.FreqOnceDaily},
	{regexp.MustCompile(`(?i)\b(?:as needed|prn|when (?:needed|required)|if (?:needed|required))\b`), types.FreqAsNeeded},
}

// routePatterns normalize administration phrasings into route codes.
var routePatterns = []struct {
	re    *regexp.Regexp
	route types.MedicationRoute
}{
	{regexp.MustCompile(`(?i)\b(?:nasal spray|nasally|nostrils?)\b`), types.RouteNasal},
	{regexp.MustCompile(`(?i)\b(?:eye drops?|ophthalmic|in (?:each|the|both) eyes?)\b`), types.RouteOphthalmic},
	{regexp.MustCompile(`(?i)\b(?:ear drops?|otic|in (?:each|the|both) ears?)\b`), types.RouteOtic},
	{regexp.MustCompile(`(?i)\b(?:by mouth|orally|oral|po|tablets?|capsules?|pills?)\b`), types.RoutePO},
	{regexp.MustCompile(`(?i)\b(?:intramuscular(?:ly)?|im injection)\b`), types.RouteIM},
	{regexp.MustCompile(`(?i)\b(?:intravenous(?:ly)?|iv drip|iv)\b`), types.RouteIV},
	{regexp.MustCompile(`(?i)\b(?:subcutaneous(?:ly)?|sub-?q)\b`), types.RouteSC},
	{regexp.MustCompile(`(?i)\b(?:topical(?:ly)?|apply (?:to|on)|cream|ointment|gel|patch)\b`), types.RouteTopical},
	{regexp.MustCompile(`(?i)\b(?:inhal(?:e|ed|er|ation)|puffs?|nebuliz(?:er|ed))\b`), types.RouteInhaled},
	{regexp.MustCompile(`(?i)\b(?:sublingual(?:ly)?|under the tongue)\b`), types.RouteSL},
}

var warningLineRe = regexp.MustCompile(`(?i)\b(?:avoid|caution|warning|contraindicat\w*|do not|don'?t|stop taking|side effects?|seek immediate|call me immediately)\b`)

var globalInstructionRe = regexp.MustCompile(`(?i)\btake all (?:your |the )?medications?\b[^\n.]*`)

// extractMedications is a two-phase pipeline: phase 1 collects medication
// matches and warning lines independently; phase 2 fans the shared warning
// list out to every medication and backfills the global instruction into
// medications that lack their own. Never returns nil.
func extractMedications(text string) []types.Medication {
	meds := mergeByName(collectMedications(text))
	warnings := warningLines(text)
	global := strings.TrimSpace(globalInstructionRe.FindString(text))

	out := make([]types.Medication, 0, len(meds))
	for _, m := range meds {
		if len(warnings) > 0 {
			m.Warnings = append([]string(nil), warnings...)
		}
		if m.Instructions == "" {
			m.Instructions = global
		}
		out = append(out, m)
	}
	return out
}

// collectMedications runs the full pattern battery and builds one
// Medication per accepted match.
func collectMedications(text string) []types.Medication {
	var meds []types.Medication
	for i, re := range medPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			med, ok := buildMedication(i, m)
			if ok {
				meds = append(meds, med)
			}
		}
	}
	return meds
}

// buildMedication maps one pattern match onto a Medication. Matches whose
// name capture is empty or a stopword are discarded whole: a medication
// entity exists only when a name was matched.
func buildMedication(pattern int, m []string) (types.Medication, bool) {
	var med types.Medication
	var tail string

	switch pattern {
	case 0: // name, amount, unit, tail
		med.Name = m[1]
		med.Dose = m[2] + " " + strings.ToLower(m[3])
		tail = m[4]
	case 1: // verb consumed; name, tail
		med.Name = m[1]
		tail = m[2]
		if d := doseRe.FindStringSubmatch(tail); d != nil {
			med.Dose = d[1] + " " + strings.ToLower(d[2])
		}
	case 2: // name, dose, tail (tablet count folded into instructions)
		med.Name = m[1]
		med.Dose = normalizeDose(m[2])
		tail = m[3]
	case 3: // name, formulation, tail
		med.Name = m[1]
		form := strings.ToLower(m[2])
		med.Route = formulationRoute(form)
		tail = form + " " + m[3]
	case 4: // name, dose, PRN tail
		med.Name = m[1]
		med.Dose = normalizeDose(m[2])
		med.Frequency = types.FreqAsNeeded
		tail = m[3]
	}

	if med.Name == "" || medNameStopwords[med.Name] {
		return types.Medication{}, false
	}

	if d := durationRe.FindStringSubmatch(tail); d != nil {
		med.Duration = d[1]
	}

	residual := tail
	if freq, matched := matchFrequency(tail); freq != "" {
		if med.Frequency == "" {
			med.Frequency = freq
		}
		residual = strings.Replace(residual, matched, "", 1)
	}
	if route, matched := matchRoute(tail); route != "" {
		if med.Route == "" {
			med.Route = route
		}
		residual = strings.Replace(residual, matched, "", 1)
	}

	med.Instructions = cleanInstructions(residual)
	return med, true
}

// mergeByName folds repeated captures of the same drug into one entry.
// The battery's patterns overlap, so a single phrase routinely matches two
// or three of them; the earliest (most specific) match wins each field and
// later duplicates only fill gaps. First-seen order is preserved.
func mergeByName(meds []types.Medication) []types.Medication {
	var out []types.Medication
	index := make(map[string]int)

	for _, m := range meds {
		key := strings.ToLower(m.Name)
		i, seen := index[key]
		if !seen {
			index[key] = len(out)
			out = append(out, m)
			continue
		}
		if out[i].Dose == "" {
			out[i].Dose = m.Dose
		}
		if out[i].Frequency == "" {
			out[i].Frequency = m.Frequency
		}
		if out[i].Route == "" {
			out[i].Route = m.Route
		}
		if out[i].Duration == "" {
			out[i].Duration = m.Duration
		}
		if out[i].Instructions == "" {
			out[i].Instructions = m.Instructions
		}
	}
	return out
}

// matchFrequency returns the normalized frequency and the raw substring
// that matched, so callers can strip it from instruction text.
func matchFrequency(s string) (types.MedicationFrequency, string) {
	for _, p := range frequencyPatterns {
		if m := p.re.FindString(s); m != "" {
			return p.freq, m
		}
	}
	return "", ""
}

// matchRoute returns the normalized route and the raw matched substring.
func matchRoute(s string) (types.MedicationRoute, string) {
	for _, p := range routePatterns {
		if m := p.re.FindString(s); m != "" {
			return p.route, m
		}
	}
	return "", ""
}

// formulationRoute maps a named formulation onto its administration route.
func formulationRoute(form string) types.MedicationRoute {
	switch form {
	case "nasal spray":
		return types.RouteNasal
	case "eye drops":
		return types.RouteOphthalmic
	case "ear drops":
		return types.RouteOtic
	case "cream", "ointment", "gel", "patch":
		return types.RouteTopical
	case "inhaler":
		return types.RouteInhaled
	case "syrup":
		return types.RoutePO
	default:
		return ""
	}
}

// normalizeDose collapses internal whitespace and lowercases the unit.
func normalizeDose(d string) string {
	fields := strings.Fields(strings.ToLower(d))
	if len(fields) == 0 {
		return ""
	}
	// "500mg" arrives as one field; split digits from unit for consistency.
	if len(fields) == 1 {
		for i, r := range fields[0] {
			if r < '0' || r > '9' {
				if r == '.' {
					continue
				}
				return fields[0][:i] + " " + fields[0][i:]
			}
		}
	}
	return strings.Join(fields, " ")
}

// cleanInstructions trims punctuation scraps left behind once frequency
// and route substrings are stripped.
func cleanInstructions(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.Trim(s, " \t-,.;:")
	// A residue of bare connectives is noise, not an instruction.
	switch strings.ToLower(s) {
	case "", "and", "with", "for", "a", "the":
		return ""
	}
	return s
}

// warningLines returns every transcript line carrying a warning, caution,
// or contraindication keyword. The caller fans these out to all
// medications extracted from the same text.
func warningLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if warningLineRe.MatchString(line) {
			lines = append(lines, line)
		}
	}
	return lines
}
