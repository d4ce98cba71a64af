// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prescription

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/1-arjayabalan-0/doc-prescription/pkg/types"
)

// extractDemographics assembles the optional demographic fields. Each is
// matched independently; the object exists when any of them did.
func extractDemographics(text string) *types.PatientDemographics {
	d := types.PatientDemographics{
		Name:    firstMatch(text, nameRules),
		Gender:  normalizeGender(firstMatch(text, genderRules)),
		Contact: extractContact(text),
	}
	if age := firstMatch(text, ageRules); age != "" {
		d.Age, _ = strconv.Atoi(age)
	}

	if d.Name == "" && d.Age == 0 && d.Gender == "" && d.Contact == nil {
		return nil
	}
	return &d
}

// extractHistory collects past conditions, allergies, and current
// medications. Presence of any list yields the object.
func extractHistory(text string) *types.MedicalHistory {
	h := types.MedicalHistory{
		PastConditions:     listSection(text, pastConditionsHeading),
		Allergies:          listSection(text, allergiesHeading),
		CurrentMedications: listSection(text, currentMedsHeading),
	}

	// Conversational allergy statements never form a heading.
	for _, m := range allergicToRe.FindAllStringSubmatch(text, -1) {
		for _, frag := range splitAnd(m[1]) {
			if !containsFold(h.Allergies, frag) {
				h.Allergies = append(h.Allergies, frag)
			}
		}
	}

	if h.IsZero() {
		return nil
	}
	return &h
}

// splitAnd breaks "penicillin, sulfa and aspirin" into its parts.
func splitAnd(s string) []string {
	var parts []string
	for _, p := range regexp.MustCompile(`(?i)\s*(?:,|\band\b)\s*`).Split(s, -1) {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

// extractDiagnosis returns the primary diagnosis plus differentials, or
// nil when neither was matched.
func extractDiagnosis(text string) *types.Diagnosis {
	d := types.Diagnosis{
		Primary:       firstMatch(text, diagnosisRules),
		Differentials: listSection(text, differentialsHeading),
	}
	if d.IsZero() {
		return nil
	}
	return &d
}

// findingLineRe splits a "System: description" examination line.
var findingLineRe = regexp.MustCompile(`^([A-Za-z][A-Za-z\s]{0,29}?)\s*[:\-]\s*(.+)$`)

// examStopRe matches lines that open a different recognized section,
// ending the examination block. The generic boundary heuristic cannot be
// used here: "Chest: clear breath sounds" is itself header-shaped and
// would end the block at its own first line.
var examStopRe = regexp.MustCompile(`(?i)^\s*(?:diagnosis|notes?|allerg(?:y|ies)|(?:current\s+)?medications?|plan|decisions?|instructions?|precautions?|follow[\s-]?up|summary|vitals?|(?:past\s+)?medical\s+history)\b\s*[:\-]`)

// extractExamination yields one finding per non-empty line from the
// examination heading down to the next recognized section heading. Lines
// with a short leading "System:" prefix carry it as the body system; bare
// lines are description only.
func extractExamination(text string) []types.ExaminationFinding {
	loc := examinationHeading.FindStringIndex(text)
	if loc == nil {
		return nil
	}

	var findings []types.ExaminationFinding
	for _, line := range strings.Split(text[loc[1]:], "\n") {
		if examStopRe.MatchString(line) {
			break
		}
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-• \t")
		if line == "" {
			continue
		}
		if m := findingLineRe.FindStringSubmatch(line); m != nil {
			findings = append(findings, types.ExaminationFinding{
				System:      strings.TrimSpace(m[1]),
				Description: strings.TrimSpace(m[2]),
			})
			continue
		}
		findings = append(findings, types.ExaminationFinding{Description: line})
	}
	return findings
}

// extractInstructions collects the general and precaution lists.
func extractInstructions(text string) *types.PrescriptionInstructions {
	p := types.PrescriptionInstructions{
		General:     listSection(text, instructionsHeading),
		Precautions: listSection(text, precautionsHeading),
	}
	if p.IsZero() {
		return nil
	}
	return &p
}

// extractSummary assembles the consultation summary; every field is
// independent and optional.
func extractSummary(text string) *types.ConsultationSummary {
	s := types.ConsultationSummary{
		Overview:            firstMatch(text, overviewRules),
		KeyFindings:         listSection(text, keyFindingsHeading),
		Decisions:           listSection(text, decisionsHeading),
		FollowUp:            firstMatch(text, followUpRules),
		SpecialInstructions: firstMatch(text, specialInstructionRules),
	}
	if s.IsZero() {
		return nil
	}
	return &s
}
