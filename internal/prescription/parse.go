// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prescription turns a consultation transcript into a structured
// prescription document using a battery of independent extraction rules.
//
// The parser is total: it never fails, and a field whose pattern is absent
// from the text is simply left empty. Extraction is deterministic; the
// only non-determinism (timestamps, document IDs) lives in the assembly
// hooks so the rules stay testable.
// Implements: docs/ARCHITECTURE § Prescription Parser.
package prescription

import (
	"time"

	"github.com/google/uuid"

	"github.com/1-arjayabalan-0/doc-prescription/internal/transcript"
	"github.com/1-arjayabalan-0/doc-prescription/pkg/types"
)

// Options configure document assembly. The zero value uses the wall clock
// and random UUIDs, which is what production callers want; tests inject
// fixed hooks.
type Options struct {
	// Provider is the prescriber name. When set, a "Prescribed by" suffix
	// is appended to the document notes.
	Provider string

	// Now supplies the timestamp stamped into CreatedAt and UpdatedAt.
	Now func() time.Time

	// NewID supplies the document identifier.
	NewID func() string
}

// Parse normalizes the utterances into one text blob and extracts a
// prescription document from it. The input order is preserved; speaker
// labels and timestamps are ignored by every extraction rule.
func Parse(utterances []types.Utterance, opts Options) *types.PrescriptionDocument {
	return ParseText(transcript.Normalize(utterances), opts)
}

// ParseText extracts a prescription document from an already-normalized
// text blob. Each field extractor runs independently against the full
// text; no extractor's failure affects any other.
func ParseText(text string, opts Options) *types.PrescriptionDocument {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	newID := uuid.NewString
	if opts.NewID != nil {
		newID = opts.NewID
	}

	ts := now()
	doc := &types.PrescriptionDocument{
		ID:           newID(),
		Patient:      extractDemographics(text),
		History:      extractHistory(text),
		Vitals:       extractVitals(text),
		Examination:  extractExamination(text),
		Diagnosis:    extractDiagnosis(text),
		Symptoms:     extractSymptoms(text),
		Medications:  extractMedications(text),
		Instructions: extractInstructions(text),
		Summary:      extractSummary(text),
		Notes:        firstMatch(text, notesRules),
		Provider:     opts.Provider,
		CreatedAt:    ts,
		UpdatedAt:    ts,
		Version:      1,
	}

	if opts.Provider != "" {
		suffix := "Prescribed by " + opts.Provider
		if doc.Notes == "" {
			doc.Notes = suffix
		} else {
			doc.Notes += "\n\n" + suffix
		}
	}

	return doc
}
