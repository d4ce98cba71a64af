// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders parsed prescription documents for the CLI:
// machine-readable JSON/YAML and a human-readable prescription sheet.
// Implements: docs/ARCHITECTURE § Output Rendering.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/1-arjayabalan-0/doc-prescription/pkg/types"
)

// Write renders doc to w in the requested format.
func Write(w io.Writer, doc *types.PrescriptionDocument, format types.OutputFormat) error {
	switch format {
	case types.OutputJSON, "":
		return WriteJSON(w, doc)
	case types.OutputYAML:
		return WriteYAML(w, doc)
	case types.OutputText:
		return WriteText(w, doc)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteJSON renders the document as indented JSON.
func WriteJSON(w io.Writer, doc *types.PrescriptionDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// WriteYAML renders the document as YAML.
func WriteYAML(w io.Writer, doc *types.PrescriptionDocument) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return nil
}

// WriteText renders a human-readable prescription sheet. Empty sections
// are omitted entirely rather than printed with placeholders.
func WriteText(w io.Writer, doc *types.PrescriptionDocument) error {
	var b strings.Builder

	b.WriteString("PRESCRIPTION\n")
	fmt.Fprintf(&b, "Document %s  v%d  %s\n", doc.ID, doc.Version, doc.CreatedAt.Format("2006-01-02 15:04"))
	if doc.Provider != "" {
		fmt.Fprintf(&b, "Prescriber: %s\n", doc.Provider)
	}

	if p := doc.Patient; p != nil {
		b.WriteString("\nPatient\n")
		writeField(&b, "Name", p.Name)
		if p.Age > 0 {
			fmt.Fprintf(&b, "  Age: %d\n", p.Age)
		}
		writeField(&b, "Gender", p.Gender)
		if c := p.Contact; c != nil {
			writeField(&b, "Phone", c.Phone)
			writeField(&b, "Email", c.Email)
			writeField(&b, "Address", c.Address)
		}
	}

	if v := doc.Vitals; v != nil {
		b.WriteString("\nVitals\n")
		writeField(&b, "Blood pressure", v.BloodPressure)
		writeField(&b, "Heart rate", v.HeartRate)
		writeField(&b, "Respiratory rate", v.RespiratoryRate)
		writeField(&b, "Temperature", v.Temperature)
		writeField(&b, "SpO2", v.SpO2)
	}

	if h := doc.History; h != nil {
		b.WriteString("\nHistory\n")
		writeList(&b, "Past conditions", h.PastConditions)
		writeList(&b, "Allergies", h.Allergies)
		writeList(&b, "Current medications", h.CurrentMedications)
	}

	if len(doc.Symptoms) > 0 {
		b.WriteString("\nSymptoms\n")
		for _, s := range doc.Symptoms {
			line := "  - " + s.Name
			if s.Severity != "" {
				line += ", " + s.Severity
			}
			if s.Duration != "" {
				line += ", for " + s.Duration
			}
			b.WriteString(line + "\n")
		}
	}

	if len(doc.Examination) > 0 {
		b.WriteString("\nExamination\n")
		for _, f := range doc.Examination {
			if f.System != "" {
				fmt.Fprintf(&b, "  - %s: %s\n", f.System, f.Description)
			} else {
				fmt.Fprintf(&b, "  - %s\n", f.Description)
			}
		}
	}

	if d := doc.Diagnosis; d != nil {
		b.WriteString("\nDiagnosis\n")
		writeField(&b, "Primary", d.Primary)
		writeList(&b, "Differentials", d.Differentials)
	}

	b.WriteString("\nMedications\n")
	if len(doc.Medications) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, m := range doc.Medications {
		line := "  Rx " + m.Name
		for _, part := range []string{m.Dose, string(m.Frequency), string(m.Route), m.Duration} {
			if part != "" {
				line += " | " + part
			}
		}
		b.WriteString(line + "\n")
		if m.Instructions != "" {
			fmt.Fprintf(&b, "     %s\n", m.Instructions)
		}
		for _, warn := range m.Warnings {
			fmt.Fprintf(&b, "     ! %s\n", warn)
		}
	}

	if ins := doc.Instructions; ins != nil {
		b.WriteString("\nInstructions\n")
		writeList(&b, "General", ins.General)
		writeList(&b, "Precautions", ins.Precautions)
	}

	if s := doc.Summary; s != nil {
		b.WriteString("\nSummary\n")
		writeField(&b, "Overview", s.Overview)
		writeList(&b, "Key findings", s.KeyFindings)
		writeList(&b, "Decisions", s.Decisions)
		writeField(&b, "Follow-up", s.FollowUp)
		writeField(&b, "Special instructions", s.SpecialInstructions)
	}

	if doc.Notes != "" {
		b.WriteString("\nNotes\n  " + strings.ReplaceAll(doc.Notes, "\n", "\n  ") + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "  %s: %s\n", label, value)
}

func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s:\n", label)
	for _, item := range items {
		fmt.Fprintf(b, "    - %s\n", item)
	}
}
