// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prescription

import (
	"reflect"
	"testing"

	"github.com/1-arjayabalan-0/doc-prescription/pkg/types"
)

func TestExtractHistory(t *testing.T) {
	text := "I'm also allergic to penicillin and sulfa drugs.\n" +
		"Past medical history: hypertension, asthma\n" +
		"Current medications: amlodipine"

	h := extractHistory(text)
	if h == nil {
		t.Fatal("extractHistory returned nil")
	}

	if want := []string{"hypertension", "asthma"}; !reflect.DeepEqual(h.PastConditions, want) {
		t.Errorf("PastConditions = %v, want %v", h.PastConditions, want)
	}
	if want := []string{"amlodipine"}; !reflect.DeepEqual(h.CurrentMedications, want) {
		t.Errorf("CurrentMedications = %v, want %v", h.CurrentMedications, want)
	}
	if want := []string{"penicillin", "sulfa drugs"}; !reflect.DeepEqual(h.Allergies, want) {
		t.Errorf("Allergies = %v, want %v", h.Allergies, want)
	}
}

func TestExtractHistoryDeduplicatesAllergies(t *testing.T) {
	text := "Allergies: penicillin\nDiagnosis: flu\nYes, I am allergic to Penicillin."

	h := extractHistory(text)
	if h == nil {
		t.Fatal("extractHistory returned nil")
	}
	if len(h.Allergies) != 1 {
		t.Errorf("Allergies = %v, want one entry", h.Allergies)
	}
}

func TestExtractHistoryAbsent(t *testing.T) {
	if h := extractHistory("nothing medical was discussed"); h != nil {
		t.Errorf("want nil, got %+v", h)
	}
}

func TestExtractExamination(t *testing.T) {
	text := "Examination: \nChest - clear breath sounds\nAbdomen: soft, non-tender\nno visible rash"

	findings := extractExamination(text)
	if len(findings) == 0 {
		t.Fatal("no findings extracted")
	}

	if findings[0].System != "Chest" || findings[0].Description != "clear breath sounds" {
		t.Errorf("findings[0] = %+v", findings[0])
	}
	if findings[1].System != "Abdomen" {
		t.Errorf("findings[1] = %+v", findings[1])
	}
}

func TestExtractExaminationAbsent(t *testing.T) {
	if f := extractExamination("no exam block here"); f != nil {
		t.Errorf("want nil, got %+v", f)
	}
}

func TestExtractContact(t *testing.T) {
	text := "Phone: 98765 43210\nyou can reach me at rahul.mehta@example.com\nAddress: 12 Green Park Lane"

	c := extractContact(text)
	if c == nil {
		t.Fatal("extractContact returned nil")
	}
	if c.Phone != "98765 43210" {
		t.Errorf("Phone = %q", c.Phone)
	}
	if c.Email != "rahul.mehta@example.com" {
		t.Errorf("Email = %q", c.Email)
	}
	if c.Address != "12 Green Park Lane" {
		t.Errorf("Address = %q", c.Address)
	}
}

func TestExtractContactAbsent(t *testing.T) {
	if c := extractContact("no contact details were shared"); c != nil {
		t.Errorf("want nil, got %+v", c)
	}
}

func TestExtractSymptoms(t *testing.T) {
	text := "I've had a severe headache for two days.\nAlso some nausea this morning."

	symptoms := extractSymptoms(text)

	byName := make(map[string]types.Symptom)
	for _, s := range symptoms {
		byName[s.Name] = s
	}

	h, ok := byName["headache"]
	if !ok {
		t.Fatalf("headache missing: %+v", symptoms)
	}
	if h.Severity != "severe" {
		t.Errorf("headache severity = %q, want severe", h.Severity)
	}
	if h.Duration != "two days" {
		t.Errorf("headache duration = %q, want %q", h.Duration, "two days")
	}

	if _, ok := byName["nausea"]; !ok {
		t.Errorf("nausea missing: %+v", symptoms)
	}
	// Duration belongs to the headache line only.
	if n := byName["nausea"]; n.Duration != "" {
		t.Errorf("nausea duration = %q, want empty", n.Duration)
	}
}

func TestExtractSymptomsSeverityPhrases(t *testing.T) {
	symptoms := extractSymptoms("The cough has been really bad since Monday.")

	if len(symptoms) != 1 || symptoms[0].Name != "cough" {
		t.Fatalf("symptoms = %+v", symptoms)
	}
	if symptoms[0].Severity != "severe" {
		t.Errorf("severity = %q, want severe", symptoms[0].Severity)
	}
}

func TestExtractSymptomsNone(t *testing.T) {
	if s := extractSymptoms("everything looks fine today"); s != nil {
		t.Errorf("want nil, got %+v", s)
	}
}

func TestExtractSummary(t *testing.T) {
	text := "Chief complaint: recurring morning headaches\n" +
		"Key findings: elevated blood pressure\n" +
		"Plan: start antihypertensive, lifestyle changes\n" +
		"Follow-up: 2 weeks\n" +
		"Special instructions: keep a headache diary"

	s := extractSummary(text)
	if s == nil {
		t.Fatal("extractSummary returned nil")
	}
	if s.Overview != "recurring morning headaches" {
		t.Errorf("Overview = %q", s.Overview)
	}
	if want := []string{"elevated blood pressure"}; !reflect.DeepEqual(s.KeyFindings, want) {
		t.Errorf("KeyFindings = %v, want %v", s.KeyFindings, want)
	}
	if want := []string{"start antihypertensive", "lifestyle changes"}; !reflect.DeepEqual(s.Decisions, want) {
		t.Errorf("Decisions = %v, want %v", s.Decisions, want)
	}
	if s.FollowUp != "2 weeks" {
		t.Errorf("FollowUp = %q, want %q", s.FollowUp, "2 weeks")
	}
	if s.SpecialInstructions != "keep a headache diary" {
		t.Errorf("SpecialInstructions = %q", s.SpecialInstructions)
	}
}

func TestSplitAnd(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"penicillin, sulfa and aspirin", []string{"penicillin", "sulfa", "aspirin"}},
		{"dust", []string{"dust"}},
		{"", nil},
	}
	for _, tt := range tests {
		if got := splitAnd(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitAnd(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
