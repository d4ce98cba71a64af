// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prescription

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/1-arjayabalan-0/doc-prescription/internal/transcript"
	"github.com/1-arjayabalan-0/doc-prescription/pkg/types"
)

// fixedOpts pins the assembly hooks so documents compare equal.
func fixedOpts() Options {
	return Options{
		Now:   func() time.Time { return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC) },
		NewID: func() string { return "doc-0001" },
	}
}

func TestParseEmptyInput(t *testing.T) {
	doc := Parse(nil, fixedOpts())

	if doc == nil {
		t.Fatal("Parse returned nil")
	}
	if doc.Medications == nil {
		t.Error("Medications is nil, want empty slice")
	}
	if len(doc.Medications) != 0 {
		t.Errorf("got %d medications from empty input", len(doc.Medications))
	}
	if doc.Patient != nil || doc.History != nil || doc.Vitals != nil ||
		doc.Diagnosis != nil || doc.Instructions != nil || doc.Summary != nil {
		t.Errorf("empty input produced populated sections: %+v", doc)
	}
	if doc.Version != 1 {
		t.Errorf("Version = %d, want 1", doc.Version)
	}
	if doc.ID != "doc-0001" {
		t.Errorf("ID = %q", doc.ID)
	}
	if !doc.CreatedAt.Equal(doc.UpdatedAt) {
		t.Errorf("CreatedAt %v != UpdatedAt %v", doc.CreatedAt, doc.UpdatedAt)
	}
}

func TestParseDeterministic(t *testing.T) {
	utterances := []types.Utterance{
		{Text: "Patient John Smith, 45 years old."},
		{Text: "Prescribe Lisinopril 10 mg once daily."},
	}

	a := Parse(utterances, fixedOpts())
	b := Parse(utterances, fixedOpts())
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated parses differ:\n%+v\n%+v", a, b)
	}
}

func TestParseDefaultHooks(t *testing.T) {
	doc := Parse(nil, Options{})
	if doc.ID == "" {
		t.Error("default NewID produced an empty ID")
	}
	if doc.CreatedAt.IsZero() {
		t.Error("default Now produced a zero timestamp")
	}
}

func TestParseHypertensionConsult(t *testing.T) {
	utterances := []types.Utterance{
		{Speaker: types.SpeakerDoctor, Text: "Patient John Smith, 45 years old, male."},
		{Speaker: types.SpeakerDoctor, Text: "Blood pressure is 140 over 90."},
		{Speaker: types.SpeakerPatient, Text: "I'm allergic to penicillin."},
		{Speaker: types.SpeakerDoctor, Text: "Diagnosis: Hypertension"},
		{Speaker: types.SpeakerDoctor, Text: "Prescribe Lisinopril 10 mg once daily."},
		{Speaker: types.SpeakerDoctor, Text: "Follow up in 2 weeks."},
	}

	doc := Parse(utterances, fixedOpts())

	if doc.Patient == nil {
		t.Fatal("Patient is nil")
	}
	if doc.Patient.Name != "John Smith" {
		t.Errorf("Name = %q, want %q", doc.Patient.Name, "John Smith")
	}
	if doc.Patient.Age != 45 {
		t.Errorf("Age = %d, want 45", doc.Patient.Age)
	}
	if doc.Patient.Gender != "male" {
		t.Errorf("Gender = %q, want male", doc.Patient.Gender)
	}

	if doc.Vitals == nil || doc.Vitals.BloodPressure != "140/90" {
		t.Errorf("Vitals = %+v, want blood pressure 140/90", doc.Vitals)
	}

	if doc.History == nil || len(doc.History.Allergies) != 1 || doc.History.Allergies[0] != "penicillin" {
		t.Errorf("History = %+v, want allergies [penicillin]", doc.History)
	}

	if doc.Diagnosis == nil || doc.Diagnosis.Primary != "Hypertension" {
		t.Errorf("Diagnosis = %+v, want primary Hypertension", doc.Diagnosis)
	}

	if len(doc.Medications) != 1 {
		t.Fatalf("got %d medications, want 1: %+v", len(doc.Medications), doc.Medications)
	}
	m := doc.Medications[0]
	if m.Name != "Lisinopril" || m.Dose != "10 mg" || m.Frequency != types.FreqOnceDaily {
		t.Errorf("medication = %+v", m)
	}

	if doc.Summary == nil || doc.Summary.FollowUp != "2 weeks" {
		t.Errorf("Summary = %+v, want follow-up %q", doc.Summary, "2 weeks")
	}
}

func TestParseProviderSuffix(t *testing.T) {
	opts := fixedOpts()
	opts.Provider = "Dr. A. Rao"

	doc := Parse([]types.Utterance{{Text: "Take rest."}}, opts)
	if doc.Notes != "Prescribed by Dr. A. Rao" {
		t.Errorf("Notes = %q", doc.Notes)
	}
	if doc.Provider != "Dr. A. Rao" {
		t.Errorf("Provider = %q", doc.Provider)
	}
}

func TestParseProviderSuffixAppendsToNotes(t *testing.T) {
	opts := fixedOpts()
	opts.Provider = "Dr. A. Rao"

	doc := Parse([]types.Utterance{{Text: "Notes: patient anxious about side effects"}}, opts)
	if !strings.HasPrefix(doc.Notes, "patient anxious about side effects") {
		t.Errorf("Notes = %q, want extracted note first", doc.Notes)
	}
	if !strings.HasSuffix(doc.Notes, "Prescribed by Dr. A. Rao") {
		t.Errorf("Notes = %q, want provider suffix last", doc.Notes)
	}
}

func TestParseViralFeverSample(t *testing.T) {
	text, err := transcript.Sample("viral-fever")
	if err != nil {
		t.Fatal(err)
	}
	tr := transcript.FromText(text)
	doc := Parse(tr.Utterances, fixedOpts())

	if doc.Patient == nil || doc.Patient.Name != "Rahul Mehta" {
		t.Errorf("Patient = %+v, want name Rahul Mehta", doc.Patient)
	}
	if doc.Patient != nil && doc.Patient.Age != 32 {
		t.Errorf("Age = %d, want 32", doc.Patient.Age)
	}

	if doc.Diagnosis == nil || doc.Diagnosis.Primary != "Acute Viral Pharyngitis" {
		t.Errorf("Diagnosis = %+v, want Acute Viral Pharyngitis", doc.Diagnosis)
	}

	if doc.Vitals == nil || !strings.HasPrefix(doc.Vitals.Temperature, "101") {
		t.Errorf("Vitals = %+v, want a 101-degree temperature", doc.Vitals)
	}

	names := make(map[string]bool)
	for _, m := range doc.Medications {
		names[m.Name] = true
	}
	if !names["Paracetamol"] || !names["Cetrizine"] {
		t.Errorf("medications = %+v, want Paracetamol and Cetrizine", doc.Medications)
	}

	// The fluids-and-rest advice line carries "avoid", so it fans out to
	// every medication as a warning.
	for _, m := range doc.Medications {
		found := false
		for _, w := range m.Warnings {
			if strings.Contains(w, "avoid cold drinks") {
				found = true
			}
		}
		if !found {
			t.Errorf("%s missing the avoid-cold-drinks warning: %v", m.Name, m.Warnings)
		}
	}

	symptoms := make(map[string]types.Symptom)
	for _, s := range doc.Symptoms {
		symptoms[s.Name] = s
	}
	if s, ok := symptoms["fever"]; !ok || s.Duration != "three days" {
		t.Errorf("fever symptom = %+v, want duration %q", s, "three days")
	}
	if _, ok := symptoms["sore throat"]; !ok {
		t.Errorf("symptoms = %+v, want sore throat present", doc.Symptoms)
	}

	if doc.Summary == nil || !strings.Contains(doc.Summary.FollowUp, "3 days") {
		t.Errorf("Summary = %+v, want follow-up mentioning 3 days", doc.Summary)
	}
}

func TestParseTensionHeadacheSample(t *testing.T) {
	text, err := transcript.Sample("tension-headache")
	if err != nil {
		t.Fatal(err)
	}
	tr := transcript.FromText(text)
	doc := Parse(tr.Utterances, fixedOpts())

	if doc.Patient == nil || doc.Patient.Name != "Sarah Martinez" || doc.Patient.Age != 28 {
		t.Errorf("Patient = %+v, want Sarah Martinez, 28", doc.Patient)
	}

	if doc.Vitals == nil || doc.Vitals.BloodPressure != "135/85" {
		t.Errorf("Vitals = %+v, want blood pressure 135/85", doc.Vitals)
	}

	if doc.Diagnosis == nil || !strings.HasPrefix(doc.Diagnosis.Primary, "tension headaches") {
		t.Errorf("Diagnosis = %+v, want tension headaches", doc.Diagnosis)
	}

	byName := make(map[string]types.Medication)
	for _, m := range doc.Medications {
		byName[m.Name] = m
	}

	suma, ok := byName["Sumatriptan"]
	if !ok {
		t.Fatalf("Sumatriptan missing: %+v", doc.Medications)
	}
	if suma.Dose != "50 mg" || suma.Frequency != types.FreqAsNeeded {
		t.Errorf("Sumatriptan = %+v", suma)
	}

	napro, ok := byName["Naproxen"]
	if !ok {
		t.Fatalf("Naproxen missing: %+v", doc.Medications)
	}
	if napro.Dose != "500 mg" || napro.Frequency != types.FreqTwiceDaily || napro.Duration != "7 days" {
		t.Errorf("Naproxen = %+v", napro)
	}

	// Both drugs pick up the consultation's caution lines.
	for _, m := range []types.Medication{suma, napro} {
		if len(m.Warnings) == 0 {
			t.Errorf("%s has no warnings", m.Name)
		}
	}
}

func TestParseTextSpeakerAgnostic(t *testing.T) {
	// The same words produce the same document no matter who said them.
	a := Parse([]types.Utterance{{Speaker: types.SpeakerDoctor, Text: "Prescribe Naproxen 250 mg twice daily."}}, fixedOpts())
	b := Parse([]types.Utterance{{Speaker: types.SpeakerPatient, Text: "Prescribe Naproxen 250 mg twice daily."}}, fixedOpts())
	if !reflect.DeepEqual(a, b) {
		t.Errorf("speaker labels changed the parse:\n%+v\n%+v", a, b)
	}
}
