// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ContactDetails holds whatever contact information was spoken during the
// consultation. All fields optional.
type ContactDetails struct {
	Phone   string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email   string `json:"email,omitempty" yaml:"email,omitempty"`
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
}

// IsZero reports whether no contact field was extracted.
func (c ContactDetails) IsZero() bool {
	return c.Phone == "" && c.Email == "" && c.Address == ""
}

// PatientDemographics holds identifying details mentioned in conversation.
// Every field is independently extractable; absence is valid.
type PatientDemographics struct {
	Name    string          `json:"name,omitempty" yaml:"name,omitempty"`
	Age     int             `json:"age,omitempty" yaml:"age,omitempty"`
	Gender  string          `json:"gender,omitempty" yaml:"gender,omitempty"`
	Contact *ContactDetails `json:"contact,omitempty" yaml:"contact,omitempty"`
}

// VitalSigns holds measurements read out during the consultation. Values
// are kept as formatted strings rather than parsed numbers so the original
// units and phrasing survive into the document.
type VitalSigns struct {
	BloodPressure   string `json:"blood_pressure,omitempty" yaml:"blood_pressure,omitempty"`
	HeartRate       string `json:"heart_rate,omitempty" yaml:"heart_rate,omitempty"`
	RespiratoryRate string `json:"respiratory_rate,omitempty" yaml:"respiratory_rate,omitempty"`
	Temperature     string `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	SpO2            string `json:"spo2,omitempty" yaml:"spo2,omitempty"`
}

// IsZero reports whether no vital sign was matched.
func (v VitalSigns) IsZero() bool {
	return v == VitalSigns{}
}

// MedicalHistory holds the patient's background as free-text fragments.
type MedicalHistory struct {
	PastConditions     []string `json:"past_conditions,omitempty" yaml:"past_conditions,omitempty"`
	Allergies          []string `json:"allergies,omitempty" yaml:"allergies,omitempty"`
	CurrentMedications []string `json:"current_medications,omitempty" yaml:"current_medications,omitempty"`
}

// IsZero reports whether every history list is empty.
func (h MedicalHistory) IsZero() bool {
	return len(h.PastConditions) == 0 && len(h.Allergies) == 0 && len(h.CurrentMedications) == 0
}

// ExaminationFinding is one line of a detected examination block, with an
// optional body-system prefix ("Chest: clear breath sounds").
type ExaminationFinding struct {
	System      string `json:"system,omitempty" yaml:"system,omitempty"`
	Description string `json:"description" yaml:"description"`
}

// Diagnosis holds the primary diagnosis and any differentials discussed.
type Diagnosis struct {
	Primary       string   `json:"primary,omitempty" yaml:"primary,omitempty"`
	Differentials []string `json:"differentials,omitempty" yaml:"differentials,omitempty"`
}

// IsZero reports whether no diagnosis was extracted.
func (d Diagnosis) IsZero() bool {
	return d.Primary == "" && len(d.Differentials) == 0
}

// Symptom is a complaint detected in the transcript, with duration and
// severity where the conversation phrased them.
type Symptom struct {
	Name     string `json:"name" yaml:"name"`
	Duration string `json:"duration,omitempty" yaml:"duration,omitempty"`
	Severity string `json:"severity,omitempty" yaml:"severity,omitempty"`
}

// MedicationFrequency is the closed vocabulary dosing frequencies are
// normalized into. Raw matched text never appears on a Medication.
type MedicationFrequency string

const (
	FreqOnceDaily       MedicationFrequency = "Once daily"
	FreqTwiceDaily      MedicationFrequency = "Twice daily"
	FreqThreeTimesDaily MedicationFrequency = "Three times daily"
	FreqFourTimesDaily  MedicationFrequency = "Four times daily"
	FreqAsNeeded        MedicationFrequency = "As needed (PRN)"
)

// MedicationRoute is the closed vocabulary administration routes are
// normalized into.
type MedicationRoute string

const (
	RoutePO         MedicationRoute = "PO"
	RouteIM         MedicationRoute = "IM"
	RouteIV         MedicationRoute = "IV"
	RouteSC         MedicationRoute = "SC"
	RouteTopical    MedicationRoute = "Topical"
	RouteInhaled    MedicationRoute = "Inhaled"
	RouteSL         MedicationRoute = "SL"
	RouteNasal      MedicationRoute = "Nasal"
	RouteOphthalmic MedicationRoute = "Ophthalmic"
	RouteOtic       MedicationRoute = "Otic"
)

// Medication is one prescribed drug. Name is the only required field: a
// pattern match that fails to capture a name never yields a Medication.
type Medication struct {
	Name         string              `json:"name" yaml:"name"`
	Dose         string              `json:"dose,omitempty" yaml:"dose,omitempty"`
	Frequency    MedicationFrequency `json:"frequency,omitempty" yaml:"frequency,omitempty"`
	Route        MedicationRoute     `json:"route,omitempty" yaml:"route,omitempty"`
	Duration     string              `json:"duration,omitempty" yaml:"duration,omitempty"`
	Instructions string              `json:"instructions,omitempty" yaml:"instructions,omitempty"`
	Warnings     []string            `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// PrescriptionInstructions holds consultation-wide guidance.
type PrescriptionInstructions struct {
	General     []string `json:"general,omitempty" yaml:"general,omitempty"`
	Precautions []string `json:"precautions,omitempty" yaml:"precautions,omitempty"`
}

// IsZero reports whether both instruction lists are empty.
func (p PrescriptionInstructions) IsZero() bool {
	return len(p.General) == 0 && len(p.Precautions) == 0
}

// ConsultationSummary holds the narrative wrap-up of the visit. Each field
// is independently extracted and optional.
type ConsultationSummary struct {
	Overview            string   `json:"overview,omitempty" yaml:"overview,omitempty"`
	KeyFindings         []string `json:"key_findings,omitempty" yaml:"key_findings,omitempty"`
	Decisions           []string `json:"decisions,omitempty" yaml:"decisions,omitempty"`
	FollowUp            string   `json:"follow_up,omitempty" yaml:"follow_up,omitempty"`
	SpecialInstructions string   `json:"special_instructions,omitempty" yaml:"special_instructions,omitempty"`
}

// IsZero reports whether nothing was summarized.
func (s ConsultationSummary) IsZero() bool {
	return s.Overview == "" && len(s.KeyFindings) == 0 && len(s.Decisions) == 0 &&
		s.FollowUp == "" && s.SpecialInstructions == ""
}

// PrescriptionDocument is the aggregate produced by one parse of a
// consultation transcript. Optional sections are pointers so a document
// serializes without placeholder values; Medications is always non-nil.
//
// Version starts at 1 and is only ever incremented by the document editor,
// never by the parser.
type PrescriptionDocument struct {
	// ID is a unique identifier assigned at assembly time.
	ID string `json:"id" yaml:"id"`

	Patient      *PatientDemographics      `json:"patient,omitempty" yaml:"patient,omitempty"`
	History      *MedicalHistory           `json:"history,omitempty" yaml:"history,omitempty"`
	Vitals       *VitalSigns               `json:"vitals,omitempty" yaml:"vitals,omitempty"`
	Examination  []ExaminationFinding      `json:"examination,omitempty" yaml:"examination,omitempty"`
	Diagnosis    *Diagnosis                `json:"diagnosis,omitempty" yaml:"diagnosis,omitempty"`
	Symptoms     []Symptom                 `json:"symptoms,omitempty" yaml:"symptoms,omitempty"`
	Medications  []Medication              `json:"medications" yaml:"medications"`
	Instructions *PrescriptionInstructions `json:"instructions,omitempty" yaml:"instructions,omitempty"`
	Summary      *ConsultationSummary      `json:"summary,omitempty" yaml:"summary,omitempty"`

	// Notes is free text carried alongside the structured fields. When a
	// prescriber name is supplied at parse time a "Prescribed by" suffix
	// is appended here.
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`

	// Provider is the prescriber name supplied by the caller, if any.
	Provider string `json:"provider,omitempty" yaml:"provider,omitempty"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
	Version   int       `json:"version" yaml:"version"`
}
