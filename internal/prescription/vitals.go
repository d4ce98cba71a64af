// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prescription

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/1-arjayabalan-0/doc-prescription/pkg/types"
)

// Each vital sign is independently anchored; any one match is enough to
// produce the VitalSigns object. Values keep their original formatting.
var (
	bpSlashRe = regexp.MustCompile(`\b(\d{2,3})\s*/\s*(\d{2,3})\b`)
	bpOverRe  = regexp.MustCompile(`(?i)\b(?:blood pressure|bp)(?:\s+is)?(?:\s+at)?\s+(\d{2,3})\s+over\s+(\d{2,3})\b`)

	hrBpmRe   = regexp.MustCompile(`(?i)\b(\d{2,3})\s*bpm\b`)
	hrLabelRe = regexp.MustCompile(`(?i)\b(?:heart rate|pulse)(?:\s+is)?(?:\s+at)?\s*[:\-]?\s*(\d{2,3})\b`)

	rrUnitRe  = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(?:breaths?\s*(?:/|per\s+)min(?:ute)?|/\s*min)\b`)
	rrLabelRe = regexp.MustCompile(`(?i)\brespiratory rate(?:\s+is)?\s*[:\-]?\s*(\d{1,2})\b`)

	tempUnitRe  = regexp.MustCompile(`(?i)\b(\d{2,3}(?:\.\d+)?)\s*(?:°\s*)?(?:degrees\s+)?(?:f(?:ahrenheit)?|c(?:elsius)?)\b`)
	tempLabelRe = regexp.MustCompile(`(?i)\btemperature(?:\s+is)?(?:\s+normal)?(?:\s+at)?\s*[:\-]?\s*(\d{2,3}(?:\.\d+)?)\b`)

	spo2Re = regexp.MustCompile(`(?i)\b(?:spo2|oxygen saturation|sats?)\s*(?:is\s+)?[:\-]?\s*(\d{2,3})\s*%`)
	pctRe  = regexp.MustCompile(`\b(\d{2,3})\s*%`)
)

// extractVitals matches each vital sign independently and returns the
// object only when at least one was found.
func extractVitals(text string) *types.VitalSigns {
	v := types.VitalSigns{}

	if m := bpSlashRe.FindStringSubmatch(text); m != nil {
		v.BloodPressure = m[1] + "/" + m[2]
	} else if m := bpOverRe.FindStringSubmatch(text); m != nil {
		v.BloodPressure = m[1] + "/" + m[2]
	}

	if m := hrBpmRe.FindStringSubmatch(text); m != nil {
		v.HeartRate = m[1] + " bpm"
	} else if m := hrLabelRe.FindStringSubmatch(text); m != nil {
		v.HeartRate = m[1] + " bpm"
	}

	if m := rrUnitRe.FindStringSubmatch(text); m != nil {
		v.RespiratoryRate = m[1] + " breaths/min"
	} else if m := rrLabelRe.FindStringSubmatch(text); m != nil {
		v.RespiratoryRate = m[1] + " breaths/min"
	}

	if m := tempUnitRe.FindStringSubmatch(text); m != nil {
		v.Temperature = fmt.Sprintf("%s %s", m[1], temperatureUnit(text))
	} else if m := tempLabelRe.FindStringSubmatch(text); m != nil {
		v.Temperature = fmt.Sprintf("%s %s", m[1], temperatureUnit(text))
	}

	if m := spo2Re.FindStringSubmatch(text); m != nil {
		v.SpO2 = m[1] + "%"
	} else if m := pctRe.FindStringSubmatch(text); m != nil {
		v.SpO2 = m[1] + "%"
	}

	if v.IsZero() {
		return nil
	}
	return &v
}

// temperatureUnit infers Celsius when the literal substring " C" occurs
// anywhere in the text, Fahrenheit otherwise. Ambiguous when both units
// appear; preserved as documented behavior, not fixed.
func temperatureUnit(text string) string {
	if strings.Contains(text, " C") {
		return "C"
	}
	return "F"
}
