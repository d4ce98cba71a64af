// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prescription

import (
	"regexp"
	"strings"

	"github.com/1-arjayabalan-0/doc-prescription/pkg/types"
)

var (
	phoneRe = regexp.MustCompile(`(?i)\b(?:phone|contact)(?:\s+(?:number|no\.?))?\s*[:\-]?\s*(\+?\d[\d\s().-]{6,}\d)`)

	// emailRe is deliberately unanchored: an address is taken from anywhere
	// in the text, not just near a contact label.
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	addressRe = regexp.MustCompile(`(?i)\baddress\s*[:\-]\s*([^\n]+)`)
)

// extractContact matches phone, email, and address independently and
// returns nil when none were found.
func extractContact(text string) *types.ContactDetails {
	c := types.ContactDetails{}

	if m := phoneRe.FindStringSubmatch(text); m != nil {
		c.Phone = strings.TrimSpace(m[1])
	}
	c.Email = emailRe.FindString(text)
	if m := addressRe.FindStringSubmatch(text); m != nil {
		c.Address = strings.TrimSpace(m[1])
	}

	if c.IsZero() {
		return nil
	}
	return &c
}
