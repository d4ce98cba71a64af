// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcript handles consultation transcripts: joining utterances
// into parseable text, loading transcript files, and labeling speakers.
// Implements: docs/ARCHITECTURE § Transcript Handling.
package transcript

import (
	"strings"

	"github.com/1-arjayabalan-0/doc-prescription/pkg/types"
)

// Normalize joins the trimmed, non-empty utterance texts into a single
// blob, one utterance per line, preserving order. Speaker labels are not
// embedded: every extraction rule downstream is speaker-agnostic.
// Whitespace-only utterances are dropped silently.
func Normalize(utterances []types.Utterance) string {
	lines := make([]string, 0, len(utterances))
	for _, u := range utterances {
		text := strings.TrimSpace(u.Text)
		if text == "" {
			continue
		}
		lines = append(lines, text)
	}
	return strings.Join(lines, "\n")
}
