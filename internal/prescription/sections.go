// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prescription

import (
	"regexp"
	"strings"
)

// headerLineRe matches a header-like line: a capitalized word followed by
// letters or spaces and a colon or dash. This is the section-boundary
// heuristic shared by every list extractor. A clinical sentence that
// happens to start with a capitalized word and a colon will falsely
// terminate a block; see docs/ARCHITECTURE § Known Limitations.
var headerLineRe = regexp.MustCompile(`^[A-Z][A-Za-z\s]*[:\-]`)

// listSplitRe separates block bodies into fragments.
var listSplitRe = regexp.MustCompile(`[\n;.,]`)

// findNextSectionBoundary returns the byte offset of the start of the
// first header-like line strictly after the line containing from, or
// len(text) when no such line exists. All block extraction goes through
// this one primitive so the boundary heuristic can later be swapped for a
// real section segmenter without touching the field extractors.
func findNextSectionBoundary(text string, from int) int {
	nl := strings.IndexByte(text[from:], '\n')
	if nl < 0 {
		return len(text)
	}

	pos := from + nl + 1
	for pos < len(text) {
		end := strings.IndexByte(text[pos:], '\n')
		var line string
		if end < 0 {
			line = text[pos:]
			end = len(text) - pos
		} else {
			line = text[pos : pos+end]
		}
		if headerLineRe.MatchString(line) {
			return pos
		}
		pos += end + 1
	}
	return len(text)
}

// blockAfter locates the first match of heading in text and returns the
// block body: everything from just after the heading match up to the next
// section boundary. The second return is false when the heading is absent.
func blockAfter(text string, heading *regexp.Regexp) (string, bool) {
	loc := heading.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	end := findNextSectionBoundary(text, loc[1])
	return text[loc[1]:end], true
}

// splitList breaks a block body into trimmed, non-empty fragments, the
// shape every list-valued field uses.
func splitList(block string) []string {
	var items []string
	for _, frag := range listSplitRe.Split(block, -1) {
		frag = strings.TrimSpace(frag)
		frag = strings.TrimLeft(frag, "-• \t")
		if frag == "" {
			continue
		}
		items = append(items, frag)
	}
	return items
}

// listSection extracts the list under the first occurrence of heading,
// or nil when the heading is absent.
func listSection(text string, heading *regexp.Regexp) []string {
	block, ok := blockAfter(text, heading)
	if !ok {
		return nil
	}
	return splitList(block)
}
