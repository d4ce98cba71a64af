// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcript

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/1-arjayabalan-0/doc-prescription/pkg/types"
)

// speakerPrefixRe matches an optional leading speaker tag in plain-text
// transcripts, e.g. "Doctor: Good morning." or "Patient - I have a cough."
var speakerPrefixRe = regexp.MustCompile(`^(?i)(doctor|dr|physician|patient)\s*[:\-]\s*(.*)$`)

// Load reads a transcript from path. The format is chosen by extension:
// .yaml/.yml and .json decode a Transcript (or bare utterance list);
// anything else is treated as plain text, one utterance per line, with
// optional "Doctor:"/"Patient:" speaker prefixes.
func Load(path string) (*types.Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading transcript %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return decodeYAML(data)
	case ".json":
		return decodeJSON(data)
	default:
		return FromText(string(data)), nil
	}
}

// Read consumes a plain-text transcript from r, for stdin piping.
func Read(r io.Reader) (*types.Transcript, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading transcript: %w", err)
	}
	return FromText(string(data)), nil
}

func decodeYAML(data []byte) (*types.Transcript, error) {
	var t types.Transcript
	if err := yaml.Unmarshal(data, &t); err == nil && len(t.Utterances) > 0 {
		return &t, nil
	}

	// Fall back to a bare utterance list.
	var utterances []types.Utterance
	if err := yaml.Unmarshal(data, &utterances); err != nil {
		return nil, fmt.Errorf("parsing transcript YAML: %w", err)
	}
	return &types.Transcript{Utterances: utterances}, nil
}

func decodeJSON(data []byte) (*types.Transcript, error) {
	var t types.Transcript
	if err := json.Unmarshal(data, &t); err == nil && len(t.Utterances) > 0 {
		return &t, nil
	}

	var utterances []types.Utterance
	if err := json.Unmarshal(data, &utterances); err != nil {
		return nil, fmt.Errorf("parsing transcript JSON: %w", err)
	}
	return &types.Transcript{Utterances: utterances}, nil
}

// FromText converts a plain-text transcript into utterances, one per
// non-empty line. A recognized speaker prefix is stripped from the text
// and recorded as the utterance's speaker; unprefixed lines are unknown.
// No timestamps are available in this form, so StartMs/EndMs stay zero.
func FromText(text string) *types.Transcript {
	var utterances []types.Utterance
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		u := types.Utterance{Speaker: types.SpeakerUnknown, Text: line}
		if m := speakerPrefixRe.FindStringSubmatch(line); m != nil {
			u.Speaker = types.ParseSpeaker(m[1])
			u.Text = strings.TrimSpace(m[2])
		}
		if u.Text == "" {
			continue
		}
		utterances = append(utterances, u)
	}
	return &types.Transcript{Utterances: utterances}
}

// Write saves a transcript as YAML to path.
func Write(path string, t *types.Transcript) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshaling transcript: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
