// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// Speaker labels who produced an utterance. The parser itself is
// speaker-agnostic; labels exist so transcripts can round-trip through
// the diarizer and the editing surfaces unchanged.
type Speaker string

const (
	SpeakerDoctor  Speaker = "doctor"
	SpeakerPatient Speaker = "patient"
	SpeakerUnknown Speaker = "unknown"
)

// ParseSpeaker maps a free-form label to a Speaker, defaulting to unknown.
func ParseSpeaker(s string) Speaker {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "doctor", "dr", "physician", "provider":
		return SpeakerDoctor
	case "patient":
		return SpeakerPatient
	default:
		return SpeakerUnknown
	}
}

// Utterance is one timestamped segment of transcribed speech, supplied by
// an external transcription source in chronological order (non-decreasing
// StartMs). Speaker and timestamps are carried through unchanged so the
// parser can be dropped into the larger pipeline without reshaping input.
type Utterance struct {
	// Speaker is the diarized speaker label.
	Speaker Speaker `json:"speaker" yaml:"speaker"`

	// Text is the transcribed utterance text.
	Text string `json:"text" yaml:"text"`

	// StartMs is the utterance start offset in milliseconds.
	StartMs int64 `json:"start_ms" yaml:"start_ms"`

	// EndMs is the utterance end offset in milliseconds.
	EndMs int64 `json:"end_ms" yaml:"end_ms"`

	// Confidence is the transcription confidence in [0, 1].
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// Transcript is the on-disk representation of a consultation recording's
// transcribed utterances.
type Transcript struct {
	// Utterances holds the transcript segments in chronological order.
	Utterances []Utterance `json:"utterances" yaml:"utterances"`
}
