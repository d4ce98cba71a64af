// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1-arjayabalan-0/doc-prescription/pkg/types"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFromText(t *testing.T) {
	text := `Doctor: Good morning. What brings you in?
Patient: I've had a fever for two days.
Dr - Let me check your temperature.

Just a bare line with no speaker.`

	tr := FromText(text)
	require.Len(t, tr.Utterances, 4)

	assert.Equal(t, types.SpeakerDoctor, tr.Utterances[0].Speaker)
	assert.Equal(t, "Good morning. What brings you in?", tr.Utterances[0].Text)

	assert.Equal(t, types.SpeakerPatient, tr.Utterances[1].Speaker)
	assert.Equal(t, "I've had a fever for two days.", tr.Utterances[1].Text)

	// "Dr" with a dash separator still counts as the doctor.
	assert.Equal(t, types.SpeakerDoctor, tr.Utterances[2].Speaker)
	assert.Equal(t, "Let me check your temperature.", tr.Utterances[2].Text)

	assert.Equal(t, types.SpeakerUnknown, tr.Utterances[3].Speaker)
	assert.Equal(t, "Just a bare line with no speaker.", tr.Utterances[3].Text)
}

func TestFromTextDropsEmptyUtterances(t *testing.T) {
	tr := FromText("Doctor:\n\n   \nPatient: Hello.")
	require.Len(t, tr.Utterances, 1)
	assert.Equal(t, "Hello.", tr.Utterances[0].Text)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "consult.yaml", `utterances:
  - speaker: doctor
    text: How can I help you today?
    start_ms: 0
    end_ms: 2100
    confidence: 0.97
  - speaker: patient
    text: I have a sore throat.
    start_ms: 2300
    end_ms: 4000
    confidence: 0.93
`)

	tr, err := Load(path)
	require.NoError(t, err)
	require.Len(t, tr.Utterances, 2)
	assert.Equal(t, types.SpeakerDoctor, tr.Utterances[0].Speaker)
	assert.Equal(t, int64(2100), tr.Utterances[0].EndMs)
	assert.Equal(t, "I have a sore throat.", tr.Utterances[1].Text)
}

func TestLoadYAMLBareList(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bare.yml", `- speaker: patient
  text: My chest hurts.
`)

	tr, err := Load(path)
	require.NoError(t, err)
	require.Len(t, tr.Utterances, 1)
	assert.Equal(t, types.SpeakerPatient, tr.Utterances[0].Speaker)
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "consult.json",
		`{"utterances":[{"speaker":"doctor","text":"Take this twice daily.","start_ms":0,"end_ms":1500,"confidence":0.9}]}`)

	tr, err := Load(path)
	require.NoError(t, err)
	require.Len(t, tr.Utterances, 1)
	assert.Equal(t, "Take this twice daily.", tr.Utterances[0].Text)
}

func TestLoadPlainText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "consult.txt", "Doctor: Hello.\nPatient: Hi.")

	tr, err := Load(path)
	require.NoError(t, err)
	require.Len(t, tr.Utterances, 2)
	assert.Equal(t, types.SpeakerPatient, tr.Utterances[1].Speaker)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.yaml", "::: not yaml {{{")

	_, err := Load(path)
	require.Error(t, err)
}

func TestRead(t *testing.T) {
	tr, err := Read(strings.NewReader("Doctor: Any allergies?\nPatient: Penicillin."))
	require.NoError(t, err)
	require.Len(t, tr.Utterances, 2)
	assert.Equal(t, "Any allergies?", tr.Utterances[0].Text)
}

func TestWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.yaml")

	in := &types.Transcript{Utterances: []types.Utterance{
		{Speaker: types.SpeakerDoctor, Text: "Follow up in two weeks.", StartMs: 100, EndMs: 2500, Confidence: 0.88},
	}}
	require.NoError(t, Write(path, in))

	out, err := Load(path)
	require.NoError(t, err)
	require.Len(t, out.Utterances, 1)
	assert.Equal(t, in.Utterances[0], out.Utterances[0])
}
