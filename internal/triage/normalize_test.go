package triage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triagePayload = `{"category":"Emergency","reason":"r","doctor":"Cardiologist","remedy":"Not Applicable"}`

func TestStripCodeFence(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\":1}\n```":  `{"a":1}`,
		"```\n{\"a\":1}\n```":      `{"a":1}`,
		"  {\"a\":1}  ":            `{"a":1}`,
		"```json\n{\"a\":1}\n```s": "{\"a\":1}\n```s", // trailing fence must terminate the text
	}
	for raw, want := range cases {
		assert.Equal(t, want, StripCodeFence(raw), "raw: %q", raw)
	}
}

func TestParseTriageFenced(t *testing.T) {
	got, err := ParseTriage("```json\n" + triagePayload + "\n```")
	require.NoError(t, err)
	assert.Equal(t, TriageResult{
		Category: "Emergency",
		Reason:   "r",
		Doctor:   "Cardiologist",
		Remedy:   "Not Applicable",
	}, got)
}

func TestParseTriageFenceIdempotent(t *testing.T) {
	fenced, err := ParseTriage("```json\n" + triagePayload + "\n```")
	require.NoError(t, err)
	bare, err := ParseTriage(triagePayload)
	require.NoError(t, err)
	assert.Equal(t, bare, fenced)
}

func TestParseTriageMalformed(t *testing.T) {
	for _, raw := range []string{
		`{"category":"Emergency",}`, // trailing comma
		`{"category":"Emergency"`,   // unclosed brace
		"The patient should see a doctor immediately.",
		"",
	} {
		_, err := ParseTriage(raw)
		var perr *ParseError
		require.ErrorAs(t, err, &perr, "raw: %q", raw)
		assert.Equal(t, StripCodeFence(raw), perr.Cleaned)
	}
}

func TestParseTriageMissingField(t *testing.T) {
	_, err := ParseTriage(`{"category":"Emergency","reason":"r","doctor":"Cardiologist"}`)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Error(), "remedy")
}

func TestParseFollowUp(t *testing.T) {
	got, err := ParseFollowUp("```json\n{\"follow_up_questions\":[\"How long?\",\"Any cough?\",\"Any chills?\"]}\n```")
	require.NoError(t, err)
	assert.Equal(t, []string{"How long?", "Any cough?", "Any chills?"}, got.Questions)
	assert.False(t, got.NoFurtherQuestions())
}

func TestParseFollowUpIncomplete(t *testing.T) {
	got, err := ParseFollowUp(`{"follow_up_questions":["Only one question?"]}`)
	require.ErrorIs(t, err, ErrIncomplete)
	// The partial list is still usable.
	assert.Equal(t, []string{"Only one question?"}, got.Questions)
}

func TestParseFollowUpSentinel(t *testing.T) {
	got, err := ParseFollowUp(`{"follow_up_questions":["No further questions required."]}`)
	require.NoError(t, err)
	assert.True(t, got.NoFurtherQuestions())

	got, err = ParseFollowUp(`{"follow_up_questions":[]}`)
	require.NoError(t, err)
	assert.True(t, got.NoFurtherQuestions())
}

func TestParseFollowUpMissingKey(t *testing.T) {
	_, err := ParseFollowUp(`{"questions":["a","b"]}`)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParseNeverPanics(t *testing.T) {
	inputs := []string{
		"```", "``````", "```json", "{", "[", "null", "42", `"quoted"`,
		"```json\n\n```", "\x00\xff", `{"follow_up_questions":"not a list"}`,
	}
	for _, raw := range inputs {
		assert.NotPanics(t, func() {
			_, _ = ParseTriage(raw)
			_, _ = ParseFollowUp(raw)
		}, "raw: %q", raw)
	}
}

func TestParseFollowUpWrappedError(t *testing.T) {
	_, err := ParseFollowUp("not json at all")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.True(t, errors.Is(err, perr.Err))
	assert.Equal(t, "not json at all", perr.Cleaned)
}
