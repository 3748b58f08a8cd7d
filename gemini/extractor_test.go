package gemini_test

import (
	"strings"
	"testing"

	"github.com/sailhq/windfind"
	"github.com/sailhq/windfind/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildExtractPrompt(t *testing.T) {
	t.Parallel()

	prompt, err := gemini.BuildExtractPrompt("Rentals from 20 euros per hour.", windfind.NewRecord())

	require.NoError(t, err)
	assert.Contains(t, prompt, `"location_information"`)
	assert.Contains(t, prompt, `"rental_rate_per_hour":null`)
	assert.Contains(t, prompt, "Rentals from 20 euros per hour.")
}

func TestBuildExtractPrompt_TruncatesLongText(t *testing.T) {
	t.Parallel()

	prompt, err := gemini.BuildExtractPrompt(strings.Repeat("x", 100000), windfind.NewRecord())

	require.NoError(t, err)
	assert.Less(t, len(prompt), 30000)
}

func TestParseRecord(t *testing.T) {
	t.Parallel()

	node, err := gemini.ParseRecord(`{"location_information": {"name": "WS Lanzarote", "city": null}}`)

	require.NoError(t, err)
	assert.Equal(t, "WS Lanzarote", *node.Get("location_information", "name").Value)
	assert.True(t, node.Get("location_information", "city").Null())
}

func TestParseRecord_NotAnObject(t *testing.T) {
	t.Parallel()

	_, err := gemini.ParseRecord(`[1, 2, 3]`)

	require.Error(t, err)
	assert.Equal(t, windfind.EINVALID, windfind.ErrorCode(err))
}

func TestParseRecord_Malformed(t *testing.T) {
	t.Parallel()

	_, err := gemini.ParseRecord(`oops`)

	require.Error(t, err)
	assert.Equal(t, windfind.EINVALID, windfind.ErrorCode(err))
}
