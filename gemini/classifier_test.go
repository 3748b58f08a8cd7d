package gemini_test

import (
	"testing"

	"github.com/sailhq/windfind"
	"github.com/sailhq/windfind/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScores(t *testing.T) {
	t.Parallel()

	scores, err := gemini.ParseScores(
		`{"pricing": 0.9, "other": 0.05, "unrequested": 1.0}`,
		[]string{"pricing", "camps", "other"},
	)

	require.NoError(t, err)
	assert.Equal(t, 0.9, scores["pricing"])
	assert.Equal(t, 0.05, scores["other"])
	assert.NotContains(t, scores, "unrequested")
}

func TestParseScores_MissingLabelsDefaultToZero(t *testing.T) {
	t.Parallel()

	scores, err := gemini.ParseScores(`{"pricing": 0.9}`, []string{"pricing", "camps"})

	require.NoError(t, err)
	assert.Equal(t, 0.0, scores["camps"])
}

func TestParseScores_Malformed(t *testing.T) {
	t.Parallel()

	_, err := gemini.ParseScores(`not json`, []string{"pricing"})

	require.Error(t, err)
	assert.Equal(t, windfind.EINVALID, windfind.ErrorCode(err))
}

func TestBuildClassifyPrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildClassifyPrompt("Windsurf lessons in Playa Honda", []string{"pricing", "courses"})

	assert.Contains(t, prompt, "pricing, courses")
	assert.Contains(t, prompt, "Windsurf lessons in Playa Honda")
	assert.Contains(t, prompt, "probabilities as values")
}
