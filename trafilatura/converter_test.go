package trafilatura_test

import (
	"testing"

	"github.com/sailhq/windfind/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Windsurf Lanzarote</title></head>
<body>
<nav><a href="/">Home</a> <a href="/pricing">Pricing</a></nav>
<main>
<h1>Windsurf School Lanzarote</h1>
<p>We offer windsurfing lessons in Playa Honda. Hourly rentals start at 20 euros,
daily rentals at 50 euros. Our certified instructors teach all levels, from complete
beginners to advanced riders looking to refine their technique.</p>
<p>Equipment rental is included in all course prices. We are open year round thanks
to the reliable trade winds on the east coast of the island.</p>
</main>
<footer>Copyright 2024</footer>
</body>
</html>`

func TestConverter_Text(t *testing.T) {
	t.Parallel()

	c := trafilatura.NewConverter()

	text, err := c.Text(samplePage)

	require.NoError(t, err)
	assert.Contains(t, text, "windsurfing lessons in Playa Honda")
	assert.Contains(t, text, "20 euros")
}

func TestConverter_Text_EmptyInput(t *testing.T) {
	t.Parallel()

	c := trafilatura.NewConverter()

	_, err := c.Text("")

	require.Error(t, err)
}
