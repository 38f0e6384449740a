package readability_test

import (
	"strings"
	"testing"

	"newsharvest"
	"newsharvest/readability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	_, err := ext.Extract("", "LiveMint")

	require.Error(t, err)
	assert.Equal(t, newsharvest.EINVALID, newsharvest.ErrorCode(err))
}

func TestExtractor_ExtractsArticleText(t *testing.T) {
	t.Parallel()

	body := strings.TrimSpace(strings.Repeat("The central bank held rates steady for a third straight meeting. ", 8))
	html := `<!DOCTYPE html>
<html>
<head><title>Rates Held</title></head>
<body>
	<nav>Home | Markets | Economy</nav>
	<article>
		<h1>Rates Held</h1>
		<p>` + body + `</p>
	</article>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html, "Unknown Source")

	require.NoError(t, err)
	assert.Equal(t, "readability", result.Strategy)
	assert.Contains(t, result.Content, "central bank held rates steady")
}

func TestExtractor_ShortContentYieldsSentinel(t *testing.T) {
	t.Parallel()

	html := `<html><body><article><p>Too short.</p></article></body></html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html, "Unknown Source")

	require.NoError(t, err)
	assert.Equal(t, newsharvest.ContentNotFound, result.Content)
}
