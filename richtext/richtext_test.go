package richtext

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"<p>Hello&nbsp;<b>world</b> &amp; co</p>", "Hello world & co"},
		{"  <p> </p> ", ""},
		{"<p>1 &lt; 2 &gt; 0</p>", "1 < 2 > 0"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, StripTags(tt.input), "StripTags(%q)", tt.input)
	}
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "one two...", Excerpt("<p>one two three</p>", 7))
	assert.Equal(t, "one two three", Excerpt("<p>one two three</p>", 50))
	assert.Equal(t, "a b", Excerpt("<p>a</p>\n\n<p>b</p>", 0))
}

func TestNormalizeEmptyDocuments(t *testing.T) {
	for _, in := range []string{"", "<p></p>", "<p><br></p>", "  \n ", "<!-- note -->"} {
		assert.Equal(t, "", Normalize(in), "Normalize(%q)", in)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"identical", "<p>Hello</p>", "<p>Hello</p>", true},
		{"trailing newline", "<p>Hello</p>", "<p>Hello</p>\n", true},
		{"attribute order", `<p class="a" id="b">x</p>`, `<p id="b" class="a">x</p>`, true},
		{"whitespace runs", "<p>a  b</p>", "<p>a b</p>", true},
		{"block edges", "<p> a </p>", "<p>a</p>", true},
		{"between blocks", "<p>a</p>\n  <p>b</p>", "<p>a</p><p>b</p>", true},
		{"different text", "<p>a</p>", "<p>b</p>", false},
		{"different markup", "<p><strong>a</strong></p>", "<p>a</p>", false},
		{"inline space kept", "<p><b>a</b> <i>b</i></p>", "<p><b>a</b><i>b</i></p>", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

func TestNormalizeEncodesEntities(t *testing.T) {
	assert.Equal(t, "<p>Tom &amp; Jerry</p>", Normalize("<p>Tom &amp; Jerry</p>"))
	assert.Equal(t, Normalize("<p>Tom & Jerry</p>"), Normalize("<p>Tom &amp; Jerry</p>"))
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"script removed", `<p onclick="x()">hi<script>alert(1)</script></p>`, "<p>hi</p>"},
		{"javascript href", `<a href="javascript:alert(1)">x</a>`, "x"},
		{"unknown unwrapped", "<custom>text</custom>", "text"},
		{"image handler dropped", `<img src="https://e.com/a.png" onerror="x">`, `<img src="https://e.com/a.png">`},
		{"formatting kept", "<h2>T</h2><ul><li><em>a</em></li></ul>", "<h2>T</h2><ul><li><em>a</em></li></ul>"},
		{"style dropped", "<style>p{}</style><p>x</p>", "<p>x</p>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input))
		})
	}
}

func TestSanitizeNewTabLinks(t *testing.T) {
	got := Sanitize(`<a href="https://example.com" target="_blank" onclick="x()">x</a>`)
	assert.Contains(t, got, `href="https://example.com"`)
	assert.Contains(t, got, `target="_blank"`)
	assert.Contains(t, got, "noopener")
	assert.NotContains(t, got, "onclick")

	got = Sanitize(`<a href="https://example.com" target="_top">x</a>`)
	assert.NotContains(t, got, "target")
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/blogs", "/blogs"},
		{"#top", "#top"},
		{"https://x.io/a", "https://x.io/a"},
		{"mailto:a@b.c", "mailto:a@b.c"},
		{"javascript:alert(1)", ""},
		{"ftp://x.io", ""},
		{"example.com", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, SafeURL(tt.input), "SafeURL(%q)", tt.input)
	}
}

func TestHTMLComponent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML("<p>hi</p><script>x</script>").Render(context.Background(), &buf))
	assert.Equal(t, `<div class="prose max-w-none"><p>hi</p></div>`, buf.String())
}
