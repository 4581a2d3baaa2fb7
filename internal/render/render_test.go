package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverfjs/docsmark-go/internal/types"
)

func TestTextRenderer(t *testing.T) {
	r := NewTextRenderer(nil)

	_, err := r.AppendHeading("Intro", 1)
	require.NoError(t, err)
	ref, err := r.AppendParagraph("a bold word")
	require.NoError(t, err)
	require.NoError(t, r.ApplyMark(ref, types.FormatSpan{Start: 2, End: 6, Mark: types.Bold}))
	_, err = r.AppendBlank()
	require.NoError(t, err)
	_, err = r.AppendListItem("first", true, 3)
	require.NoError(t, err)
	_, err = r.AppendListItem("loose", false, 0)
	require.NoError(t, err)
	_, err = r.AppendCodeBlock("x := 1", "go")
	require.NoError(t, err)

	text, entities := r.Result()
	assert.Equal(t, "📌 Intro\na bold word\n\n3. first\n• loose\nx := 1", text)
	assert.Equal(t, []Entity{
		{Type: "bold", Offset: 3, Length: 5},
		{Type: "underline", Offset: 3, Length: 5},
		{Type: "bold", Offset: 11, Length: 4},
		{Type: "pre", Offset: 39, Length: 6, Language: "go"},
	}, entities)
}

func TestTextRenderer_UTF16Offsets(t *testing.T) {
	r := NewTextRenderer(nil)
	ref, err := r.AppendParagraph("📌 é code")
	require.NoError(t, err)
	require.NoError(t, r.ApplyMark(ref, types.FormatSpan{Start: 8, End: 12, Mark: types.Code}))

	_, entities := r.Result()
	require.Len(t, entities, 1)
	assert.Equal(t, Entity{Type: "code", Offset: 5, Length: 4}, entities[0])
}

func TestTextRenderer_RejectsBadMarks(t *testing.T) {
	r := NewTextRenderer(nil)
	ref, err := r.AppendParagraph("abc")
	require.NoError(t, err)

	assert.Error(t, r.ApplyMark(ref+1, types.FormatSpan{Start: 0, End: 1}))
	assert.Error(t, r.ApplyMark(ref, types.FormatSpan{Start: 2, End: 9}))
	assert.Error(t, r.ApplyMark(ref, types.FormatSpan{Start: 1, End: 1}))
}

func TestHTMLRenderer(t *testing.T) {
	r := NewHTMLRenderer(nil)

	_, _ = r.AppendHeading("Title & more", 2)
	ref, _ := r.AppendParagraph("bold <x> code")
	require.NoError(t, r.ApplyMark(ref, types.FormatSpan{Start: 0, End: 4, Mark: types.Bold}))
	require.NoError(t, r.ApplyMark(ref, types.FormatSpan{Start: 9, End: 13, Mark: types.Code}))
	_, _ = r.AppendListItem("one", false, 0)
	_, _ = r.AppendListItem("two", false, 0)
	_, _ = r.AppendListItem("five", true, 5)
	_, _ = r.AppendBlank()
	_, _ = r.AppendCodeBlock("if a < b {}", "go")

	want := "<h2>Title &amp; more</h2>\n" +
		"<p><strong>bold</strong> &lt;x&gt; <code>code</code></p>\n" +
		"<ul>\n<li>one</li>\n<li>two</li>\n</ul>\n" +
		"<ol start=\"5\">\n<li>five</li>\n</ol>\n" +
		"<br>\n" +
		"<pre style=\"font-family: 'Courier New'; background-color: #f4f4f4\"><code class=\"language-go\">if a &lt; b {}</code></pre>\n"
	assert.Equal(t, want, r.String())
}

func TestRenderInline_CrossingSpans(t *testing.T) {
	got := renderInline("abcde", []types.FormatSpan{
		{Start: 0, End: 3, Mark: types.Italic},
		{Start: 2, End: 5, Mark: types.Code},
	})
	assert.Equal(t, "<em>ab</em><em><code>c</code></em><code>de</code>", got)
}

func TestHTMLSlides(t *testing.T) {
	s := NewHTMLSlides()
	h, err := s.CreateSlide(types.SlideFields{
		Title:        "Overview",
		Content:      "• A\n• B",
		SpeakerNotes: "Say <hello>.",
	})
	require.NoError(t, err)
	assert.Equal(t, types.SlideHandle(0), h)

	want := "<section class=\"slide title_and_body\" id=\"slide-1\">\n" +
		"<h1>Overview</h1>\n" +
		"<div class=\"body\">• A<br>\n• B</div>\n" +
		"<aside class=\"notes\">Say &lt;hello&gt;.</aside>\n" +
		"</section>\n"
	assert.Equal(t, want, s.String())
}

func TestTextRenderer_MissingSymbols(t *testing.T) {
	r := NewTextRenderer(&types.RenderConfig{})
	_, err := r.AppendListItem("x", false, 0)
	require.NoError(t, err)
	text, _ := r.Result()
	assert.Equal(t, "• x", text)
}
