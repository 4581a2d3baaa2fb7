package docsmark

import (
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
)

func TestUTF16Len(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "ascii", text: "hello", want: 5},
		{name: "cjk", text: "你好", want: 2},
		{name: "bmp emoji with selector", text: "☑️", want: 2},
		{name: "supplementary emoji", text: "📌", want: 2},
		{name: "mixed", text: "A📌B", want: 4},
		{name: "flag", text: "🇺🇸", want: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UTF16Len(tt.text))
			assert.Equal(t, len(utf16.Encode([]rune(tt.text))), UTF16Len(tt.text))
		})
	}
}

func TestToUTF16(t *testing.T) {
	text, spans := Format("📌 **wörld** and `x`")
	assert.Equal(t, "📌 wörld and x", text)

	got := ToUTF16(text, spans)
	assert.Equal(t, []UTF16Span{
		{Offset: 3, Length: 5, Mark: Bold},
		{Offset: 13, Length: 1, Mark: Code},
	}, got)
}

func TestToUTF16_SkipsInvalidSpans(t *testing.T) {
	got := ToUTF16("abc", []FormatSpan{{Start: 2, End: 9, Mark: Bold}, {Start: 1, End: 1, Mark: Italic}})
	assert.Empty(t, got)
	assert.Nil(t, ToUTF16("abc", nil))
}

func TestTrimSpace(t *testing.T) {
	text, spans := TrimSpace("  ab cd  ", []FormatSpan{
		{Start: 2, End: 4, Mark: Bold},
		{Start: 5, End: 9, Mark: Italic},
		{Start: 0, End: 1, Mark: Code},
	})
	assert.Equal(t, "ab cd", text)
	assert.Equal(t, []FormatSpan{
		{Start: 0, End: 2, Mark: Bold},
		{Start: 3, End: 5, Mark: Italic},
	}, spans)
}

func TestTrimSpace_Unchanged(t *testing.T) {
	spans := []FormatSpan{{Start: 0, End: 1, Mark: Bold}}
	text, got := TrimSpace("a", spans)
	assert.Equal(t, "a", text)
	assert.Equal(t, spans, got)

	text, got = TrimSpace("   ", spans)
	assert.Equal(t, "", text)
	assert.Nil(t, got)
}
