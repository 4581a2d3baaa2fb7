package docsmark

import (
	"strings"
	"unicode"

	"github.com/riverfjs/docsmark-go/internal/buffer"
)

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Document and presentation APIs index text in UTF-16 code units, not Go
// string bytes or runes. Characters outside the BMP (codepoint > 0xFFFF)
// take 2 UTF-16 code units (a surrogate pair); all others take 1.
func UTF16Len(text string) int {
	return buffer.UTF16Len(text)
}

// UTF16Span is a FormatSpan converted to UTF-16 code units.
type UTF16Span struct {
	Offset int  `json:"offset" yaml:"offset"`
	Length int  `json:"length" yaml:"length"`
	Mark   Mark `json:"mark" yaml:"mark"`
}

// buildUTF16OffsetTable builds a cumulative UTF-16 offset table for each byte position.
// Returns a slice where result[i] is the UTF-16 offset at byte position i.
func buildUTF16OffsetTable(text string) []int {
	offsets := make([]int, len(text)+1)
	for i := range offsets {
		offsets[i] = -1
	}
	cum := 0
	for i, r := range text {
		offsets[i] = cum
		if r > 0xFFFF {
			cum += 2
		} else {
			cum++
		}
	}
	offsets[len(text)] = cum
	// Bytes inside a rune take the offset of the rune after them.
	for i := len(text) - 1; i >= 0; i-- {
		if offsets[i] < 0 {
			offsets[i] = offsets[i+1]
		}
	}
	return offsets
}

// ToUTF16 converts byte spans over text into UTF-16 spans.
func ToUTF16(text string, spans []FormatSpan) []UTF16Span {
	if len(spans) == 0 {
		return nil
	}
	offsets := buildUTF16OffsetTable(text)
	out := make([]UTF16Span, 0, len(spans))
	for _, s := range spans {
		if s.Start < 0 || s.End > len(text) || s.Start >= s.End {
			continue
		}
		out = append(out, UTF16Span{
			Offset: offsets[s.Start],
			Length: offsets[s.End] - offsets[s.Start],
			Mark:   s.Mark,
		})
	}
	return out
}

// TrimSpace removes leading and trailing whitespace while adjusting spans.
// Spans falling entirely into the removed whitespace are dropped.
func TrimSpace(text string, spans []FormatSpan) (string, []FormatSpan) {
	trimmed := strings.TrimSpace(text)
	if trimmed == text {
		return text, spans
	}
	if trimmed == "" {
		return "", nil
	}

	startOffset := len(text) - len(strings.TrimLeftFunc(text, unicode.IsSpace))
	newLen := len(trimmed)

	var adjusted []FormatSpan
	for _, s := range spans {
		newStart := s.Start - startOffset
		newEnd := s.End - startOffset

		if newEnd <= 0 || newStart >= newLen {
			continue
		}

		newStart = max(0, newStart)
		newEnd = min(newEnd, newLen)
		if newEnd <= newStart {
			continue
		}

		adjusted = append(adjusted, FormatSpan{Start: newStart, End: newEnd, Mark: s.Mark})
	}

	return trimmed, adjusted
}
