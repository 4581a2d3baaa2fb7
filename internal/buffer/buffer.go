// Package buffer provides an append-only text buffer that tracks both the
// byte length and the UTF-16 length of everything written to it.
package buffer

import "strings"

// UTF16Len returns the length of text measured in UTF-16 code units.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		if r > 0xFFFF {
			count += 2
		} else {
			count++
		}
	}
	return count
}

// TextBuffer accumulates plain text and tracks the current offsets.
type TextBuffer struct {
	sb          strings.Builder
	utf16Offset int
}

// New creates a new TextBuffer.
func New() *TextBuffer {
	return &TextBuffer{}
}

// Write appends text to the buffer.
func (tb *TextBuffer) Write(text string) {
	tb.sb.WriteString(text)
	tb.utf16Offset += UTF16Len(text)
}

// UTF16Offset returns the current UTF-16 offset.
func (tb *TextBuffer) UTF16Offset() int {
	return tb.utf16Offset
}

// ByteOffset returns the current byte offset.
func (tb *TextBuffer) ByteOffset() int {
	return tb.sb.Len()
}

// Len returns the number of bytes written.
func (tb *TextBuffer) Len() int {
	return tb.sb.Len()
}

// TrailingNewlineCount counts trailing newline characters in the buffer.
func (tb *TextBuffer) TrailingNewlineCount() int {
	s := tb.sb.String()
	count := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\n'; i-- {
		count++
	}
	return count
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	return tb.sb.String()
}

// Reset clears the buffer.
func (tb *TextBuffer) Reset() {
	tb.sb.Reset()
	tb.utf16Offset = 0
}
