package converter

import "strings"

const bom = "\ufeff"

// Normalize drops a leading byte order mark and turns "\r\n" and lone "\r"
// line endings into "\n".
func Normalize(text string) string {
	text = strings.TrimPrefix(text, bom)
	if !strings.Contains(text, "\r") {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// SplitLines splits normalized text into lines. A single terminating
// newline ends the last line instead of opening an empty one.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
