package types

import "fmt"

// Mark is an inline formatting mark.
type Mark int

const (
	Bold Mark = iota
	Italic
	Code
)

// String returns the string representation of Mark.
func (m Mark) String() string {
	switch m {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Code:
		return "code"
	default:
		return "unknown"
	}
}

// MarshalText lets encoders print the mark by name.
func (m Mark) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText parses a mark name written by MarshalText.
func (m *Mark) UnmarshalText(text []byte) error {
	switch string(text) {
	case "bold":
		*m = Bold
	case "italic":
		*m = Italic
	case "code":
		*m = Code
	default:
		return fmt.Errorf("unknown mark %q", text)
	}
	return nil
}

// FormatSpan is a half-open byte range [Start, End) over mark-free text.
type FormatSpan struct {
	Start int  `json:"start" yaml:"start"`
	End   int  `json:"end" yaml:"end"`
	Mark  Mark `json:"mark" yaml:"mark"`
}

// Len returns the number of bytes covered by the span.
func (s FormatSpan) Len() int {
	return s.End - s.Start
}
