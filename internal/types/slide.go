package types

// Layout is the slide layout a SlideFields set asks for.
type Layout int

const (
	LayoutTitleOnly Layout = iota
	LayoutTitleAndBody
	LayoutTitle
)

// String returns the string representation of Layout.
func (l Layout) String() string {
	switch l {
	case LayoutTitleOnly:
		return "title_only"
	case LayoutTitleAndBody:
		return "title_and_body"
	case LayoutTitle:
		return "title"
	default:
		return "unknown"
	}
}

// MarshalText lets encoders print the layout by name.
func (l Layout) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// SlideFields holds the cleaned fields of one slide section.
type SlideFields struct {
	Title        string `json:"title,omitempty" yaml:"title,omitempty"`
	Subtitle     string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Content      string `json:"content,omitempty" yaml:"content,omitempty"`
	SpeakerNotes string `json:"speaker_notes,omitempty" yaml:"speaker_notes,omitempty"`
}

// Usable reports whether the fields can produce a slide.
func (f SlideFields) Usable() bool {
	return f.Title != "" || f.Content != ""
}

// Layout picks a layout from the populated fields: a subtitle asks for a
// title slide, content for title-and-body, anything else for title only.
func (f SlideFields) Layout() Layout {
	switch {
	case f.Subtitle != "":
		return LayoutTitle
	case f.Content != "":
		return LayoutTitleAndBody
	default:
		return LayoutTitleOnly
	}
}

// Deck is the result of slide extraction. Sections counts the non-empty
// sections seen; Dropped counts those that yielded no usable slide.
type Deck struct {
	Slides   []SlideFields `json:"slides" yaml:"slides"`
	Sections int           `json:"sections" yaml:"sections"`
	Dropped  int           `json:"dropped" yaml:"dropped"`
}

// IsEmpty reports whether no usable slide was found.
func (d *Deck) IsEmpty() bool {
	return d == nil || len(d.Slides) == 0
}
