// Package slides parses the "Title:/Subtitle:/Body:/Notes:" deck format.
//
// A deck is a sequence of sections separated by lines of three or more
// hyphens (for example "--- [SLIDE 3] ---"). Each section is split at its
// first notes marker before any other field is looked up, so text inside
// speaker notes can never be taken for a title or body.
package slides

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/riverfjs/docsmark-go/internal/converter"
	"github.com/riverfjs/docsmark-go/internal/inline"
	"github.com/riverfjs/docsmark-go/internal/types"
)

// Bullet replaces "*" and "-" list prefixes in slide content.
const Bullet = "• "

type field int

const (
	fieldTitle field = iota
	fieldSubtitle
	fieldContent
	fieldNotes
)

var (
	separatorRe = regexp.MustCompile(`^\s*-{3,}.*$`)

	// markerRe matches a field label at a line start. The label may be
	// wrapped in "**" and is closed by ":" or the closing "**".
	markerRe = regexp.MustCompile(`(?im)^[ \t]*(?:\*\*)?(title|subtitle|body|content|speaker[ \t]*notes|notes)(?:\*\*:?|:(?:\*\*)?)[ \t]*`)

	bracketReplacer = strings.NewReplacer("[", "", "]", "")
)

// marker is one field label found in a section, in section byte offsets.
type marker struct {
	field field
	start int
	end   int
}

func fieldOf(label string) field {
	label = strings.ToLower(label)
	switch {
	case label == "title":
		return fieldTitle
	case label == "subtitle":
		return fieldSubtitle
	case label == "body", label == "content":
		return fieldContent
	default:
		return fieldNotes
	}
}

func findMarkers(region string) []marker {
	matches := markerRe.FindAllStringSubmatchIndex(region, -1)
	markers := make([]marker, 0, len(matches))
	for _, m := range matches {
		markers = append(markers, marker{
			field: fieldOf(region[m[2]:m[3]]),
			start: m[0],
			end:   m[1],
		})
	}
	return markers
}

// Extract splits text into slide sections and returns the usable slides in
// document order. Sections without any field marker are not slides;
// sections with neither a title nor content are dropped.
func Extract(text string) *types.Deck {
	deck := &types.Deck{Slides: make([]types.SlideFields, 0)}
	for _, section := range Sections(text) {
		if strings.TrimSpace(section) == "" {
			continue
		}
		deck.Sections++
		if !markerRe.MatchString(section) {
			deck.Dropped++
			continue
		}
		fields := ParseSection(section)
		if !fields.Usable() {
			deck.Dropped++
			continue
		}
		deck.Slides = append(deck.Slides, fields)
	}
	return deck
}

// Sections splits text on separator lines. Separator lines belong to no section.
func Sections(text string) []string {
	var (
		sections []string
		current  []string
	)
	for _, line := range converter.SplitLines(converter.Normalize(text)) {
		if separatorRe.MatchString(line) {
			sections = append(sections, strings.Join(current, "\n"))
			current = current[:0]
			continue
		}
		current = append(current, line)
	}
	return append(sections, strings.Join(current, "\n"))
}

// ParseSection extracts the fields of a single section.
func ParseSection(section string) types.SlideFields {
	var fields types.SlideFields

	body := section
	for _, m := range findMarkers(section) {
		if m.field == fieldNotes {
			body = section[:m.start]
			fields.SpeakerNotes = cleanNotes(section[m.end:])
			break
		}
	}

	markers := findMarkers(body)
	seen := make(map[field]bool, len(markers))
	for i, m := range markers {
		if seen[m.field] {
			continue
		}
		seen[m.field] = true

		end := len(body)
		if i+1 < len(markers) {
			end = markers[i+1].start
		}
		value := body[m.end:end]

		switch m.field {
		case fieldTitle:
			fields.Title = cleanSingle(value)
		case fieldSubtitle:
			fields.Subtitle = cleanSingle(value)
		case fieldContent:
			fields.Content = cleanContent(value)
		}
	}
	return fields
}

// cleanLine strips paired inline delimiters and brackets.
func cleanLine(line string) string {
	return strings.TrimSpace(bracketReplacer.Replace(inline.Strip(line)))
}

// cleanSingle returns the first non-empty cleaned line of value.
func cleanSingle(value string) string {
	for _, line := range strings.Split(value, "\n") {
		if cleaned := cleanLine(line); cleaned != "" {
			return cleaned
		}
	}
	return ""
}

func cleanNotes(value string) string {
	lines := strings.Split(value, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// cleanContent normalizes list prefixes line by line before stripping
// inline delimiters, so a leading "* " is never read as an italic opener.
func cleanContent(value string) string {
	lines := strings.Split(value, "\n")
	for i, line := range lines {
		lm, ok := converter.ParseListMarker(line)
		switch {
		case !ok:
			lines[i] = cleanLine(line)
		case lm.Ordered:
			lines[i] = fmt.Sprintf("%d. %s", lm.Number, cleanLine(lm.Text))
		default:
			lines[i] = Bullet + cleanLine(lm.Text)
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
