package slides

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverfjs/docsmark-go/internal/types"
)

const overviewDeck = `--- [SLIDE 1] ---
Title: Overview
Body:
* Point A
* Point B

Notes:
Say hello.
`

func TestExtract_Overview(t *testing.T) {
	deck := Extract(overviewDeck)
	require.Len(t, deck.Slides, 1)

	s := deck.Slides[0]
	assert.Equal(t, "Overview", s.Title)
	assert.Equal(t, "• Point A\n• Point B", s.Content)
	assert.Equal(t, "Say hello.", s.SpeakerNotes)
	assert.NotContains(t, s.Content, "Say hello.")
	assert.Equal(t, types.LayoutTitleAndBody, s.Layout())
}

func TestExtract_MultipleSlides(t *testing.T) {
	input := `--- [SLIDE 1] ---
Title: Workshop Objectives
Subtitle: Platform day
Body:
1. Understand GKE Fleets
2.  Define Platform Tenants

Speaker Notes:
By the end of this session...
--------
**Title:** Second
**Content**: - one
- two
---
Title: Third only
`
	deck := Extract(input)
	require.Len(t, deck.Slides, 3)
	assert.Equal(t, 3, deck.Sections)
	assert.Equal(t, 0, deck.Dropped)

	first := deck.Slides[0]
	assert.Equal(t, "Workshop Objectives", first.Title)
	assert.Equal(t, "Platform day", first.Subtitle)
	assert.Equal(t, "1. Understand GKE Fleets\n2. Define Platform Tenants", first.Content)
	assert.Equal(t, "By the end of this session...", first.SpeakerNotes)
	assert.Equal(t, types.LayoutTitle, first.Layout())

	second := deck.Slides[1]
	assert.Equal(t, "Second", second.Title)
	assert.Equal(t, "• one\n• two", second.Content)

	third := deck.Slides[2]
	assert.Equal(t, "Third only", third.Title)
	assert.Empty(t, third.Content)
	assert.Equal(t, types.LayoutTitleOnly, third.Layout())
}

func TestExtract_DropsSections(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "notes only", input: "---\nNotes: something\n"},
		{name: "no markers", input: "---\njust some prose\nwith lines\n"},
		{name: "empty title and body", input: "---\nTitle:\nBody:\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deck := Extract(tt.input)
			assert.True(t, deck.IsEmpty())
			assert.Equal(t, 1, deck.Dropped)
		})
	}
}

func TestExtract_ZeroSlidesIsNotAnError(t *testing.T) {
	deck := Extract("")
	require.NotNil(t, deck)
	assert.True(t, deck.IsEmpty())
	assert.Equal(t, 0, deck.Sections)
}

func TestParseSection_NotesAreConfined(t *testing.T) {
	section := `Title: Real title
Body: real body
Notes:
Remember to say:
Title: quoted title
Body: quoted body`

	fields := ParseSection(section)
	assert.Equal(t, "Real title", fields.Title)
	assert.Equal(t, "real body", fields.Content)
	assert.Equal(t, "Remember to say:\nTitle: quoted title\nBody: quoted body", fields.SpeakerNotes)
}

func TestParseSection_FirstNotesMarkerSplits(t *testing.T) {
	fields := ParseSection("Title: T\n**Speaker Notes**\nfirst\nNotes: second")
	assert.Equal(t, "T", fields.Title)
	assert.Equal(t, "first\nNotes: second", fields.SpeakerNotes)
}

func TestParseSection_CleansFields(t *testing.T) {
	fields := ParseSection("TITLE: **Bold** [draft]\ncontent: *a* and `b`\n")
	assert.Equal(t, "Bold draft", fields.Title)
	assert.Equal(t, "a and b", fields.Content)
}

func TestParseSection_ContentStopsAtNextMarker(t *testing.T) {
	fields := ParseSection("Body:\nline one\nSubtitle: late\nTitle: Late title")
	assert.Equal(t, "line one", fields.Content)
	assert.Equal(t, "late", fields.Subtitle)
	assert.Equal(t, "Late title", fields.Title)
}

func TestSections(t *testing.T) {
	got := Sections("a\n--- [SLIDE 1] ---\nb\nc\n   -----\nd")
	assert.Equal(t, []string{"a", "b\nc", "d"}, got)
}
