// Package docsmark converts a constrained markdown dialect into a
// structured rich-text model and parses a "Title:/Body:/Notes:" slide deck
// format.
//
// The dialect covers level 1 to 3 headings, bullet and numbered list items,
// fenced code blocks, blank lines and paragraphs, with bold, italic and
// inline code spans inside a line.
//
// Conversion produces data, not side effects. A Document or Deck can be
// replayed into any DocumentSink or SlideSink with Render and RenderSlides:
//
//	doc := docsmark.ConvertDocument(markdown)
//	r := docsmark.NewTextRenderer(nil)
//	if err := docsmark.Render(doc, r); err != nil {
//	    // errors.Is(err, docsmark.ErrEmptyDocument)
//	}
//	text, entities := r.Result()
//
// All functions are pure over their input and safe for concurrent use.
package docsmark

import (
	"github.com/riverfjs/docsmark-go/internal/converter"
	"github.com/riverfjs/docsmark-go/internal/inline"
	"github.com/riverfjs/docsmark-go/internal/slides"
)

// Segment splits text into typed blocks in source order.
//
// A code fence still open at end of input is flushed as a CodeBlock with
// Unterminated set.
func Segment(text string) []Block {
	return converter.Segment(text)
}

// Format removes paired bold ("**"), italic ("*") and inline code ("`")
// delimiters from raw and returns the clean text with the byte spans they
// enclosed. Unpaired delimiters are kept as text.
func Format(raw string) (string, []FormatSpan) {
	return inline.Format(raw)
}

// ConvertDocument segments markdown and formats every block's text.
// Heading and list item text is trimmed; code blocks are left verbatim.
func ConvertDocument(markdown string, opts ...Option) *Document {
	options := applyOptions(opts...)

	blocks := converter.Segment(markdown)
	doc := &Document{Blocks: make([]FormattedBlock, 0, len(blocks))}

	for i, b := range blocks {
		fb := FormattedBlock{Block: b, Text: b.RawText()}
		switch blk := b.(type) {
		case *CodeBlock:
			if blk.Unterminated {
				options.Logger.Warn("code fence not closed, flushing to end of input",
					"block", i, "language", blk.Language)
			}
		case *Blank:
		case *Heading, *ListItem:
			fb.Text, fb.Spans = TrimSpace(inline.Format(blk.RawText()))
		default:
			fb.Text, fb.Spans = inline.Format(blk.RawText())
		}
		doc.Blocks = append(doc.Blocks, fb)
	}

	if doc.IsEmpty() {
		options.Logger.Debug("document has no content blocks", "blocks", len(doc.Blocks))
	}
	return doc
}

// ExtractSlides parses text in the slide deck format. Sections that yield
// neither a title nor content are dropped; a deck without slides is
// returned as is and reported by Deck.IsEmpty.
func ExtractSlides(text string, opts ...Option) *Deck {
	options := applyOptions(opts...)

	deck := slides.Extract(text)
	if deck.Dropped > 0 {
		options.Logger.Debug("dropped slide sections",
			"dropped", deck.Dropped, "sections", deck.Sections)
	}
	if deck.IsEmpty() {
		options.Logger.Warn("no slides found", "sections", deck.Sections)
	}
	return deck
}

// ConvertText converts markdown and renders it as plain text plus entities
// measured in UTF-16 code units.
func ConvertText(markdown string, opts ...Option) (string, []Entity, error) {
	options := applyOptions(opts...)
	r := NewTextRenderer(options.Config)
	if err := Render(ConvertDocument(markdown, opts...), r); err != nil {
		return "", nil, err
	}
	text, entities := r.Result()
	return text, entities, nil
}

// ConvertHTML converts markdown and renders it as an HTML fragment.
func ConvertHTML(markdown string, opts ...Option) (string, error) {
	options := applyOptions(opts...)
	r := NewHTMLRenderer(options.Config)
	if err := Render(ConvertDocument(markdown, opts...), r); err != nil {
		return "", err
	}
	return r.String(), nil
}
