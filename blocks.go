package docsmark

import "github.com/riverfjs/docsmark-go/internal/types"

// Block variants produced by Segment.
type (
	Block     = types.Block
	BlockKind = types.BlockKind
	Heading   = types.Heading
	ListItem  = types.ListItem
	CodeBlock = types.CodeBlock
	Blank     = types.Blank
	Paragraph = types.Paragraph
)

const (
	KindHeading   = types.KindHeading
	KindListItem  = types.KindListItem
	KindCodeBlock = types.KindCodeBlock
	KindBlank     = types.KindBlank
	KindParagraph = types.KindParagraph
)

// Inline marks.
type (
	Mark       = types.Mark
	FormatSpan = types.FormatSpan
)

const (
	Bold   = types.Bold
	Italic = types.Italic
	Code   = types.Code
)

// Slides.
type (
	SlideFields = types.SlideFields
	Deck        = types.Deck
	Layout      = types.Layout
)

const (
	LayoutTitleOnly    = types.LayoutTitleOnly
	LayoutTitleAndBody = types.LayoutTitleAndBody
	LayoutTitle        = types.LayoutTitle
)

// FormattedBlock is a block together with its mark-free text and spans.
// Code blocks and blank lines carry their raw text and no spans.
type FormattedBlock struct {
	Block Block
	Text  string
	Spans []FormatSpan
}

// Document is the result of ConvertDocument, in source order.
type Document struct {
	Blocks []FormattedBlock
}

// IsEmpty reports whether the document has no block other than blank lines.
func (d *Document) IsEmpty() bool {
	if d == nil {
		return true
	}
	for _, b := range d.Blocks {
		if b.Block != nil && b.Block.Kind() != KindBlank {
			return false
		}
	}
	return true
}

// Unterminated reports whether a code fence was still open at end of input.
func (d *Document) Unterminated() bool {
	if d == nil {
		return false
	}
	for _, b := range d.Blocks {
		if cb, ok := b.Block.(*CodeBlock); ok && cb.Unterminated {
			return true
		}
	}
	return false
}
