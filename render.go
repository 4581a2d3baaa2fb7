package docsmark

import (
	"fmt"

	"github.com/riverfjs/docsmark-go/internal/render"
	"github.com/riverfjs/docsmark-go/internal/types"
)

type (
	BlockRef    = types.BlockRef
	SlideHandle = types.SlideHandle
	Entity      = render.Entity
)

// DocumentSink is an append-only rich document. Each Append call adds one
// block and returns a reference that ApplyMark can format afterwards.
type DocumentSink interface {
	AppendHeading(text string, level int) (BlockRef, error)
	AppendListItem(text string, ordered bool, number int) (BlockRef, error)
	AppendCodeBlock(text string, language string) (BlockRef, error)
	AppendBlank() (BlockRef, error)
	AppendParagraph(text string) (BlockRef, error)
	ApplyMark(ref BlockRef, span FormatSpan) error
}

// SlideSink creates one slide per call.
type SlideSink interface {
	CreateSlide(fields SlideFields) (SlideHandle, error)
}

// Render replays doc into sink in source order. An empty document returns
// ErrEmptyDocument without calling the sink. The first sink error stops
// rendering and is returned wrapped with the block index.
func Render(doc *Document, sink DocumentSink) error {
	if doc.IsEmpty() {
		return ErrEmptyDocument
	}
	for i, fb := range doc.Blocks {
		ref, err := appendBlock(sink, fb)
		if err != nil {
			return fmt.Errorf("block %d (%s): %w", i, kindName(fb.Block), err)
		}
		for _, span := range fb.Spans {
			if err := sink.ApplyMark(ref, span); err != nil {
				return fmt.Errorf("block %d (%s): apply %s mark: %w", i, kindName(fb.Block), span.Mark, err)
			}
		}
	}
	return nil
}

func appendBlock(sink DocumentSink, fb FormattedBlock) (BlockRef, error) {
	switch b := fb.Block.(type) {
	case *Heading:
		return sink.AppendHeading(fb.Text, b.Level)
	case *ListItem:
		return sink.AppendListItem(fb.Text, b.Ordered, b.Number)
	case *CodeBlock:
		return sink.AppendCodeBlock(fb.Text, b.Language)
	case *Blank:
		return sink.AppendBlank()
	case *Paragraph:
		return sink.AppendParagraph(fb.Text)
	default:
		return 0, ErrUnknownBlock
	}
}

func kindName(b Block) string {
	if b == nil {
		return "nil"
	}
	return b.Kind().String()
}

// RenderSlides creates one slide per usable entry of deck. An empty deck
// returns ErrNoSlides.
func RenderSlides(deck *Deck, sink SlideSink) ([]SlideHandle, error) {
	if deck.IsEmpty() {
		return nil, ErrNoSlides
	}
	handles := make([]SlideHandle, 0, len(deck.Slides))
	for i, fields := range deck.Slides {
		h, err := sink.CreateSlide(fields)
		if err != nil {
			return handles, fmt.Errorf("slide %d: %w", i+1, err)
		}
		handles = append(handles, h)
	}
	return handles, nil
}

// TextRenderer renders a document as plain text plus UTF-16 entities.
type TextRenderer = render.TextRenderer

// HTMLRenderer renders a document as an HTML fragment.
type HTMLRenderer = render.HTMLRenderer

// HTMLSlides renders slides as HTML sections.
type HTMLSlides = render.HTMLSlides

// NewTextRenderer creates a TextRenderer using config, or the default
// configuration when config is nil.
func NewTextRenderer(config *RenderConfig) *TextRenderer {
	if config == nil {
		config = DefaultConfig()
	}
	return render.NewTextRenderer(config)
}

// NewHTMLRenderer creates an HTMLRenderer using config, or the default
// configuration when config is nil.
func NewHTMLRenderer(config *RenderConfig) *HTMLRenderer {
	if config == nil {
		config = DefaultConfig()
	}
	return render.NewHTMLRenderer(config)
}

// NewHTMLSlides creates an empty HTMLSlides sink.
func NewHTMLSlides() *HTMLSlides {
	return render.NewHTMLSlides()
}
