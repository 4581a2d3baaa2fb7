// Package render holds reference sinks that turn converted blocks and
// slides into output: plain text with entities, and HTML.
package render

import (
	"fmt"
	"strings"

	"github.com/riverfjs/docsmark-go/internal/buffer"
	"github.com/riverfjs/docsmark-go/internal/types"
)

// Entity is a formatting range over TextRenderer output, measured in
// UTF-16 code units.
type Entity struct {
	Type     string `json:"type" yaml:"type"`
	Offset   int    `json:"offset" yaml:"offset"`
	Length   int    `json:"length" yaml:"length"`
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
}

// textBlock remembers where an appended block's text starts.
type textBlock struct {
	text        string
	utf16Offset int
}

var headingEntitiesMap = map[int][]string{
	1: {"bold", "underline"},
	2: {"bold", "underline"},
	3: {"bold"},
}

// TextRenderer renders blocks into a single plain-text document, one line
// per block, and records formatting as entities.
type TextRenderer struct {
	buf      *buffer.TextBuffer
	config   *types.RenderConfig
	blocks   []textBlock
	entities []Entity
}

// NewTextRenderer creates a TextRenderer. A nil config selects the defaults.
func NewTextRenderer(config *types.RenderConfig) *TextRenderer {
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	if config.MarkdownSymbol == nil {
		c := *config
		c.MarkdownSymbol = types.DefaultSymbol()
		config = &c
	}
	return &TextRenderer{
		buf:      buffer.New(),
		config:   config,
		blocks:   make([]textBlock, 0),
		entities: make([]Entity, 0),
	}
}

// Result returns the rendered text and entities.
func (r *TextRenderer) Result() (string, []Entity) {
	return r.buf.String(), r.entities
}

// AppendHeading writes the heading symbol and text, emphasised by level.
func (r *TextRenderer) AppendHeading(text string, level int) (types.BlockRef, error) {
	r.startLine()
	if symbol := r.config.MarkdownSymbol.Heading(level); symbol != "" {
		r.buf.Write(symbol + " ")
	}
	ref := r.writeText(text)

	start := r.blocks[ref].utf16Offset
	length := r.buf.UTF16Offset() - start
	etypes := headingEntitiesMap[level]
	if etypes == nil {
		etypes = []string{"bold"}
	}
	for _, etype := range etypes {
		r.addEntity(Entity{Type: etype, Offset: start, Length: length})
	}
	return ref, nil
}

// AppendListItem writes a bullet or the item number before the text.
func (r *TextRenderer) AppendListItem(text string, ordered bool, number int) (types.BlockRef, error) {
	r.startLine()
	if ordered {
		r.buf.Write(fmt.Sprintf("%d. ", number))
	} else {
		r.buf.Write(r.config.MarkdownSymbol.Bullet + " ")
	}
	return r.writeText(text), nil
}

// AppendCodeBlock writes code verbatim and covers it with a pre entity.
func (r *TextRenderer) AppendCodeBlock(text string, language string) (types.BlockRef, error) {
	r.startLine()
	ref := r.writeText(text)
	start := r.blocks[ref].utf16Offset
	r.addEntity(Entity{
		Type:     "pre",
		Offset:   start,
		Length:   r.buf.UTF16Offset() - start,
		Language: strings.TrimSpace(language),
	})
	return ref, nil
}

// AppendBlank writes an empty line.
func (r *TextRenderer) AppendBlank() (types.BlockRef, error) {
	r.startLine()
	return r.writeText(""), nil
}

// AppendParagraph writes text as its own line.
func (r *TextRenderer) AppendParagraph(text string) (types.BlockRef, error) {
	r.startLine()
	return r.writeText(text), nil
}

// ApplyMark records span, given in byte offsets of the block's text, as an
// entity in UTF-16 offsets of the whole output.
func (r *TextRenderer) ApplyMark(ref types.BlockRef, span types.FormatSpan) error {
	if int(ref) < 0 || int(ref) >= len(r.blocks) {
		return fmt.Errorf("unknown block ref %d", ref)
	}
	b := r.blocks[ref]
	if span.Start < 0 || span.End > len(b.text) || span.Start >= span.End {
		return fmt.Errorf("span [%d,%d) outside block %d of length %d", span.Start, span.End, ref, len(b.text))
	}
	r.addEntity(Entity{
		Type:   span.Mark.String(),
		Offset: b.utf16Offset + buffer.UTF16Len(b.text[:span.Start]),
		Length: buffer.UTF16Len(b.text[span.Start:span.End]),
	})
	return nil
}

// startLine separates blocks with a single newline.
func (r *TextRenderer) startLine() {
	if len(r.blocks) > 0 {
		r.buf.Write("\n")
	}
}

func (r *TextRenderer) writeText(text string) types.BlockRef {
	r.blocks = append(r.blocks, textBlock{text: text, utf16Offset: r.buf.UTF16Offset()})
	r.buf.Write(text)
	return types.BlockRef(len(r.blocks) - 1)
}

func (r *TextRenderer) addEntity(e Entity) {
	if e.Length <= 0 {
		return
	}
	r.entities = append(r.entities, e)
}
