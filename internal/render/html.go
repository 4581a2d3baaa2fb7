package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark/util"

	"github.com/riverfjs/docsmark-go/internal/types"
)

type htmlBlock struct {
	kind     types.BlockKind
	level    int
	ordered  bool
	number   int
	language string
	text     string
	spans    []types.FormatSpan
}

var markTags = map[types.Mark]string{
	types.Bold:   "strong",
	types.Italic: "em",
	types.Code:   "code",
}

// HTMLRenderer collects blocks and renders them as an HTML fragment.
// Consecutive list items of the same kind share one list element.
type HTMLRenderer struct {
	config *types.RenderConfig
	blocks []*htmlBlock
}

// NewHTMLRenderer creates an HTMLRenderer. A nil config selects the defaults.
func NewHTMLRenderer(config *types.RenderConfig) *HTMLRenderer {
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	return &HTMLRenderer{config: config}
}

func (r *HTMLRenderer) add(b *htmlBlock) (types.BlockRef, error) {
	r.blocks = append(r.blocks, b)
	return types.BlockRef(len(r.blocks) - 1), nil
}

func (r *HTMLRenderer) AppendHeading(text string, level int) (types.BlockRef, error) {
	return r.add(&htmlBlock{kind: types.KindHeading, level: level, text: text})
}

func (r *HTMLRenderer) AppendListItem(text string, ordered bool, number int) (types.BlockRef, error) {
	return r.add(&htmlBlock{kind: types.KindListItem, ordered: ordered, number: number, text: text})
}

func (r *HTMLRenderer) AppendCodeBlock(text string, language string) (types.BlockRef, error) {
	return r.add(&htmlBlock{kind: types.KindCodeBlock, language: language, text: text})
}

func (r *HTMLRenderer) AppendBlank() (types.BlockRef, error) {
	return r.add(&htmlBlock{kind: types.KindBlank})
}

func (r *HTMLRenderer) AppendParagraph(text string) (types.BlockRef, error) {
	return r.add(&htmlBlock{kind: types.KindParagraph, text: text})
}

func (r *HTMLRenderer) ApplyMark(ref types.BlockRef, span types.FormatSpan) error {
	if int(ref) < 0 || int(ref) >= len(r.blocks) {
		return fmt.Errorf("unknown block ref %d", ref)
	}
	b := r.blocks[ref]
	if span.Start < 0 || span.End > len(b.text) || span.Start >= span.End {
		return fmt.Errorf("span [%d,%d) outside block %d of length %d", span.Start, span.End, ref, len(b.text))
	}
	b.spans = append(b.spans, span)
	return nil
}

// String renders the collected blocks.
func (r *HTMLRenderer) String() string {
	var sb strings.Builder
	openList := ""

	closeList := func() {
		if openList != "" {
			sb.WriteString("</" + openList + ">\n")
			openList = ""
		}
	}

	for _, b := range r.blocks {
		if b.kind != types.KindListItem {
			closeList()
		}
		switch b.kind {
		case types.KindHeading:
			fmt.Fprintf(&sb, "<h%d>%s</h%d>\n", b.level, renderInline(b.text, b.spans), b.level)
		case types.KindListItem:
			tag := "ul"
			if b.ordered {
				tag = "ol"
			}
			if openList != tag {
				closeList()
				if b.ordered && b.number != 1 {
					fmt.Fprintf(&sb, "<ol start=\"%d\">\n", b.number)
				} else {
					sb.WriteString("<" + tag + ">\n")
				}
				openList = tag
			}
			fmt.Fprintf(&sb, "<li>%s</li>\n", renderInline(b.text, b.spans))
		case types.KindCodeBlock:
			r.writeCode(&sb, b)
		case types.KindBlank:
			sb.WriteString("<br>\n")
		case types.KindParagraph:
			fmt.Fprintf(&sb, "<p>%s</p>\n", renderInline(b.text, b.spans))
		}
	}
	closeList()
	return sb.String()
}

func (r *HTMLRenderer) writeCode(sb *strings.Builder, b *htmlBlock) {
	fmt.Fprintf(sb, "<pre style=\"font-family: '%s'; background-color: %s\">",
		escape(r.config.CodeFont), escape(r.config.CodeBackground))
	if b.language != "" {
		fmt.Fprintf(sb, "<code class=\"language-%s\">", escape(b.language))
	} else {
		sb.WriteString("<code>")
	}
	sb.WriteString(escape(b.text))
	sb.WriteString("</code></pre>\n")
}

// renderInline cuts text at every span boundary and wraps each piece in
// the tags of the spans covering it, so crossing spans still nest properly.
func renderInline(text string, spans []types.FormatSpan) string {
	if len(spans) == 0 {
		return escape(text)
	}

	cuts := []int{0, len(text)}
	for _, s := range spans {
		cuts = append(cuts, s.Start, s.End)
	}
	sort.Ints(cuts)

	var sb strings.Builder
	for i := 0; i+1 < len(cuts); i++ {
		lo, hi := cuts[i], cuts[i+1]
		if lo == hi {
			continue
		}
		var tags []string
		for _, mark := range []types.Mark{types.Bold, types.Italic, types.Code} {
			for _, s := range spans {
				if s.Mark == mark && s.Start <= lo && hi <= s.End {
					tags = append(tags, markTags[mark])
					break
				}
			}
		}
		for _, tag := range tags {
			sb.WriteString("<" + tag + ">")
		}
		sb.WriteString(escape(text[lo:hi]))
		for j := len(tags) - 1; j >= 0; j-- {
			sb.WriteString("</" + tags[j] + ">")
		}
	}
	return sb.String()
}

func escape(s string) string {
	return string(util.EscapeHTML([]byte(s)))
}

// HTMLSlides renders slides as HTML sections with speaker notes in an aside.
type HTMLSlides struct {
	slides []types.SlideFields
}

// NewHTMLSlides creates an empty HTMLSlides sink.
func NewHTMLSlides() *HTMLSlides {
	return &HTMLSlides{}
}

// CreateSlide records one slide.
func (s *HTMLSlides) CreateSlide(fields types.SlideFields) (types.SlideHandle, error) {
	s.slides = append(s.slides, fields)
	return types.SlideHandle(len(s.slides) - 1), nil
}

// String renders the recorded slides.
func (s *HTMLSlides) String() string {
	var sb strings.Builder
	for i, f := range s.slides {
		fmt.Fprintf(&sb, "<section class=\"slide %s\" id=\"slide-%d\">\n", f.Layout(), i+1)
		if f.Title != "" {
			fmt.Fprintf(&sb, "<h1>%s</h1>\n", escape(f.Title))
		}
		if f.Subtitle != "" {
			fmt.Fprintf(&sb, "<h2>%s</h2>\n", escape(f.Subtitle))
		}
		if f.Content != "" {
			lines := strings.Split(f.Content, "\n")
			for j, line := range lines {
				lines[j] = escape(line)
			}
			fmt.Fprintf(&sb, "<div class=\"body\">%s</div>\n", strings.Join(lines, "<br>\n"))
		}
		if f.SpeakerNotes != "" {
			fmt.Fprintf(&sb, "<aside class=\"notes\">%s</aside>\n", escape(f.SpeakerNotes))
		}
		sb.WriteString("</section>\n")
	}
	return sb.String()
}
