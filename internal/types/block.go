package types

// BlockKind identifies the variant of a Block.
type BlockKind int

const (
	KindHeading BlockKind = iota
	KindListItem
	KindCodeBlock
	KindBlank
	KindParagraph
)

// String returns the string representation of BlockKind.
func (k BlockKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindListItem:
		return "list_item"
	case KindCodeBlock:
		return "code_block"
	case KindBlank:
		return "blank"
	case KindParagraph:
		return "paragraph"
	default:
		return "unknown"
	}
}

// MarshalText lets encoders print the kind by name.
func (k BlockKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Block is one structurally typed unit of a segmented document.
//
// The set of implementations is closed: *Heading, *ListItem, *CodeBlock,
// *Blank and *Paragraph.
type Block interface {
	Kind() BlockKind
	RawText() string
	isBlock()
}

// Heading is a level 1..3 heading with its marker stripped.
type Heading struct {
	Level int    `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
}

func (b *Heading) Kind() BlockKind { return KindHeading }
func (b *Heading) RawText() string { return b.Text }
func (b *Heading) isBlock()        {}

// ListItem is a single bullet or numbered item. Number is the parsed
// label of an ordered item and is not part of Text.
type ListItem struct {
	Ordered bool   `json:"ordered" yaml:"ordered"`
	Number  int    `json:"number,omitempty" yaml:"number,omitempty"`
	Text    string `json:"text" yaml:"text"`
}

func (b *ListItem) Kind() BlockKind { return KindListItem }
func (b *ListItem) RawText() string { return b.Text }
func (b *ListItem) isBlock()        {}

// CodeBlock holds the verbatim lines between two fences joined by "\n".
// Unterminated is set when input ended before the closing fence.
type CodeBlock struct {
	Language     string `json:"language,omitempty" yaml:"language,omitempty"`
	Text         string `json:"text" yaml:"text"`
	Unterminated bool   `json:"unterminated,omitempty" yaml:"unterminated,omitempty"`
}

func (b *CodeBlock) Kind() BlockKind { return KindCodeBlock }
func (b *CodeBlock) RawText() string { return b.Text }
func (b *CodeBlock) isBlock()        {}

// Blank is an all-whitespace source line.
type Blank struct{}

func (b *Blank) Kind() BlockKind { return KindBlank }
func (b *Blank) RawText() string { return "" }
func (b *Blank) isBlock()        {}

// Paragraph is any other non-blank line, kept whole.
type Paragraph struct {
	Text string `json:"text" yaml:"text"`
}

func (b *Paragraph) Kind() BlockKind { return KindParagraph }
func (b *Paragraph) RawText() string { return b.Text }
func (b *Paragraph) isBlock()        {}
