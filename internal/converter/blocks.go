package converter

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/riverfjs/docsmark-go/internal/types"
)

const fence = "```"

var (
	headingRe = regexp.MustCompile(`^(#{1,3})\s+(.*)$`)
	bulletRe  = regexp.MustCompile(`^\s*[*-]\s+(.*)$`)
	orderedRe = regexp.MustCompile(`^\s*(\d{1,9})\.\s+(.*)$`)
)

// ListMarker is the result of recognizing a list item prefix on a line.
type ListMarker struct {
	Ordered bool
	Number  int
	Text    string
}

// ParseListMarker recognizes a bullet ("*" or "-") or numbered ("12.")
// prefix followed by whitespace. Text is the line with the prefix removed.
func ParseListMarker(line string) (ListMarker, bool) {
	if m := bulletRe.FindStringSubmatch(line); m != nil {
		return ListMarker{Text: m[1]}, true
	}
	if m := orderedRe.FindStringSubmatch(line); m != nil {
		n, _ := strconv.Atoi(m[1])
		return ListMarker{Ordered: true, Number: n, Text: m[2]}, true
	}
	return ListMarker{}, false
}

// codeAccumulator collects fence interior lines while a fence is open.
type codeAccumulator struct {
	language string
	lines    []string
}

func (a *codeAccumulator) flush(unterminated bool) *types.CodeBlock {
	return &types.CodeBlock{
		Language:     a.language,
		Text:         strings.Join(a.lines, "\n"),
		Unterminated: unterminated,
	}
}

// Segment splits text into blocks in source order. Every line maps to
// exactly one block except fenced code, which collapses into one CodeBlock.
//
// A fence still open at end of input is flushed as a CodeBlock with
// Unterminated set, so no content is lost.
func Segment(text string) []types.Block {
	lines := SplitLines(Normalize(text))
	blocks := make([]types.Block, 0, len(lines))

	var acc *codeAccumulator
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, fence) {
			if acc == nil {
				acc = &codeAccumulator{language: fenceLanguage(trimmed)}
			} else {
				blocks = append(blocks, acc.flush(false))
				acc = nil
			}
			continue
		}

		// Fence content is raw
		if acc != nil {
			acc.lines = append(acc.lines, line)
			continue
		}

		blocks = append(blocks, classify(line, trimmed))
	}

	if acc != nil {
		blocks = append(blocks, acc.flush(true))
	}
	return blocks
}

func classify(line, trimmed string) types.Block {
	if trimmed == "" {
		return &types.Blank{}
	}
	if m := headingRe.FindStringSubmatch(line); m != nil {
		return &types.Heading{Level: len(m[1]), Text: m[2]}
	}
	if lm, ok := ParseListMarker(line); ok {
		return &types.ListItem{Ordered: lm.Ordered, Number: lm.Number, Text: lm.Text}
	}
	return &types.Paragraph{Text: line}
}

// fenceLanguage returns the first word of the info string after the opening fence.
func fenceLanguage(trimmed string) string {
	info := strings.TrimLeft(trimmed, "`")
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
