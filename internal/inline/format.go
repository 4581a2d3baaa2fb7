// Package inline extracts bold, italic and inline code spans from a line of
// markup and returns the mark-free text together with the span ranges.
package inline

import (
	"regexp"
	"sort"
	"strings"

	"github.com/riverfjs/docsmark-go/internal/types"
)

// pass strips one kind of delimiter pair.
type pass struct {
	re   *regexp.Regexp
	mark types.Mark
}

// Passes run in this order, each over the output of the previous one. Bold
// goes first so that "**" pairs are gone before single "*" is scanned.
var passes = []pass{
	{re: regexp.MustCompile(`\*\*([^*]+)\*\*`), mark: types.Bold},
	{re: regexp.MustCompile(`\*([^*]+)\*`), mark: types.Italic},
	{re: regexp.MustCompile("`([^`]+)`"), mark: types.Code},
}

// removal is a run of n delimiter bytes deleted at offset at of a pass input.
type removal struct {
	at int
	n  int
}

// Format returns raw with every matched delimiter pair removed and the
// spans of the enclosed text, in clean-text byte offsets. Unmatched
// delimiters stay in the text verbatim.
func Format(raw string) (string, []types.FormatSpan) {
	text := raw
	var spans []types.FormatSpan

	for _, p := range passes {
		clean, found, removed := p.apply(text)
		if len(found) == 0 {
			continue
		}
		for i := range spans {
			spans[i].Start = shift(spans[i].Start, removed)
			spans[i].End = shift(spans[i].End, removed)
		}
		spans = append(spans, found...)
		text = clean
	}

	return text, normalize(spans)
}

// Strip returns only the mark-free text of raw.
func Strip(raw string) string {
	text, _ := Format(raw)
	return text
}

// apply scans the immutable input once and builds the output from the
// segments between delimiters. Span offsets are taken from the output as
// it grows, so no offset ever needs to be corrected after a deletion.
func (p pass) apply(text string) (string, []types.FormatSpan, []removal) {
	matches := p.re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, nil, nil
	}

	var b strings.Builder
	b.Grow(len(text))
	spans := make([]types.FormatSpan, 0, len(matches))
	removed := make([]removal, 0, 2*len(matches))

	prev := 0
	for _, m := range matches {
		start, end, innerStart, innerEnd := m[0], m[1], m[2], m[3]
		b.WriteString(text[prev:start])
		spanStart := b.Len()
		b.WriteString(text[innerStart:innerEnd])
		spans = append(spans, types.FormatSpan{Start: spanStart, End: b.Len(), Mark: p.mark})
		removed = append(removed,
			removal{at: start, n: innerStart - start},
			removal{at: innerEnd, n: end - innerEnd},
		)
		prev = end
	}
	b.WriteString(text[prev:])

	return b.String(), spans, removed
}

// shift maps an offset in a pass input to the pass output.
func shift(pos int, removed []removal) int {
	out := pos
	for _, r := range removed {
		if r.at >= pos {
			break
		}
		out -= min(r.n, pos-r.at)
	}
	return out
}

// normalize drops collapsed spans and orders the rest by start, then mark.
func normalize(spans []types.FormatSpan) []types.FormatSpan {
	out := spans[:0]
	for _, s := range spans {
		if s.End > s.Start {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].Mark < out[j].Mark
	})
	return out
}
