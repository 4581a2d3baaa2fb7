package types

// Symbol defines the glyphs used when blocks are rendered as plain text.
type Symbol struct {
	HeadingLevel1 string
	HeadingLevel2 string
	HeadingLevel3 string
	Bullet        string
}

// DefaultSymbol returns the default glyph set.
func DefaultSymbol() *Symbol {
	return &Symbol{
		HeadingLevel1: "📌",
		HeadingLevel2: "📝",
		HeadingLevel3: "📋",
		Bullet:        "•",
	}
}

// Heading returns the symbol for a heading level, or "" when none is set.
func (s *Symbol) Heading(level int) string {
	switch level {
	case 1:
		return s.HeadingLevel1
	case 2:
		return s.HeadingLevel2
	case 3:
		return s.HeadingLevel3
	}
	return ""
}

// RenderConfig configures the reference renderers.
type RenderConfig struct {
	MarkdownSymbol *Symbol
	CodeFont       string
	CodeBackground string
}

// DefaultRenderConfig returns the default render configuration.
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		MarkdownSymbol: DefaultSymbol(),
		CodeFont:       "Courier New",
		CodeBackground: "#f4f4f4",
	}
}
