package docsmark

import "errors"

var (
	// ErrEmptyDocument is returned by Render when a document holds no
	// block other than blank lines.
	ErrEmptyDocument = errors.New("docsmark: document has no content")

	// ErrNoSlides is returned by RenderSlides when no usable slide was found.
	ErrNoSlides = errors.New("docsmark: no valid slides found, check separators (---)")

	// ErrUnknownBlock is returned for a Block implementation Render cannot dispatch.
	ErrUnknownBlock = errors.New("docsmark: unknown block type")
)
