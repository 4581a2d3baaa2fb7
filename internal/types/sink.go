package types

// BlockRef identifies a block previously appended to a document sink.
type BlockRef int

// SlideHandle identifies a slide created by a slide sink.
type SlideHandle int
