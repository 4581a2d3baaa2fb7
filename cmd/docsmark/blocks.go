package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	docsmark "github.com/riverfjs/docsmark-go"
)

// blockView is the serialized form of one converted block.
type blockView struct {
	Kind         string                `json:"kind" yaml:"kind"`
	Level        int                   `json:"level,omitempty" yaml:"level,omitempty"`
	Ordered      bool                  `json:"ordered,omitempty" yaml:"ordered,omitempty"`
	Number       int                   `json:"number,omitempty" yaml:"number,omitempty"`
	Language     string                `json:"language,omitempty" yaml:"language,omitempty"`
	Unterminated bool                  `json:"unterminated,omitempty" yaml:"unterminated,omitempty"`
	Text         string                `json:"text" yaml:"text"`
	Spans        []docsmark.FormatSpan `json:"spans,omitempty" yaml:"spans,omitempty"`
	UTF16Spans   []docsmark.UTF16Span  `json:"utf16_spans,omitempty" yaml:"utf16_spans,omitempty"`
}

func viewBlocks(doc *docsmark.Document, utf16 bool) []blockView {
	views := make([]blockView, 0, len(doc.Blocks))
	for _, fb := range doc.Blocks {
		v := blockView{
			Kind:  fb.Block.Kind().String(),
			Text:  fb.Text,
			Spans: fb.Spans,
		}
		switch b := fb.Block.(type) {
		case *docsmark.Heading:
			v.Level = b.Level
		case *docsmark.ListItem:
			v.Ordered = b.Ordered
			v.Number = b.Number
		case *docsmark.CodeBlock:
			v.Language = b.Language
			v.Unterminated = b.Unterminated
		}
		if utf16 {
			v.UTF16Spans = docsmark.ToUTF16(fb.Text, fb.Spans)
		}
		views = append(views, v)
	}
	return views
}

var blocksCmd = &cobra.Command{
	Use:   "blocks [file]",
	Short: "Segment a document into blocks and print them",
	Long: `Blocks prints every block of the document in source order with its
mark-free text and the bold, italic and code spans found in it. Span
offsets are bytes of the clean text; --utf16 adds UTF-16 offsets as used by
document APIs.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		utf16, _ := cmd.Flags().GetBool("utf16")
		doc := docsmark.ConvertDocument(input)
		return writeData(cmd.OutOrStdout(), viper.GetString("output"), viewBlocks(doc, utf16))
	},
}

func init() {
	blocksCmd.Flags().Bool("utf16", false, "include spans in UTF-16 code units")
	rootCmd.AddCommand(blocksCmd)
}
