package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	docsmark "github.com/riverfjs/docsmark-go"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a document as plain text or HTML",
	Long: `Render converts the document and replays it into one of the reference
sinks: "text" prints plain text (and with --entities the formatting entities
in UTF-16 offsets as JSON), "html" prints an HTML fragment.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		to, _ := cmd.Flags().GetString("to")
		withEntities, _ := cmd.Flags().GetBool("entities")

		doc := docsmark.ConvertDocument(input)
		out := cmd.OutOrStdout()

		switch strings.ToLower(to) {
		case "text":
			r := docsmark.NewTextRenderer(renderConfig())
			if err := render(doc, r); err != nil {
				return err
			}
			text, entities := r.Result()
			fmt.Fprintln(out, text)
			if withEntities {
				return writeData(out, "json", entities)
			}
			return nil
		case "html":
			r := docsmark.NewHTMLRenderer(renderConfig())
			if err := render(doc, r); err != nil {
				return err
			}
			_, err := fmt.Fprint(out, r.String())
			return err
		default:
			return fmt.Errorf("unsupported render target %q (want text or html)", to)
		}
	},
}

// render treats an empty document as empty output rather than a failure.
func render(doc *docsmark.Document, sink docsmark.DocumentSink) error {
	err := docsmark.Render(doc, sink)
	if errors.Is(err, docsmark.ErrEmptyDocument) {
		docsmark.Logger.Warn("nothing to render")
		return nil
	}
	return err
}

func init() {
	renderCmd.Flags().String("to", "text", "render target: text or html")
	renderCmd.Flags().Bool("entities", false, "with --to text, also print entities as JSON")
	rootCmd.AddCommand(renderCmd)
}
