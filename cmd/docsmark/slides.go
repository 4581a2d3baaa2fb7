package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	docsmark "github.com/riverfjs/docsmark-go"
)

var slidesCmd = &cobra.Command{
	Use:   "slides [file]",
	Short: "Extract slides from a Title:/Body:/Notes: deck",
	Long: `Slides splits the input on separator lines ("---", "--- [SLIDE 3] ---")
and extracts the title, subtitle, body and speaker notes of every section.
Sections with neither a title nor a body are skipped.

Exits with an error when no slide is found, unless --allow-empty is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		allowEmpty, _ := cmd.Flags().GetBool("allow-empty")

		deck := docsmark.ExtractSlides(input)
		if deck.IsEmpty() && !allowEmpty {
			return docsmark.ErrNoSlides
		}

		format := viper.GetString("output")
		if strings.EqualFold(format, "html") {
			sink := docsmark.NewHTMLSlides()
			if _, err := docsmark.RenderSlides(deck, sink); err != nil && !allowEmpty {
				return err
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), sink.String())
			return err
		}
		return writeData(cmd.OutOrStdout(), format, deck)
	},
}

func init() {
	slidesCmd.Flags().Bool("allow-empty", false, "succeed even when no slide is found")
	rootCmd.AddCommand(slidesCmd)
}
