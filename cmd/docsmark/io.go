package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	docsmark "github.com/riverfjs/docsmark-go"
)

// readInput reads the file named by args[0], or stdin when it is absent or "-".
func readInput(in io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), nil
}

// writeData encodes v as JSON or YAML.
func writeData(w io.Writer, format string, v any) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q (want json or yaml)", format)
	}
}

// renderConfig builds a RenderConfig from the defaults and any overrides in
// the config file or environment.
func renderConfig() *docsmark.RenderConfig {
	def := docsmark.DefaultConfig()
	symbols := *def.MarkdownSymbol
	config := &docsmark.RenderConfig{
		MarkdownSymbol: &symbols,
		CodeFont:       def.CodeFont,
		CodeBackground: def.CodeBackground,
	}

	overrides := map[string]*string{
		"symbols.heading1": &symbols.HeadingLevel1,
		"symbols.heading2": &symbols.HeadingLevel2,
		"symbols.heading3": &symbols.HeadingLevel3,
		"symbols.bullet":   &symbols.Bullet,
		"code_font":        &config.CodeFont,
		"code_background":  &config.CodeBackground,
	}
	for key, dst := range overrides {
		if viper.IsSet(key) {
			*dst = viper.GetString(key)
		}
	}
	return config
}
