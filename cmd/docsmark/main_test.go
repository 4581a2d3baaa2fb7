package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	docsmark "github.com/riverfjs/docsmark-go"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestReadInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("# from file"), 0o644))

	got, err := readInput(strings.NewReader("ignored"), []string{path})
	require.NoError(t, err)
	assert.Equal(t, "# from file", got)

	got, err = readInput(strings.NewReader("from stdin"), []string{"-"})
	require.NoError(t, err)
	assert.Equal(t, "from stdin", got)

	_, err = readInput(nil, []string{filepath.Join(dir, "missing.md")})
	assert.Error(t, err)
}

func TestWriteData(t *testing.T) {
	v := []docsmark.FormatSpan{{Start: 0, End: 4, Mark: docsmark.Bold}}

	var js bytes.Buffer
	require.NoError(t, writeData(&js, "json", v))
	assert.JSONEq(t, `[{"start":0,"end":4,"mark":"bold"}]`, js.String())

	var yml bytes.Buffer
	require.NoError(t, writeData(&yml, "YAML", v))
	assert.Equal(t, "- start: 0\n  end: 4\n  mark: bold\n", yml.String())

	assert.Error(t, writeData(&bytes.Buffer{}, "xml", v))
}

func TestViewBlocks(t *testing.T) {
	doc := docsmark.ConvertDocument("## T\n3. **x**\n```go\ny\n")
	views := viewBlocks(doc, true)
	require.Len(t, views, 3)

	assert.Equal(t, blockView{Kind: "heading", Level: 2, Text: "T"}, views[0])
	assert.Equal(t, "list_item", views[1].Kind)
	assert.True(t, views[1].Ordered)
	assert.Equal(t, 3, views[1].Number)
	assert.Equal(t, []docsmark.UTF16Span{{Offset: 0, Length: 1, Mark: docsmark.Bold}}, views[1].UTF16Spans)
	assert.Equal(t, blockView{Kind: "code_block", Language: "go", Unterminated: true, Text: "y"}, views[2])
}

func TestRenderConfig_Overrides(t *testing.T) {
	viper.Set("symbols.bullet", "-")
	viper.Set("code_font", "Roboto Mono")
	t.Cleanup(func() {
		viper.Set("symbols.bullet", nil)
		viper.Set("code_font", nil)
	})

	config := renderConfig()
	assert.Equal(t, "-", config.MarkdownSymbol.Bullet)
	assert.Equal(t, "Roboto Mono", config.CodeFont)
	assert.Equal(t, "#f4f4f4", config.CodeBackground)
	assert.Equal(t, "•", docsmark.DefaultConfig().MarkdownSymbol.Bullet)
}

func TestBlocksCommand(t *testing.T) {
	out, err := runCLI(t, "# Hi\n**b**\n", "blocks")
	require.NoError(t, err)

	var views []blockView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 2)
	assert.Equal(t, "Hi", views[0].Text)
	assert.Equal(t, "b", views[1].Text)
}

func TestSlidesCommand_NoSlides(t *testing.T) {
	_, err := runCLI(t, "just text\n", "slides")
	assert.ErrorIs(t, err, docsmark.ErrNoSlides)
}

func TestRenderCommand_HTML(t *testing.T) {
	out, err := runCLI(t, "*hi*\n", "render", "--to", "html")
	require.NoError(t, err)
	assert.Equal(t, "<p><em>hi</em></p>\n", out)
}
