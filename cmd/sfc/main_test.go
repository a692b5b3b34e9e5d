package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/martinemde/sfc/sfcparser"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const component = `<template>
  <div :class="cls">{{ msg }}</div>
</template>

<script lang="ts" setup>
const msg = "hi";
</script>

<style scoped>
.a { color: red }
</style>
`

func mustParse(t *testing.T, src string) *sfcparser.Document {
	t.Helper()
	doc, err := sfcparser.ParseString(src)
	require.NoError(t, err)
	return doc
}

// plainRenderer renders without any escape codes.
func plainRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.Ascii)
	return r
}

// executeCommand runs the root command with args and returns its stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeComponent(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "App.vue")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestToNodesJSON(t *testing.T) {
	doc := mustParse(t, `<script lang="ts" setup>x</script>`)

	data, err := json.Marshal(toNodes(doc.Sections))
	require.NoError(t, err)

	var nodes []node
	require.NoError(t, json.Unmarshal(data, &nodes))
	require.Len(t, nodes, 1)
	assert.Equal(t, "block", nodes[0].Type)
	assert.Equal(t, "script", nodes[0].Name)
	assert.Equal(t, "raw", nodes[0].Kind)
	require.NotNil(t, nodes[0].Text)
	assert.Equal(t, "x", *nodes[0].Text)
	require.Len(t, nodes[0].Attrs, 2)
	assert.Equal(t, "ts", *nodes[0].Attrs[0].Value)
	assert.Nil(t, nodes[0].Attrs[1].Value)
}

func TestToNodesYAML(t *testing.T) {
	doc := mustParse(t, component)
	want := toNodes(doc.Sections)

	data, err := yaml.Marshal(want)
	require.NoError(t, err)

	var got []node
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, want, got)
}

func TestWriteTree(t *testing.T) {
	doc := mustParse(t, `<template><div a="1">x</div><br></template><style>p {}</style>`)

	var buf bytes.Buffer
	writeTree(&buf, doc.Sections, 0)

	want := `<template> nested @1:1
  <div a="1"> nested @1:11
    raw "x"
  <br> void @1:29
<style> raw @1:44
  raw "p {}"
`
	assert.Equal(t, want, buf.String())
}

func TestLintSource(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		strict   bool
		failures int
		contains []string
	}{
		{
			name:     "clean",
			src:      component,
			failures: 0,
		},
		{
			name:     "two templates",
			src:      "<template>a</template><template>b</template>",
			failures: 1,
			contains: []string{"App.vue:1:23: ERROR single_template:", "fix: merge the templates"},
		},
		{
			name:     "parse error",
			src:      "</div>",
			failures: 1,
			contains: []string{"App.vue:1:1: ERROR parse: line 1, col 1: unmatched closing tag"},
		},
		{
			name:     "warning",
			src:      "<style>a</style>",
			failures: 0,
			contains: []string{"WARNING missing_template_or_script"},
		},
		{
			name:     "warning in strict mode",
			src:      "<style>a</style>",
			strict:   true,
			failures: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			n := lintSource(&buf, newLintStyles(plainRenderer(&buf)), "App.vue", []byte(tt.src), tt.strict)
			assert.Equal(t, tt.failures, n)
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
			if tt.failures == 0 && len(tt.contains) == 0 {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestLexerFor(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`<script lang="ts">x</script>`, "TypeScript"},
		{`<script>x</script>`, "JavaScript"},
		{`<style>x</style>`, "CSS"},
		{`<template>x</template>`, "HTML"},
		{`<i18n lang="json">{}</i18n>`, "JSON"},
		{`<docs>x</docs>`, "fallback"},
		{`<script lang="no-such-language">x</script>`, "fallback"},
	}
	for _, tt := range tests {
		doc := mustParse(t, tt.src)
		lexer := lexerFor(doc.Blocks()[0])
		assert.Equal(t, tt.want, lexer.Config().Name, "input: %s", tt.src)
	}
}

func TestHighlightKeepsText(t *testing.T) {
	doc := mustParse(t, component)
	script := doc.Block("script")

	text := script.Text()
	got, err := highlight(plainRenderer(io.Discard), lexerFor(script), chromaStyle("dracula"), text)
	require.NoError(t, err)
	assert.Equal(t, text, got)
}

func TestChromaStyleFallback(t *testing.T) {
	assert.NotNil(t, chromaStyle("dracula"))
	assert.NotNil(t, chromaStyle("no-such-style"))
}

func TestSelectBlock(t *testing.T) {
	doc := mustParse(t, "<script>a</script><script setup>b</script>")

	b, err := selectBlock(doc, "script", 1)
	require.NoError(t, err)
	assert.Equal(t, "b", b.Text())

	_, err = selectBlock(doc, "script", 2)
	assert.ErrorContains(t, err, "out of range")

	_, err = selectBlock(doc, "style", 0)
	assert.ErrorContains(t, err, "no <style> block found")
}

func TestBlockBody(t *testing.T) {
	doc := mustParse(t, component)

	body, err := blockBody(doc.Block("template"))
	require.NoError(t, err)
	assert.Equal(t, "\n  <div :class=\"cls\">{{ msg }}</div>", body)

	body, err = blockBody(doc.Block("style"))
	require.NoError(t, err)
	assert.Equal(t, "\n.a { color: red }\n", body)
}

func TestFormatSource(t *testing.T) {
	got, comments, err := formatSource([]byte("<!-- header -->\n<script lang='ts'>x</script>\n\n\n"))
	require.NoError(t, err)
	assert.Equal(t, "\n<script lang=\"ts\">x</script>\n", string(got))
	assert.Equal(t, []sfcparser.Position{{Line: 1, Column: 1, Offset: 0}}, comments)

	again, comments, err := formatSource(got)
	require.NoError(t, err)
	assert.Equal(t, string(got), string(again))
	assert.Empty(t, comments)

	_, _, err = formatSource([]byte("<div>"))
	assert.ErrorIs(t, err, sfcparser.ErrUnterminatedBlock)
}

func TestFmtCommandKeepsFilesWithComments(t *testing.T) {
	src := "<template>\n  <!-- keep me -->\n  <p class='a'>x</p>\n</template>\n"
	path := writeComponent(t, src)

	_, err := executeCommand(t, "fmt", "--write", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 comment(s)")
	assert.Contains(t, err.Error(), ":2:3:")

	_, err = executeCommand(t, "fmt", "--check", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not rewriting")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, src, string(data))
}

func TestFmtCommandWrite(t *testing.T) {
	path := writeComponent(t, "<template><p class='a'>x</p></template>\n\n")

	_, err := executeCommand(t, "fmt", "--write", "--check=false", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<template><p class=\"a\">x</p></template>\n", string(data))
}

func TestExtractCommand(t *testing.T) {
	path := writeComponent(t, component)

	out, err := executeCommand(t, "extract", path, "script")
	require.NoError(t, err)
	assert.Equal(t, "\nconst msg = \"hi\";\n", out)
}

func TestParseCommandJSON(t *testing.T) {
	path := writeComponent(t, component)

	out, err := executeCommand(t, "parse", "--format", "json", path)
	require.NoError(t, err)

	var nodes []node
	require.NoError(t, json.Unmarshal([]byte(out), &nodes))
	var names []string
	for _, n := range nodes {
		if n.Type == "block" {
			names = append(names, n.Name)
		}
	}
	assert.Equal(t, []string{"template", "script", "style"}, names)
}

func TestLintCommandFails(t *testing.T) {
	path := writeComponent(t, "<template>a</template><template>b</template>")

	out, err := executeCommand(t, "lint", "--no-color", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 problem(s) found")
	assert.True(t, strings.Contains(out, "single_template"))
}
