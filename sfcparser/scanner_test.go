package sfcparser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectTags walks the scanner from the start of src and returns every tag
// up to and including the final TagNone.
func collectTags(t *testing.T, src string) []Tag {
	t.Helper()
	s := NewScanner(src)
	var tags []Tag
	for i := 0; ; {
		tag, err := s.Next(i)
		require.NoError(t, err)
		tags = append(tags, tag)
		if tag.Kind == TagNone {
			return tags
		}
		i = tag.End
	}
}

func TestScannerTagSequence(t *testing.T) {
	src := `<template lang="html"><br/></template><!-- note --><x-y>`
	tags := collectTags(t, src)

	kinds := make([]TagKind, len(tags))
	for i, tag := range tags {
		kinds[i] = tag.Kind
	}
	assert.Equal(t, []TagKind{TagOpen, TagOpen, TagClose, TagComment, TagOpen, TagNone}, kinds)

	assert.Equal(t, "template", tags[0].Name.String())
	assert.Equal(t, 0, tags[0].Start)
	assert.Equal(t, 22, tags[0].End)
	assert.Equal(t, ` lang="html"`, src[tags[0].AttrStart:tags[0].AttrEnd])

	assert.Equal(t, "br", tags[1].Name.String())
	assert.True(t, tags[1].SelfClosing)
	assert.Equal(t, tags[1].AttrStart, tags[1].AttrEnd)

	assert.Equal(t, "template", tags[2].Name.String())
	assert.Equal(t, "<!-- note -->", src[tags[3].Start:tags[3].End])
	assert.Equal(t, "x-y", tags[4].Name.String())
	assert.Equal(t, len(src), tags[5].Start)
}

func TestScannerLeavesNonTagsAsText(t *testing.T) {
	for _, src := range []string{"hello", "a < b", "1 <2", "<", "</", "</ div>", "<!DOCTYPE html>", "<-->", "x <= y"} {
		tags := collectTags(t, src)
		require.Len(t, tags, 1, "input: %q", src)
		assert.Equal(t, TagNone, tags[0].Kind, "input: %q", src)
	}
}

func TestScannerCommentHidesTags(t *testing.T) {
	src := "<!-- <fake> --><real/>"
	tags := collectTags(t, src)
	require.Len(t, tags, 3)
	assert.Equal(t, TagComment, tags[0].Kind)
	assert.Equal(t, 15, tags[0].End)
	assert.Equal(t, "real", tags[1].Name.String())
	assert.True(t, tags[1].SelfClosing)
}

func TestScannerEmptyComment(t *testing.T) {
	tags := collectTags(t, "<!---->a")
	require.Len(t, tags, 2)
	assert.Equal(t, TagComment, tags[0].Kind)
	assert.Equal(t, 7, tags[0].End)
}

func TestScannerQuotedGreaterThan(t *testing.T) {
	src := `<a title="x > y" alt='/>'>`
	tags := collectTags(t, src)
	require.Len(t, tags, 2)
	assert.Equal(t, len(src), tags[0].End)
	assert.False(t, tags[0].SelfClosing)
}

func TestScannerQuoteOnlyAfterEquals(t *testing.T) {
	// The apostrophe is not a value delimiter, so the tag ends at the first '>'.
	tags := collectTags(t, `<p it's>`)
	require.Len(t, tags, 2)
	assert.Equal(t, 8, tags[0].End)
}

func TestScannerCloseTagWhitespace(t *testing.T) {
	tags := collectTags(t, "x</div \n>")
	require.Len(t, tags, 2)
	assert.Equal(t, TagClose, tags[0].Kind)
	assert.Equal(t, "div", tags[0].Name.String())
	assert.Equal(t, 1, tags[0].Start)
	assert.Equal(t, 9, tags[0].End)
}

func TestScannerErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		kind   error
		line   int
		column int
	}{
		{"unclosed opening tag", "<div", ErrMalformedTag, 1, 1},
		{"unclosed closing tag", "text</div", ErrMalformedTag, 1, 5},
		{"junk in closing tag", "</div x>", ErrMalformedTag, 1, 1},
		{"unterminated comment", "\n<!-- open", ErrUnterminatedBlock, 2, 1},
		{"bad block name", "<a$b>", ErrInvalidBlockName, 1, 3},
		{"bad closing name", "</a%>", ErrInvalidBlockName, 1, 4},
		{"unclosed quote", `<a b="x>`, ErrMalformedAttributeSyntax, 1, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScanner(tt.input).Next(0)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "got %v", err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.line, pe.Pos.Line)
			assert.Equal(t, tt.column, pe.Pos.Column)
		})
	}
}

func TestScannerBlockNameErrorWrapsNameError(t *testing.T) {
	_, err := NewScanner("<a$b>").Next(0)
	require.Error(t, err)

	var ne *NameError
	require.True(t, errors.As(err, &ne))
	assert.Equal(t, RuleIllegalChar, ne.Rule)
	assert.Equal(t, byte('$'), ne.Char)
	assert.Equal(t, `line 1, col 3: invalid block name: "a$b" has illegal character '$' at index 1`, err.Error())
}

func TestFindClose(t *testing.T) {
	script := MustBlockName("script")
	tests := []struct {
		name  string
		input string
		start int
		end   int
		ok    bool
	}{
		{"plain", "if (a < b) {}</script>", 13, 22, true},
		{"whitespace before >", "x</script  >", 1, 12, true},
		{"longer name skipped", "</scriptx></script>", 10, 19, true},
		{"no '>'", "</script", 0, 0, false},
		{"missing", "no close here", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := NewScanner(tt.input).FindClose(script, 0)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestCloseAt(t *testing.T) {
	s := NewScanner("<img></img> </img>")
	img := MustBlockName("img")

	end, ok := s.CloseAt(img, 5)
	assert.True(t, ok)
	assert.Equal(t, 11, end)

	_, ok = s.CloseAt(img, 11)
	assert.False(t, ok)

	_, ok = s.CloseAt(img, 18)
	assert.False(t, ok)
}

func TestTagKindString(t *testing.T) {
	assert.Equal(t, "none", TagNone.String())
	assert.Equal(t, "opening tag", TagOpen.String())
	assert.Equal(t, "closing tag", TagClose.String())
	assert.Equal(t, "comment", TagComment.String())
	assert.Equal(t, "unknown", TagKind(42).String())
}
