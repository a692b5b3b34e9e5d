package sfcparser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerPosition(t *testing.T) {
	src := "ab\ncd\r\n\nefg"
	s := NewScanner(src)

	tests := []struct {
		offset int
		line   int
		column int
	}{
		{0, 1, 1},
		{2, 1, 3}, // the '\n' ends line 1
		{3, 2, 1},
		{5, 2, 3},
		{6, 2, 4},
		{7, 3, 1},
		{8, 4, 1},
		{10, 4, 3},
		{11, 4, 4}, // end of input
	}
	for _, tt := range tests {
		assert.Equal(t, Position{Line: tt.line, Column: tt.column, Offset: tt.offset}, s.Position(tt.offset), "offset %d", tt.offset)
	}
	assert.Equal(t, Position{Line: 4, Column: 4, Offset: 11}, s.Position(50))
}

func TestScannerPositionEmptyInput(t *testing.T) {
	assert.Equal(t, Position{Line: 1, Column: 1, Offset: 0}, NewScanner("").Position(0))
}

// largeTemplate builds a template of n child elements, one per line.
func largeTemplate(n int) string {
	var sb strings.Builder
	sb.WriteString("<template>\n")
	for i := 0; i < n; i++ {
		sb.WriteString("  <i>x</i>\n")
	}
	sb.WriteString("</template>\n<script>\nexport default {}\n</script>\n")
	return sb.String()
}

func TestParseLargeDocumentPositions(t *testing.T) {
	const n = 20000
	doc := mustParse(t, largeTemplate(n))

	tmpl := doc.Block("template")
	require.NotNil(t, tmpl)
	last := tmpl.Children[len(tmpl.Children)-1].(*Block)
	assert.Equal(t, Position{Line: n + 1, Column: 3, Offset: 11 + (n-1)*11 + 2}, last.Pos)
	assert.Equal(t, n+3, doc.Block("script").Pos.Line)
}

func BenchmarkParse(b *testing.B) {
	for _, size := range []struct {
		name string
		n    int
	}{
		{"small", 10},
		{"medium", 1000},
		{"large", 100000},
	} {
		src := largeTemplate(size.n)
		b.Run(size.name, func(b *testing.B) {
			b.SetBytes(int64(len(src)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := ParseString(src); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
