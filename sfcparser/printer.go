package sfcparser

import (
	"io"
	"strings"
)

// emptyComment separates adjacent Raw sections so they survive re-parsing
// as separate sections.
const emptyComment = "<!---->"

// Printer writes parsed sections back as SFC source text.
type Printer struct{}

// Print writes n, which must be a *Document, a Section or a []Section.
func (p *Printer) Print(w io.Writer, n any) error {
	ew := &errWriter{w: w}
	p.print(ew, n)
	return ew.err
}

func (p *Printer) print(w *errWriter, n any) {
	switch n := n.(type) {
	case *Document:
		if n == nil {
			return
		}
		p.print(w, n.Sections)

	case []Section:
		for i, s := range n {
			if i > 0 {
				_, prevRaw := n[i-1].(*Raw)
				_, raw := s.(*Raw)
				if prevRaw && raw {
					w.write(emptyComment)
				}
			}
			p.print(w, s)
		}

	case *Raw:
		if n == nil {
			return
		}
		w.write(n.Text)

	case *Block:
		if n == nil {
			return
		}
		w.write("<")
		w.write(n.Name.s)
		for _, a := range n.Attrs {
			w.write(" ")
			w.write(a.Name.s)
			if a.Value == nil {
				continue
			}
			quote := `"`
			if strings.Contains(a.Value.s, `"`) {
				quote = "'"
			}
			w.write("=" + quote + a.Value.s + quote)
		}
		w.write(">")

		switch n.Kind {
		case BodyVoid:
			return
		case BodyRaw:
			p.print(w, n.Content)
		default:
			p.print(w, n.Children)
		}
		w.write("</" + n.Name.s + ">")
	}
}

// Print writes doc to w as SFC source text.
func Print(w io.Writer, doc *Document) error {
	return (&Printer{}).Print(w, doc)
}

// String returns the document printed as SFC source text.
func (d *Document) String() string {
	var sb strings.Builder
	_ = Print(&sb, d)
	return sb.String()
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) write(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}
