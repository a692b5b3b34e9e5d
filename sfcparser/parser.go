package sfcparser

import (
	"errors"
	"fmt"
)

// Parse parses SFC source text and returns its sections in document order.
// It fails on the first problem found; the returned error is a *ParseError
// matching one of the Err* kinds.
func Parse(src []byte) (*Document, error) {
	return ParseString(string(src))
}

// ParseString is like Parse but takes a string. Raw text in the result
// shares memory with src.
func ParseString(src string) (*Document, error) {
	p := &parser{
		src:  src,
		scan: NewScanner(src),
	}
	sections, _, err := p.parseSections(0, nil)
	if err != nil {
		return nil, err
	}
	return &Document{Sections: sections, Comments: p.comments}, nil
}

type parser struct {
	src  string
	scan *Scanner
	open []*Block // enclosing nested blocks, innermost last

	comments []Position
}

// parseSections parses sections starting at from until end of input when
// parent is nil, or until the closing tag of parent. It returns the offset
// just past that closing tag.
func (p *parser) parseSections(from int, parent *Block) ([]Section, int, error) {
	var sections []Section
	text := from // start of the pending text run
	i := from

	for {
		tag, err := p.scan.Next(i)
		if err != nil {
			return nil, 0, p.withContext(err)
		}

		switch tag.Kind {
		case TagNone:
			if parent != nil {
				return nil, 0, p.unterminated(parent)
			}
			sections = p.appendText(sections, text, len(p.src), true)
			return sections, len(p.src), nil

		case TagComment:
			p.comments = append(p.comments, p.scan.Position(tag.Start))
			sections = p.appendText(sections, text, tag.Start, false)
			text, i = tag.End, tag.End

		case TagClose:
			if parent == nil || !tag.Name.Equal(parent.Name) {
				return nil, 0, p.unmatched(tag, parent)
			}
			sections = p.appendText(sections, text, tag.Start, true)
			return sections, tag.End, nil

		case TagOpen:
			sections = p.appendText(sections, text, tag.Start, false)
			block, end, err := p.parseBlock(tag, parent == nil)
			if err != nil {
				return nil, 0, err
			}
			sections = append(sections, block)
			text, i = end, end
		}
	}
}

// parseBlock parses the attributes and body of the block opened by tag and
// returns the offset just past the block.
func (p *parser) parseBlock(tag Tag, root bool) (*Block, int, error) {
	attrs, err := p.scan.Attributes(tag)
	if err != nil {
		return nil, 0, p.withContext(err)
	}

	block := &Block{
		Name:  tag.Name,
		Attrs: attrs,
		Kind:  Classify(tag.Name, attrs, root),
		Pos:   p.scan.Position(tag.Start),
	}

	switch {
	case block.Kind == BodyVoid:
		end := tag.End
		if !tag.SelfClosing {
			// Tolerate <img></img>.
			if e, ok := p.scan.CloseAt(tag.Name, tag.End); ok {
				end = e
			}
		}
		return block, end, nil

	case tag.SelfClosing:
		if block.Kind == BodyRaw {
			block.Content = &Raw{Pos: p.scan.Position(tag.End)}
		}
		return block, tag.End, nil

	case block.Kind == BodyRaw:
		start, end, ok := p.scan.FindClose(tag.Name, tag.End)
		if !ok {
			return nil, 0, p.unterminated(block)
		}
		block.Content = &Raw{
			Text: trimRawBody(p.src[tag.End:start]),
			Pos:  p.scan.Position(tag.End),
		}
		return block, end, nil

	default:
		p.open = append(p.open, block)
		children, end, err := p.parseSections(tag.End, block)
		p.open = p.open[:len(p.open)-1]
		if err != nil {
			return nil, 0, err
		}
		block.Children = children
		return block, end, nil
	}
}

// appendText adds src[start:end] as a Raw section. When last is set the run
// ends the sequence, and trailing Raw sections made only of line breaks are
// dropped.
func (p *parser) appendText(sections []Section, start, end int, last bool) []Section {
	if start < end {
		sections = append(sections, &Raw{Text: p.src[start:end], Pos: p.scan.Position(start)})
	}
	if !last {
		return sections
	}
	for n := len(sections); n > 0; n-- {
		r, ok := sections[n-1].(*Raw)
		if !ok || !isLineBreaks(r.Text) {
			break
		}
		sections = sections[:n-1]
	}
	return sections
}

// depth counts the open blocks named name, including the innermost.
func (p *parser) depth(name BlockName) int {
	n := 0
	for _, b := range p.open {
		if b.Name.Equal(name) {
			n++
		}
	}
	return n
}

func (p *parser) unterminated(b *Block) error {
	msg := fmt.Sprintf("missing closing tag </%s>", b.Name)
	if d := p.depth(b.Name); d > 1 {
		msg += fmt.Sprintf(" at nesting depth %d", d)
	}
	return &ParseError{
		Kind:    ErrUnterminatedBlock,
		Message: msg,
		Pos:     b.Pos,
		Tag:     b.Name.s,
	}
}

func (p *parser) unmatched(tag Tag, parent *Block) error {
	err := &ParseError{
		Kind:    ErrUnmatchedClosingTag,
		Message: fmt.Sprintf("</%s> has no matching opening tag", tag.Name),
		Pos:     p.scan.Position(tag.Start),
	}
	if parent != nil {
		err.Message = fmt.Sprintf("</%s> does not close <%s>", tag.Name, parent.Name)
		err.Tag = parent.Name.s
	}
	return err
}

// withContext records the innermost open block on errors that lack a tag.
func (p *parser) withContext(err error) error {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Tag == "" && len(p.open) > 0 {
		pe.Tag = p.open[len(p.open)-1].Name.s
	}
	return err
}
