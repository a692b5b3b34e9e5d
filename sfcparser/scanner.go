package sfcparser

import (
	"errors"
	"fmt"
	"strings"
)

const (
	commentOpen  = "<!--"
	commentClose = "-->"
)

// TagKind identifies what the Scanner found.
type TagKind int

const (
	TagNone    TagKind = iota // no more tags; the rest of the input is text
	TagOpen                   // <name attrs> or <name attrs/>
	TagClose                  // </name>
	TagComment                // <!-- ... -->
)

func (k TagKind) String() string {
	switch k {
	case TagNone:
		return "none"
	case TagOpen:
		return "opening tag"
	case TagClose:
		return "closing tag"
	case TagComment:
		return "comment"
	default:
		return "unknown"
	}
}

// Tag is a tag-like construct located by the Scanner. Offsets are byte
// offsets into the scanned text.
type Tag struct {
	Kind        TagKind
	Name        BlockName // zero for comments and TagNone
	Start       int       // offset of '<'
	End         int       // offset just past the final '>'
	AttrStart   int       // attribute span of an opening tag, exclusive of name and '>' / '/>'
	AttrEnd     int
	SelfClosing bool
}

// Scanner locates tags in SFC source text.
type Scanner struct {
	src   string
	lines lineIndex
}

// NewScanner creates a Scanner over src.
func NewScanner(src string) *Scanner {
	return &Scanner{src: src, lines: newLineIndex(src)}
}

// Next returns the next opening tag, closing tag or comment starting at or
// after from. A '<' only starts a tag when it is followed, after an optional
// '/', by an ASCII letter; every other '<' is left as text. When nothing is
// found Next returns a TagNone whose Start and End are len(src).
func (s *Scanner) Next(from int) (Tag, error) {
	for i := from; i < len(s.src); {
		j := strings.IndexByte(s.src[i:], '<')
		if j < 0 {
			break
		}
		at := i + j
		rest := s.src[at:]

		switch {
		case strings.HasPrefix(rest, commentOpen):
			// Searching from "<!" accepts the empty comment "<!-->".
			k := strings.Index(s.src[at+2:], commentClose)
			if k < 0 {
				return Tag{}, s.errorf(ErrUnterminatedBlock, at, "", nil, "comment is never closed")
			}
			return Tag{Kind: TagComment, Start: at, End: at + 2 + k + len(commentClose)}, nil
		case len(rest) > 2 && rest[1] == '/' && isAlpha(rest[2]):
			return s.scanCloseTag(at)
		case len(rest) > 1 && isAlpha(rest[1]):
			return s.scanOpenTag(at)
		}
		i = at + 1
	}
	return Tag{Kind: TagNone, Start: len(s.src), End: len(s.src)}, nil
}

// FindClose finds the literal closing tag for name at or after from, with
// optional whitespace before its '>'. Nothing in between is interpreted.
// It returns the offsets of the '<' and just past the '>', or ok == false.
func (s *Scanner) FindClose(name BlockName, from int) (start, end int, ok bool) {
	needle := "</" + name.s
	for i := from; i <= len(s.src); {
		j := strings.Index(s.src[i:], needle)
		if j < 0 {
			return 0, 0, false
		}
		start = i + j
		k := start + len(needle)
		for k < len(s.src) && isSpace(s.src[k]) {
			k++
		}
		if k < len(s.src) && s.src[k] == '>' {
			return start, k + 1, true
		}
		i = start + 1
	}
	return 0, 0, false
}

// CloseAt reports whether a closing tag for name starts exactly at offset,
// returning the offset just past it.
func (s *Scanner) CloseAt(name BlockName, offset int) (int, bool) {
	if !strings.HasPrefix(s.src[offset:], "</"+name.s) {
		return 0, false
	}
	start, end, ok := s.FindClose(name, offset)
	if !ok || start != offset {
		return 0, false
	}
	return end, true
}

// Attributes parses the attribute span of an opening tag.
func (s *Scanner) Attributes(tag Tag) ([]Attribute, error) {
	if tag.Kind != TagOpen {
		return nil, nil
	}
	attrs, err := parseAttributes(s, tag.AttrStart, tag.AttrEnd)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) && pe.Tag == "" {
			pe.Tag = tag.Name.s
		}
		return nil, err
	}
	return attrs, nil
}

// Position returns the line and column of a byte offset.
func (s *Scanner) Position(offset int) Position {
	if offset > len(s.src) {
		offset = len(s.src)
	}
	return s.lines.position(offset)
}

// tagNameEnd returns the offset of the first byte after a tag name starting
// at i: whitespace, '/', '>' or end of input.
func (s *Scanner) tagNameEnd(i int) int {
	for i < len(s.src) && !isSpace(s.src[i]) && s.src[i] != '/' && s.src[i] != '>' {
		i++
	}
	return i
}

func (s *Scanner) blockName(start, end int) (BlockName, error) {
	name, err := NewBlockName(s.src[start:end])
	if err != nil {
		offset := start
		msg := err.Error()
		var ne *NameError
		if errors.As(err, &ne) {
			offset += max(ne.Index, 0)
			msg = ne.detail()
		}
		return BlockName{}, s.errorf(ErrInvalidBlockName, offset, "", err, "%s", msg)
	}
	return name, nil
}

func (s *Scanner) scanOpenTag(at int) (Tag, error) {
	nameEnd := s.tagNameEnd(at + 1)
	name, err := s.blockName(at+1, nameEnd)
	if err != nil {
		return Tag{}, err
	}

	// Find the closing '>', skipping over quoted values. A quote only opens
	// a value when it follows '=' (possibly after whitespace).
	var quote byte
	quoteAt := -1
	var last byte
	for i := nameEnd; i < len(s.src); i++ {
		ch := s.src[i]
		if quote != 0 {
			if ch == quote {
				quote = 0
				last = ch
			}
			continue
		}
		switch {
		case (ch == '"' || ch == '\'') && last == '=':
			quote, quoteAt = ch, i
		case ch == '>':
			tag := Tag{
				Kind:      TagOpen,
				Name:      name,
				Start:     at,
				End:       i + 1,
				AttrStart: nameEnd,
				AttrEnd:   i,
			}
			if i > nameEnd && s.src[i-1] == '/' {
				tag.SelfClosing = true
				tag.AttrEnd--
			}
			return tag, nil
		}
		if !isSpace(ch) {
			last = ch
		}
	}

	if quote != 0 {
		return Tag{}, s.errorf(ErrMalformedAttributeSyntax, quoteAt, name.s, nil,
			"quoted attribute value is never closed with %c", quote)
	}
	return Tag{}, s.errorf(ErrMalformedTag, at, name.s, nil, "opening tag is never closed with '>'")
}

func (s *Scanner) scanCloseTag(at int) (Tag, error) {
	nameEnd := s.tagNameEnd(at + 2)
	name, err := s.blockName(at+2, nameEnd)
	if err != nil {
		return Tag{}, err
	}
	i := nameEnd
	for i < len(s.src) && isSpace(s.src[i]) {
		i++
	}
	if i >= len(s.src) || s.src[i] != '>' {
		return Tag{}, s.errorf(ErrMalformedTag, at, name.s, nil, "expected '>' after closing tag name")
	}
	return Tag{Kind: TagClose, Name: name, Start: at, End: i + 1}, nil
}

func (s *Scanner) errorf(kind error, offset int, tag string, cause error, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Pos:     s.Position(offset),
		Tag:     tag,
		Cause:   cause,
	}
}
