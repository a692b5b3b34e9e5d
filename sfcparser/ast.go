package sfcparser

import "sort"

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number, in bytes
	Offset int // 0-based byte offset into source
}

// lineIndex holds the offset of the first byte of every line.
type lineIndex []int

func newLineIndex(src string) lineIndex {
	lines := lineIndex{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lines = append(lines, i+1)
		}
	}
	return lines
}

// position computes the Position of a byte offset within the indexed text.
func (li lineIndex) position(offset int) Position {
	line := sort.SearchInts(li, offset+1) - 1
	return Position{Line: line + 1, Column: offset - li[line] + 1, Offset: offset}
}

// Section is either a *Block or a *Raw.
type Section interface {
	section()
}

// Raw is literal text: the body of a raw block, or text between blocks.
type Raw struct {
	Text string
	Pos  Position
}

func (*Raw) section() {}

// Attribute is a name with an optional value. Value is nil for boolean
// attributes such as "setup" in <script setup>.
type Attribute struct {
	Name  AttributeName
	Value *AttributeValue
}

// BodyKind discriminates how a block body was interpreted.
type BodyKind int

const (
	BodyNested BodyKind = iota // parsed recursively into Children
	BodyRaw                    // captured verbatim into Content
	BodyVoid                   // void element, no body and no closing tag
)

func (k BodyKind) String() string {
	switch k {
	case BodyNested:
		return "nested"
	case BodyRaw:
		return "raw"
	case BodyVoid:
		return "void"
	default:
		return "unknown"
	}
}

// Block is a tag with its attributes and body.
type Block struct {
	Name     BlockName
	Attrs    []Attribute // in source order, duplicates kept
	Kind     BodyKind
	Children []Section // populated when Kind == BodyNested
	Content  *Raw      // populated when Kind == BodyRaw
	Pos      Position  // position of the opening '<'
}

func (*Block) section() {}

// Attr looks up an attribute by name. When the name appears more than once
// the last occurrence wins. The bool reports whether the attribute exists;
// boolean attributes return a zero AttributeValue and true.
func (b *Block) Attr(name string) (AttributeValue, bool) {
	for i := len(b.Attrs) - 1; i >= 0; i-- {
		if b.Attrs[i].Name.s == name {
			if b.Attrs[i].Value == nil {
				return AttributeValue{}, true
			}
			return *b.Attrs[i].Value, true
		}
	}
	return AttributeValue{}, false
}

// HasAttr reports whether the block carries an attribute with the given name.
func (b *Block) HasAttr(name string) bool {
	_, ok := b.Attr(name)
	return ok
}

// Lang returns the value of the lang attribute, or "" when absent.
func (b *Block) Lang() string {
	v, _ := b.Attr(langAttr)
	return v.s
}

// Text returns the raw body of the block, or "" for nested and void blocks.
func (b *Block) Text() string {
	if b.Content == nil {
		return ""
	}
	return b.Content.Text
}

// Document is the result of parsing: the top-level sections in order.
type Document struct {
	Sections []Section
	Comments []Position // comments outside raw bodies; they produce no section
}

// Blocks returns the top-level blocks in document order.
func (d *Document) Blocks() []*Block {
	var result []*Block
	for _, s := range d.Sections {
		if b, ok := s.(*Block); ok {
			result = append(result, b)
		}
	}
	return result
}

// BlocksNamed returns the top-level blocks with the given name.
func (d *Document) BlocksNamed(name string) []*Block {
	var result []*Block
	for _, b := range d.Blocks() {
		if b.Name.s == name {
			result = append(result, b)
		}
	}
	return result
}

// Block returns the first top-level block with the given name, or nil.
func (d *Document) Block(name string) *Block {
	for _, b := range d.Blocks() {
		if b.Name.s == name {
			return b
		}
	}
	return nil
}
