package sfcparser

import "strings"

// BlockName is the name of a tag, e.g. "script" in <script lang="ts">.
// The zero value is an empty placeholder that Parse never produces.
type BlockName struct{ s string }

// NewBlockName validates s as a block name: an ASCII letter followed by ASCII
// letters, digits or one of "-_.:". The text is kept exactly as given.
func NewBlockName(s string) (BlockName, error) {
	if err := checkName(s, ErrInvalidBlockName, isBlockNameStart, isBlockNameChar); err != nil {
		return BlockName{}, err
	}
	return BlockName{s}, nil
}

// MustBlockName is like NewBlockName but panics on invalid input.
func MustBlockName(s string) BlockName {
	n, err := NewBlockName(s)
	if err != nil {
		panic(err)
	}
	return n
}

// UncheckedBlockName wraps s without validation. Only use it to re-wrap text
// taken from a BlockName that was already validated.
func UncheckedBlockName(s string) BlockName { return BlockName{s} }

func (n BlockName) String() string { return n.s }

// IsZero reports whether n is the placeholder zero value.
func (n BlockName) IsZero() bool { return n.s == "" }

// Equal reports whether n and other are the same name.
func (n BlockName) Equal(other BlockName) bool { return n.s == other.s }

// Compare orders names bytewise, returning -1, 0 or +1.
func (n BlockName) Compare(other BlockName) int { return strings.Compare(n.s, other.s) }

// AttributeName is the name of an attribute, e.g. "lang" in <script lang="ts">.
type AttributeName struct{ s string }

// NewAttributeName validates s as an attribute name: an ASCII letter or one
// of the directive prefixes ":@#", followed by ASCII letters, digits or one of
// "-_.:@#[]$".
func NewAttributeName(s string) (AttributeName, error) {
	if err := checkName(s, ErrInvalidAttributeName, isAttrNameStart, isAttrNameChar); err != nil {
		return AttributeName{}, err
	}
	return AttributeName{s}, nil
}

// MustAttributeName is like NewAttributeName but panics on invalid input.
func MustAttributeName(s string) AttributeName {
	n, err := NewAttributeName(s)
	if err != nil {
		panic(err)
	}
	return n
}

// UncheckedAttributeName wraps s without validation. Only use it on text that
// already satisfies NewAttributeName.
func UncheckedAttributeName(s string) AttributeName { return AttributeName{s} }

func (n AttributeName) String() string { return n.s }

func (n AttributeName) Equal(other AttributeName) bool { return n.s == other.s }

func (n AttributeName) Compare(other AttributeName) int { return strings.Compare(n.s, other.s) }

// AttributeValue is an attribute value without its surrounding quotes.
// It may be empty but cannot hold both quote characters.
type AttributeValue struct{ s string }

// NewAttributeValue validates s as an attribute value.
func NewAttributeValue(s string) (AttributeValue, error) {
	if i := strings.IndexByte(s, '"'); i >= 0 {
		if j := strings.IndexByte(s, '\''); j >= 0 {
			return AttributeValue{}, &NameError{
				Kind:  ErrInvalidAttributeValue,
				Rule:  RuleMixedQuotes,
				Input: s,
				Char:  s[max(i, j)],
				Index: max(i, j),
			}
		}
	}
	return AttributeValue{s}, nil
}

// MustAttributeValue is like NewAttributeValue but panics on invalid input.
func MustAttributeValue(s string) AttributeValue {
	v, err := NewAttributeValue(s)
	if err != nil {
		panic(err)
	}
	return v
}

// UncheckedAttributeValue wraps s without validation. Only use it on text that
// already satisfies NewAttributeValue.
func UncheckedAttributeValue(s string) AttributeValue { return AttributeValue{s} }

func (v AttributeValue) String() string { return v.s }

func (v AttributeValue) Equal(other AttributeValue) bool { return v.s == other.s }

func checkName(s string, kind error, start, rest func(byte) bool) error {
	if s == "" {
		return &NameError{Kind: kind, Rule: RuleEmpty, Index: -1}
	}
	if !start(s[0]) {
		return &NameError{Kind: kind, Rule: RuleLeadingChar, Input: s, Char: s[0], Index: 0}
	}
	for i := 1; i < len(s); i++ {
		if !rest(s[i]) {
			return &NameError{Kind: kind, Rule: RuleIllegalChar, Input: s, Char: s[i], Index: i}
		}
	}
	return nil
}

func isAlpha(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isBlockNameStart(ch byte) bool { return isAlpha(ch) }

func isBlockNameChar(ch byte) bool {
	return isAlpha(ch) || isDigit(ch) || ch == '-' || ch == '_' || ch == '.' || ch == ':'
}

func isAttrNameStart(ch byte) bool {
	return isAlpha(ch) || ch == ':' || ch == '@' || ch == '#'
}

func isAttrNameChar(ch byte) bool {
	switch ch {
	case '-', '_', '.', ':', '@', '#', '[', ']', '$':
		return true
	}
	return isAlpha(ch) || isDigit(ch)
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f'
}
