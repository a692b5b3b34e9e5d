package sfcparser

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package matches exactly one of
// these with errors.Is.
var (
	ErrInvalidBlockName         = errors.New("invalid block name")
	ErrInvalidAttributeName     = errors.New("invalid attribute name")
	ErrInvalidAttributeValue    = errors.New("invalid attribute value")
	ErrUnmatchedClosingTag      = errors.New("unmatched closing tag")
	ErrUnterminatedBlock        = errors.New("unterminated block")
	ErrMalformedAttributeSyntax = errors.New("malformed attribute syntax")
	ErrMalformedTag             = errors.New("malformed tag")
)

// ParseError is the error type returned by Parse.
type ParseError struct {
	Kind    error    // one of the Err* kinds
	Message string   // detail, may be empty
	Pos     Position // where the problem was found
	Tag     string   // offending or nearest enclosing tag name, may be empty
	Cause   error
}

func (e *ParseError) Error() string {
	msg := e.Kind.Error()
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Tag != "" {
		msg += fmt.Sprintf(" (in <%s>)", e.Tag)
	}
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, msg)
	}
	return msg
}

func (e *ParseError) Is(target error) bool { return target == e.Kind }

func (e *ParseError) Unwrap() error { return e.Cause }

// Rule names the validation rule a NameError violated.
type Rule int

const (
	RuleEmpty        Rule = iota // input is empty
	RuleLeadingChar              // first character is not allowed
	RuleIllegalChar              // a later character is not allowed
	RuleMixedQuotes              // value contains both ' and "
)

func (r Rule) String() string {
	switch r {
	case RuleEmpty:
		return "empty"
	case RuleLeadingChar:
		return "illegal leading character"
	case RuleIllegalChar:
		return "illegal character"
	case RuleMixedQuotes:
		return "mixed quotes"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

// NameError is returned by the checked name and value constructors.
type NameError struct {
	Kind  error // ErrInvalidBlockName, ErrInvalidAttributeName or ErrInvalidAttributeValue
	Rule  Rule
	Input string
	Char  byte // offending byte, zero for RuleEmpty
	Index int  // byte index of Char in Input, -1 for RuleEmpty
}

func (e *NameError) Error() string {
	return e.Kind.Error() + ": " + e.detail()
}

func (e *NameError) detail() string {
	switch e.Rule {
	case RuleEmpty:
		return "must not be empty"
	case RuleMixedQuotes:
		return fmt.Sprintf("%q cannot contain both ' and \"", e.Input)
	default:
		return fmt.Sprintf("%q has %s %q at index %d", e.Input, e.Rule, e.Char, e.Index)
	}
}

func (e *NameError) Is(target error) bool { return target == e.Kind }
