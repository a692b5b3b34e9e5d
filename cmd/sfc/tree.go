package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/martinemde/sfc/sfcparser"
)

// node is the serializable form of a section, used by the yaml and json
// output formats.
type node struct {
	Type     string  `json:"type" yaml:"type"`
	Name     string  `json:"name,omitempty" yaml:"name,omitempty"`
	Kind     string  `json:"kind,omitempty" yaml:"kind,omitempty"`
	Attrs    []attr  `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Text     *string `json:"text,omitempty" yaml:"text,omitempty"`
	Children []node  `json:"children,omitempty" yaml:"children,omitempty"`
	Line     int     `json:"line" yaml:"line"`
	Column   int     `json:"column" yaml:"column"`
}

type attr struct {
	Name  string  `json:"name" yaml:"name"`
	Value *string `json:"value,omitempty" yaml:"value,omitempty"`
}

func toNodes(sections []sfcparser.Section) []node {
	var nodes []node
	for _, s := range sections {
		nodes = append(nodes, toNode(s))
	}
	return nodes
}

func toNode(s sfcparser.Section) node {
	switch s := s.(type) {
	case *sfcparser.Raw:
		text := s.Text
		return node{Type: "raw", Text: &text, Line: s.Pos.Line, Column: s.Pos.Column}
	case *sfcparser.Block:
		n := node{
			Type:   "block",
			Name:   s.Name.String(),
			Kind:   s.Kind.String(),
			Line:   s.Pos.Line,
			Column: s.Pos.Column,
		}
		for _, a := range s.Attrs {
			out := attr{Name: a.Name.String()}
			if a.Value != nil {
				v := a.Value.String()
				out.Value = &v
			}
			n.Attrs = append(n.Attrs, out)
		}
		switch s.Kind {
		case sfcparser.BodyRaw:
			text := s.Text()
			n.Text = &text
		case sfcparser.BodyNested:
			n.Children = toNodes(s.Children)
		}
		return n
	default:
		return node{Type: fmt.Sprintf("%T", s)}
	}
}

// writeTree prints sections as an indented outline, one section per line.
func writeTree(w io.Writer, sections []sfcparser.Section, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, s := range sections {
		switch s := s.(type) {
		case *sfcparser.Raw:
			fmt.Fprintf(w, "%sraw %q\n", indent, s.Text)
		case *sfcparser.Block:
			fmt.Fprintf(w, "%s<%s", indent, s.Name)
			for _, a := range s.Attrs {
				fmt.Fprintf(w, " %s", a.Name)
				if a.Value != nil {
					fmt.Fprintf(w, "=%q", a.Value.String())
				}
			}
			fmt.Fprintf(w, "> %s @%d:%d\n", s.Kind, s.Pos.Line, s.Pos.Column)
			switch s.Kind {
			case sfcparser.BodyRaw:
				fmt.Fprintf(w, "%s  raw %q\n", indent, s.Text())
			case sfcparser.BodyNested:
				writeTree(w, s.Children, depth+1)
			}
		}
	}
}
