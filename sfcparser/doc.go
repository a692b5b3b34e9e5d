// Package sfcparser implements a structural parser for single-file component
// (SFC) documents.
//
// An SFC is a text file made of top-level tagged sections such as <template>,
// <script> and <style>, plus arbitrary custom blocks. The parser does not
// interpret block contents; it finds tag boundaries, validates tag and
// attribute names, decides whether each body is nested markup or raw text, and
// returns the sections in document order.
//
// The parser is a hand-rolled recursive-descent parser with four layers:
//
//   - Names: validated wrapper values for tag names, attribute names and
//     attribute values.
//   - Scanner: finds the next opening tag, closing tag or comment in the text,
//     treating any other '<' as literal text.
//   - Classifier: decides whether a block body is parsed recursively or
//     captured verbatim (script, style, non-HTML templates, custom blocks such
//     as <docs> or <i18n>).
//   - Parser: drives the scanner over the document and assembles the tree.
//
// Usage:
//
//	doc, err := sfcparser.Parse(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, b := range doc.Blocks() {
//	    fmt.Println(b.Name, len(b.Attrs))
//	}
//
// A Document can be written back with Print; re-parsing the output yields an
// equal tree (comments are not reproduced).
package sfcparser
