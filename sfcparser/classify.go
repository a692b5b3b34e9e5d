package sfcparser

import "strings"

const (
	templateName = "template"
	langAttr     = "lang"
	htmlLang     = "html"
)

// rawTextElements always have their bodies captured verbatim.
var rawTextElements = map[string]bool{
	"script": true,
	"style":  true,
}

// voidElements never have a body or a closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// htmlElements are the standard HTML element names. At the document root
// they are parsed as markup; any other root tag is a custom block.
var htmlElements = map[string]bool{
	"a": true, "abbr": true, "address": true, "area": true, "article": true,
	"aside": true, "audio": true, "b": true, "base": true, "bdi": true,
	"bdo": true, "blockquote": true, "body": true, "br": true, "button": true,
	"canvas": true, "caption": true, "cite": true, "code": true, "col": true,
	"colgroup": true, "data": true, "datalist": true, "dd": true, "del": true,
	"details": true, "dfn": true, "dialog": true, "div": true, "dl": true,
	"dt": true, "em": true, "embed": true, "fieldset": true, "figcaption": true,
	"figure": true, "footer": true, "form": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "head": true,
	"header": true, "hgroup": true, "hr": true, "html": true, "i": true,
	"iframe": true, "img": true, "input": true, "ins": true, "kbd": true,
	"label": true, "legend": true, "li": true, "link": true, "main": true,
	"map": true, "mark": true, "menu": true, "meta": true, "meter": true,
	"nav": true, "noscript": true, "object": true, "ol": true, "optgroup": true,
	"option": true, "output": true, "p": true, "picture": true, "pre": true,
	"progress": true, "q": true, "rp": true, "rt": true, "ruby": true,
	"s": true, "samp": true, "script": true, "search": true, "section": true,
	"select": true, "slot": true, "small": true, "source": true, "span": true,
	"strong": true, "style": true, "sub": true, "summary": true, "sup": true,
	"svg": true, "math": true, "table": true, "tbody": true, "td": true,
	"template": true, "textarea": true, "tfoot": true, "th": true,
	"thead": true, "time": true, "title": true, "tr": true, "track": true,
	"u": true, "ul": true, "var": true, "video": true, "wbr": true,
}

// Classify decides how the body of an opening tag is interpreted. root
// reports whether the tag sits at the top level of the document.
//
//   - template: nested unless it has a lang attribute with a value other
//     than "html", at any depth.
//   - script and style: raw.
//   - HTML void elements: void.
//   - at the root, custom blocks (<docs>, <i18n>, <route>) and HTML elements
//     with a non-html lang: raw.
//   - everything else: nested.
func Classify(name BlockName, attrs []Attribute, root bool) BodyKind {
	switch {
	case name.s == templateName:
		if isMarkupLang(attrs) {
			return BodyNested
		}
		return BodyRaw
	case rawTextElements[name.s]:
		return BodyRaw
	case voidElements[name.s]:
		return BodyVoid
	case root && (!htmlElements[name.s] || !isMarkupLang(attrs)):
		return BodyRaw
	default:
		return BodyNested
	}
}

// isMarkupLang reports whether no lang attribute in attrs carries a value
// other than "html". A valueless lang is ignored.
func isMarkupLang(attrs []Attribute) bool {
	for _, a := range attrs {
		if a.Name.s == langAttr && a.Value != nil && a.Value.s != htmlLang {
			return false
		}
	}
	return true
}

// isLineBreaks reports whether s consists only of '\r' and '\n'.
func isLineBreaks(s string) bool {
	return strings.Trim(s, "\r\n") == ""
}

// trimRawBody empties a raw payload made only of line breaks.
func trimRawBody(s string) string {
	if isLineBreaks(s) {
		return ""
	}
	return s
}
