package sfcparser

import "errors"

// parseAttributes parses src[start:end], the text between a tag name and the
// tag's '>' or '/>', into attributes in source order. Duplicate names are
// kept.
func parseAttributes(s *Scanner, start, end int) ([]Attribute, error) {
	src := s.src
	var attrs []Attribute
	i := start

	for {
		for i < end && isSpace(src[i]) {
			i++
		}
		if i >= end {
			return attrs, nil
		}

		if !isAttrNameStart(src[i]) {
			return nil, s.errorf(ErrInvalidAttributeName, i, "", nil,
				"%s %q", RuleLeadingChar, src[i])
		}
		nameStart := i
		for i < end && isAttrNameChar(src[i]) {
			i++
		}
		if i < end && !isSpace(src[i]) && src[i] != '=' {
			return nil, s.errorf(ErrInvalidAttributeName, i, "", nil,
				"%q has %s %q", src[nameStart:i+1], RuleIllegalChar, src[i])
		}
		// Every byte of the run was checked above.
		attr := Attribute{Name: UncheckedAttributeName(src[nameStart:i])}

		j := i
		for j < end && isSpace(src[j]) {
			j++
		}
		if j >= end || src[j] != '=' {
			attrs = append(attrs, attr)
			i = j
			continue
		}

		j++ // consume '='
		for j < end && isSpace(src[j]) {
			j++
		}
		if j >= end {
			return nil, s.errorf(ErrMalformedAttributeSyntax, j, "", nil,
				"missing value after '=' for attribute %q", attr.Name)
		}

		var raw string
		switch q := src[j]; q {
		case '"', '\'':
			k := j + 1
			for k < end && src[k] != q {
				k++
			}
			if k >= end {
				return nil, s.errorf(ErrMalformedAttributeSyntax, j, "", nil,
					"quoted value of attribute %q is never closed with %c", attr.Name, q)
			}
			raw = src[j+1 : k]
			i = k + 1
		default:
			k := j
			for k < end && !isSpace(src[k]) {
				k++
			}
			raw = src[j:k]
			i = k
		}

		value, err := NewAttributeValue(raw)
		if err != nil {
			msg := err.Error()
			var ne *NameError
			if errors.As(err, &ne) {
				msg = ne.detail()
			}
			return nil, s.errorf(ErrInvalidAttributeValue, j, "", err, "%s", msg)
		}
		attr.Value = &value
		attrs = append(attrs, attr)
	}
}
