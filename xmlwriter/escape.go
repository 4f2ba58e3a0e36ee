package xmlwriter

import (
	"errors"
	"strings"
)

var (
	errNoOpenTag        = errors.New("xmlwriter: Attribute called outside an open start tag")
	errUnbalanced       = errors.New("xmlwriter: unbalanced StartElement/EndElement calls")
	errDeclarationTwice = errors.New("xmlwriter: Declaration called twice or after another node was written")
	errCDATAViolation   = errors.New("xmlwriter: CDATA payload contains the literal \"]]>\" end marker")
)

// escapeText escapes the three characters that are never legal literally
// in XML character data.
func escapeText(s string) string {
	if !strings.ContainsAny(s, "&<>") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// escapeAttr escapes s for use inside an attribute value delimited by
// quote ('"' or '\''), additionally normalizing the whitespace characters
// that an XML parser would otherwise collapse on reparse.
func escapeAttr(s string, quote byte) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '\n':
			b.WriteString("&#10;")
		case '\t':
			b.WriteString("&#9;")
		case '"':
			if quote == '"' {
				b.WriteString("&quot;")
			} else {
				b.WriteRune(r)
			}
		case '\'':
			if quote == '\'' {
				b.WriteString("&apos;")
			} else {
				b.WriteRune(r)
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
