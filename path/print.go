package path

import (
	"strconv"
	"strings"
)

// formatNumber renders f in the shortest form that re-parses to the same
// value: no leading zero before the decimal point ("0.5" -> ".5"), no
// trailing zero after it, and "-0" collapsed to "0".
func formatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if strings.HasPrefix(s, "0.") {
		s = s[1:]
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "" || s == "0" {
		return "0"
	}
	if neg {
		return "-" + s
	}
	return s
}

// needsSeparator reports whether a space must be emitted between two
// adjacent rendered numbers so that the printed text re-tokenizes the same
// way: a separator is required exactly when the next token could otherwise
// extend the previous one. A leading '-' never needs one; a leading '.'
// needs one when the previous number has no '.' of its own; a leading
// digit needs one after a digit or a '.'.
func needsSeparator(prev, next string) bool {
	if prev == "" || next == "" {
		return false
	}
	p := prev[len(prev)-1]
	n := next[0]
	if n == '-' {
		return false // '-' always terminates the previous number unambiguously
	}
	if n == '.' {
		// ".5" after a number that had no fractional part could be misread
		// as continuing the mantissa unless the previous number already used
		// a '.'.
		return !strings.Contains(prev, ".")
	}
	if n >= '0' && n <= '9' {
		return p >= '0' && p <= '9' || p == '.'
	}
	return false
}

// String renders the path in the shortest textual form equivalent to the
// command sequence: operator letters are dropped for implicit continuations,
// and separators between numbers are emitted only where juxtaposition would
// otherwise be ambiguous.
func (p Path) String() string {
	var b strings.Builder
	last := ""
	write := func(s string) {
		if s == "" {
			return
		}
		if needsSeparator(last, s) {
			b.WriteByte(' ')
		}
		b.WriteString(s)
		last = s
	}

	for _, c := range p.Commands {
		if !c.Implicit {
			last = "" // an operator letter always breaks any ambiguity
			b.WriteByte(c.Letter())
		}
		switch c.Kind {
		case KindArc:
			write(formatNumber(c.Args[0]))
			write(formatNumber(c.Args[1]))
			write(formatNumber(c.Args[2]))
			// the rotation number would otherwise absorb the first flag digit
			b.WriteByte(' ')
			writeFlag(&b, &last, c.Args[3] != 0)
			writeFlag(&b, &last, c.Args[4] != 0)
			write(formatNumber(c.Args[5]))
			write(formatNumber(c.Args[6]))
		default:
			for _, a := range c.Args {
				write(formatNumber(a))
			}
		}
	}
	return b.String()
}

func writeFlag(b *strings.Builder, last *string, v bool) {
	s := "0"
	if v {
		s = "1"
	}
	// the parser reads a flag as exactly one character, so the second flag
	// needs no separator after the first; String writes the separator
	// between the rotation number and the first flag itself.
	b.WriteString(s)
	*last = s
}
