package path

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// ParseError reports a failure in the path-data grammar, mirroring the
// teacher's practice (see elements_paths.go's ParsePathCommands) of
// returning a plain error so that the caller can fall back to treating the
// attribute as Unknown/raw.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return e.Msg }

func isWhitespace(b byte) bool {
	switch b {
	case 0x09, 0x0a, 0x0c, 0x0d, 0x20:
		return true
	}
	return false
}

type reader struct {
	r *bufio.Reader
}

func (r *reader) skipWhitespace() error {
	for {
		b, err := r.r.ReadByte()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if !isWhitespace(b) {
			return r.r.UnreadByte()
		}
	}
}

func (r *reader) skipCommaWsp() {
	_ = r.skipWhitespace()
	b, err := r.r.ReadByte()
	if err != nil {
		return
	}
	if b == ',' {
		_ = r.skipWhitespace()
		return
	}
	_ = r.r.UnreadByte()
}

func startsNumber(b byte) bool {
	return b == '+' || b == '-' || b == '.' || (b >= '0' && b <= '9')
}

// number reads one SVG path "number" token: optional sign, digits, a single
// '.', and an optional exponent. Per spec.md §4.3, a following sign, '.', or
// digit that would otherwise start a new token instead starts a new number
// without requiring a separator -- that property falls out naturally here
// because each call to number() stops as soon as the grammar for a single
// number is satisfied, leaving the next byte unconsumed for the next call.
func (r *reader) number() (float64, error) {
	var b strings.Builder

	peek, err := r.r.ReadByte()
	if err != nil {
		return 0, err
	}
	if peek == '+' || peek == '-' {
		b.WriteByte(peek)
	} else {
		_ = r.r.UnreadByte()
	}

	sawDigit, sawDot := false, false
	for {
		c, err := r.r.ReadByte()
		if err != nil {
			break
		}
		switch {
		case c >= '0' && c <= '9':
			b.WriteByte(c)
			sawDigit = true
		case c == '.' && !sawDot:
			b.WriteByte(c)
			sawDot = true
		default:
			_ = r.r.UnreadByte()
			goto mantissaDone
		}
	}
mantissaDone:
	if !sawDigit {
		return 0, &ParseError{Msg: "expected a number"}
	}

	// optional exponent
	c, err := r.r.ReadByte()
	if err == nil {
		if c == 'e' || c == 'E' {
			b.WriteByte(c)
			if s, err := r.r.ReadByte(); err == nil {
				if s == '+' || s == '-' {
					b.WriteByte(s)
				} else {
					_ = r.r.UnreadByte()
				}
			}
			for {
				d, err := r.r.ReadByte()
				if err != nil {
					break
				}
				if d < '0' || d > '9' {
					_ = r.r.UnreadByte()
					break
				}
				b.WriteByte(d)
			}
		} else {
			_ = r.r.UnreadByte()
		}
	}

	return strconv.ParseFloat(b.String(), 64)
}

// flag reads a single SVG arc-flag digit ('0' or '1'). Unlike number(), it
// consumes exactly one character: the grammar treats a second '0'/'1' digit
// as the start of the next argument, never as part of the flag.
func (r *reader) flag() (bool, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return false, err
	}
	if b != '0' && b != '1' {
		return false, &ParseError{Msg: "expected a flag"}
	}
	return b == '1', nil
}

func (r *reader) moreArgs() bool {
	if err := r.skipWhitespace(); err != nil {
		return false
	}
	b, err := r.r.ReadByte()
	if err != nil {
		return false
	}
	_ = r.r.UnreadByte()
	return startsNumber(b) || b == ','
}

func argCount(k Kind) int {
	switch k {
	case KindMoveTo, KindLineTo, KindSmoothQuadraticBezier:
		return 2
	case KindHorizontal, KindVertical:
		return 1
	case KindCubicBezier:
		return 6
	case KindSmoothBezier, KindQuadraticBezier:
		return 4
	case KindArc:
		return 7
	case KindClosePath:
		return 0
	}
	return 0
}

func (r *reader) readArgs(k Kind) ([]float64, error) {
	n := argCount(k)
	args := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if i > 0 {
			r.skipCommaWsp()
		}
		if k == KindArc && (i == 3 || i == 4) {
			f, err := r.flag()
			if err != nil {
				return nil, err
			}
			if f {
				args = append(args, 1)
			} else {
				args = append(args, 0)
			}
			continue
		}
		v, err := r.number()
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}

// Parse parses SVG path data per the grammar in spec.md §4.3. Parsing is
// all-or-nothing: a leading command other than M/m, or any grammar
// violation, fails the whole path so the caller can preserve the raw
// attribute value unchanged (spec.md §4.2's "parsing is non-fatal" contract
// is implemented one level up, in the attr package).
func Parse(d string) (Path, error) {
	r := &reader{r: bufio.NewReader(strings.NewReader(d))}
	if err := r.skipWhitespace(); err != nil && err != io.EOF {
		return Path{}, err
	}

	first, err := r.r.ReadByte()
	if err != nil {
		return Path{}, nil // empty path data is a valid, empty path
	}
	if first != 'M' && first != 'm' {
		return Path{}, &ParseError{Msg: "path data must begin with 'M' or 'm'"}
	}

	var cmds []Command
	kind := KindMoveTo
	isRelative := first == 'm'
	implicit := false
	if err := r.skipWhitespace(); err != nil && err != io.EOF {
		return Path{}, err
	}

	for {
		args, err := r.readArgs(kind)
		if err != nil {
			return Path{}, err
		}
		cmds = append(cmds, Command{Kind: kind, IsRelative: isRelative, Implicit: implicit, Args: args})

		if kind == KindMoveTo {
			// a MoveTo with multiple coordinate pairs implicitly continues
			// as LineTo pairs of the same relativity.
			for r.moreArgs() {
				lineArgs, err := r.readArgs(KindLineTo)
				if err != nil {
					return Path{}, err
				}
				cmds = append(cmds, Command{Kind: KindLineTo, IsRelative: isRelative, Implicit: true, Args: lineArgs})
			}
		} else if kind != KindClosePath {
			for r.moreArgs() {
				moreArgs, err := r.readArgs(kind)
				if err != nil {
					return Path{}, err
				}
				cmds = append(cmds, Command{Kind: kind, IsRelative: isRelative, Implicit: true, Args: moreArgs})
			}
		}

		if err := r.skipWhitespace(); err != nil && err != io.EOF {
			return Path{}, err
		}
		next, err := r.r.ReadByte()
		if err != nil {
			break
		}

		k, rel, ok := letterKind(next)
		if !ok {
			return Path{}, &ParseError{Msg: "unexpected command letter " + string(next)}
		}
		kind, isRelative, implicit = k, rel, false
		if err := r.skipWhitespace(); err != nil && err != io.EOF {
			return Path{}, err
		}
	}

	return Path{Commands: cmds}, nil
}

func letterKind(b byte) (Kind, bool, bool) {
	switch b {
	case 'M':
		return KindMoveTo, false, true
	case 'm':
		return KindMoveTo, true, true
	case 'L':
		return KindLineTo, false, true
	case 'l':
		return KindLineTo, true, true
	case 'H':
		return KindHorizontal, false, true
	case 'h':
		return KindHorizontal, true, true
	case 'V':
		return KindVertical, false, true
	case 'v':
		return KindVertical, true, true
	case 'C':
		return KindCubicBezier, false, true
	case 'c':
		return KindCubicBezier, true, true
	case 'S':
		return KindSmoothBezier, false, true
	case 's':
		return KindSmoothBezier, true, true
	case 'Q':
		return KindQuadraticBezier, false, true
	case 'q':
		return KindQuadraticBezier, true, true
	case 'T':
		return KindSmoothQuadraticBezier, false, true
	case 't':
		return KindSmoothQuadraticBezier, true, true
	case 'A':
		return KindArc, false, true
	case 'a':
		return KindArc, true, true
	case 'Z', 'z':
		return KindClosePath, false, true
	}
	return 0, false, false
}
