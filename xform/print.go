package xform

import "strconv"

// String renders the transform list in the shortest form that reparses to
// an equal list: integral values print without a decimal point, and
// single-argument scale/translate/rotate forms omit the redundant second
// argument (normalization already collapsed those cases in ToTransformList).
func (l TransformList) String() string {
	var sb []byte
	for i, t := range l {
		if i > 0 {
			sb = append(sb, ' ')
		}
		sb = append(sb, t.Op.String()...)
		sb = append(sb, '(')
		for j, a := range t.Args {
			if j > 0 {
				sb = append(sb, ',')
			}
			sb = append(sb, formatNumber(a)...)
		}
		sb = append(sb, ')')
	}
	return string(sb)
}

// formatNumber renders f in the shortest round-trippable decimal form,
// matching path.formatNumber's conventions (no unnecessary trailing zeros,
// no leading zero before the decimal point).
func formatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if dot := indexByte(s, '.'); dot >= 0 {
		s = trimTrailingZeros(s)
	}
	if len(s) > 1 && s[0] == '0' && s[1] == '.' {
		s = s[1:]
	} else if len(s) > 2 && s[0] == '-' && s[1] == '0' && s[2] == '.' {
		s = "-" + s[2:]
	}
	return s
}

func trimTrailingZeros(s string) string {
	i := len(s)
	for i > 0 && s[i-1] == '0' {
		i--
	}
	if i > 0 && s[i-1] == '.' {
		i--
	}
	return s[:i]
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}
