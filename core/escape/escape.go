// Package escape implements the script language's private punctuation escapes.
//
// Arguments in a script line are comma separated, so characters that would
// collide with the argument syntax are written as escape tokens:
//
//	#$c  comma          #$s  space
//	#$p  percent        #$t  tab
//	#$q  doublequote    #$x  line break (CRLF)
//	##   literal #
//
// Unescape never fails. Sequences it does not recognise are passed through
// verbatim.
package escape

import "strings"

// Escape tokens.
const (
	Comma       = "#$c"
	Percent     = "#$p"
	DoubleQuote = "#$q"
	Space       = "#$s"
	Tab         = "#$t"
	LineBreak   = "#$x"
	Sharp       = "##"
)

// NewLine is the line break text written and read by the #$x token.
const NewLine = "\r\n"

// Legend describes the escape tokens for help output.
const Legend = `#$c = Comma [,]
#$p = Percent [%]
#$q = DoubleQuote ["]
#$s = Space [ ]
#$t = Tab [	]
#$x = NewLine
## = Sharp [#]`

// Unescape decodes escape tokens in s. With unescapePercent set, any #$p left
// after decoding, such as one written as ##$p, is rewritten to '%' as well.
func Unescape(s string, unescapePercent bool) string {
	out := unescapeTokens(s)
	if unescapePercent {
		out = UnescapePercent(out)
	}
	return out
}

func unescapeTokens(s string) string {
	idx := strings.IndexByte(s, '#')
	if idx < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:idx])

	for i := idx; i < len(s); {
		if s[i] != '#' {
			next := strings.IndexByte(s[i:], '#')
			if next < 0 {
				b.WriteString(s[i:])
				break
			}
			b.WriteString(s[i : i+next])
			i += next
			continue
		}

		// s[i] == '#'
		if i+1 >= len(s) {
			b.WriteByte('#')
			break
		}

		switch s[i+1] {
		case '#':
			b.WriteByte('#')
			i += 2
		case '$':
			if i+2 >= len(s) {
				b.WriteString("#$")
				i += 2
				continue
			}
			if lit, ok := tokenLiteral(s[i+2]); ok {
				b.WriteString(lit)
				i += 3
			} else {
				b.WriteString("#$")
				i += 2
			}
		default:
			b.WriteByte('#')
			i++
		}
	}

	return b.String()
}

func tokenLiteral(c byte) (string, bool) {
	switch c {
	case 'c':
		return ",", true
	case 'p':
		return "%", true
	case 'q':
		return `"`, true
	case 's':
		return " ", true
	case 't':
		return "\t", true
	case 'x':
		return NewLine, true
	}
	return "", false
}

// Escape encodes s into escape tokens. Literal '#' is always doubled.
// Doublequote, tab and CRLF are always escaped; comma and space only with
// fullEscape; percent only with escapePercent.
func Escape(s string, fullEscape, escapePercent bool) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '#':
			b.WriteString(Sharp)
		case c == '"':
			b.WriteString(DoubleQuote)
		case c == '\t':
			b.WriteString(Tab)
		case c == '\r' && i+1 < len(s) && s[i+1] == '\n':
			b.WriteString(LineBreak)
			i++
		case c == ',' && fullEscape:
			b.WriteString(Comma)
		case c == ' ' && fullEscape:
			b.WriteString(Space)
		case c == '%' && escapePercent:
			b.WriteString(Percent)
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// QuoteEscape escapes s and wraps the result in doublequotes when s contains a
// space or a comma.
func QuoteEscape(s string, fullEscape, escapePercent bool) string {
	needQuote := strings.ContainsAny(s, " ,")
	escaped := Escape(s, fullEscape, escapePercent)
	if needQuote {
		return `"` + escaped + `"`
	}
	return escaped
}

// QuoteUnescape removes one layer of surrounding doublequotes and unescapes.
func QuoteUnescape(s string, unescapePercent bool) string {
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return Unescape(s, unescapePercent)
}

// EscapePercent replaces every '%' with #$p.
func EscapePercent(s string) string {
	return strings.ReplaceAll(s, "%", Percent)
}

// UnescapePercent replaces every #$p with '%'.
func UnescapePercent(s string) string {
	return strings.ReplaceAll(s, Percent, "%")
}

// Doublequote wraps s in doublequotes if it contains a space.
func Doublequote(s string) string {
	if strings.Contains(s, " ") {
		return `"` + s + `"`
	}
	return s
}

// EscapeList applies Escape to every element.
func EscapeList(ss []string, fullEscape, escapePercent bool) []string {
	return mapList(ss, func(s string) string { return Escape(s, fullEscape, escapePercent) })
}

// UnescapeList applies Unescape to every element.
func UnescapeList(ss []string, unescapePercent bool) []string {
	return mapList(ss, func(s string) string { return Unescape(s, unescapePercent) })
}

// QuoteEscapeList applies QuoteEscape to every element.
func QuoteEscapeList(ss []string, fullEscape, escapePercent bool) []string {
	return mapList(ss, func(s string) string { return QuoteEscape(s, fullEscape, escapePercent) })
}

// QuoteUnescapeList applies QuoteUnescape to every element.
func QuoteUnescapeList(ss []string, unescapePercent bool) []string {
	return mapList(ss, func(s string) string { return QuoteUnescape(s, unescapePercent) })
}

func mapList(ss []string, fn func(string) string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = fn(s)
	}
	return out
}
