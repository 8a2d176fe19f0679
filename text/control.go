package text

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Special characters of the %% escapes.
const (
	diameterSign = 'Ø'
	degreeSign   = '°'
	plusMinus    = '±'
)

// PlainText removes the %% control codes of single-line TEXT: %%c, %%d and
// %%p become their symbols, %%u, %%o and %%k toggles are dropped, %%nnn is a
// decimal character code and %%% is a percent sign.
func PlainText(s string) string {
	if !strings.Contains(s, "%%") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if !strings.HasPrefix(s[i:], "%%") || i+2 >= len(s) {
			b.WriteByte(s[i])
			i++
			continue
		}
		c := s[i+2]
		switch c | 0x20 {
		case 'c':
			b.WriteRune(diameterSign)
			i += 3
		case 'd':
			b.WriteRune(degreeSign)
			i += 3
		case 'p':
			b.WriteRune(plusMinus)
			i += 3
		case 'u', 'o', 'k':
			i += 3
		default:
			switch {
			case c == '%':
				b.WriteByte('%')
				i += 3
			case c >= '0' && c <= '9':
				j := i + 2
				for j < len(s) && j < i+5 && s[j] >= '0' && s[j] <= '9' {
					j++
				}
				code, _ := strconv.Atoi(s[i+2 : j])
				b.WriteRune(rune(code))
				i = j
			default:
				b.WriteString("%%")
				i += 2
			}
		}
	}
	return b.String()
}

// PlainMText removes MTEXT inline formatting and returns the content with
// paragraphs separated by '\n'. Stacked fractions \S a^b; and a#b; become
// "a/b"; the %% codes of PlainText are expanded as well.
func PlainMText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		switch c {
		case '{', '}':
			i++
			continue
		case '\\':
		default:
			r, n := utf8.DecodeRuneInString(s[i:])
			b.WriteRune(r)
			i += n
			continue
		}
		if i+1 >= len(s) {
			i++
			continue
		}
		code := s[i+1]
		i += 2
		switch code {
		case 'P', 'X', 'N':
			b.WriteByte('\n')
		case '~':
			b.WriteRune(' ')
		case '\\', '{', '}':
			b.WriteByte(code)
		case 'L', 'l', 'O', 'o', 'K', 'k':
		case 'U', 'u':
			if i < len(s) && s[i] == '+' && i+5 <= len(s) {
				if v, err := strconv.ParseUint(s[i+1:i+5], 16, 32); err == nil {
					b.WriteRune(rune(v))
					i += 5
				}
			}
		case 'S':
			end := strings.IndexByte(s[i:], ';')
			if end < 0 {
				end = len(s) - i
			}
			stack := s[i : i+end]
			b.WriteString(strings.NewReplacer("^", "/", "#", "/", " ", "").Replace(stack))
			i += end + 1
		case 'A', 'C', 'c', 'F', 'f', 'H', 'h', 'Q', 'q', 'T', 't', 'W', 'w', 'p':
			// Parameterized codes run to the next ';'.
			if end := strings.IndexByte(s[i:], ';'); end >= 0 {
				i += end + 1
			} else {
				i = len(s)
			}
		default:
			b.WriteByte(code)
		}
	}
	return PlainText(b.String())
}
