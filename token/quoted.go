package token

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// Quote returns v as a JSON string literal.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// ScanQuoted validates the JSON string literal at the start of d and returns its
// length including both quotes.
func ScanQuoted(d []byte) (int, error) {
	if len(d) == 0 || d[0] != '"' {
		return 0, ErrLiteral
	}
	escaped := false
	start := 1
	n := len(d)
	for start < n {
		r, sz := utf8.DecodeRune(d[start:])
		if r == utf8.RuneError && sz <= 1 {
			return start, ErrBadUTF8
		}
		start += sz
		switch r {
		case '"':
			if !escaped {
				return start, nil
			}
			escaped = false
		case 'u':
			if escaped {
				if start+4 > n {
					return start, ErrUnterminated
				}
				if !allHex(d[start : start+4]) {
					return start, ErrBadUnicode
				}
				start += 4
			}
			escaped = false
		case '/', 'b', 'f', 'n', 'r', 't':
			escaped = false
		case '\\':
			escaped = !escaped
		default:
			if r < 0x20 {
				return start, ErrUnicodeControl
			}
			if escaped {
				return start, ErrBadEscape
			}
		}
	}
	return start, ErrUnterminated
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

// QuotedToString decodes a string literal already validated by the
// tokenizer. Unpaired surrogates decode to utf8.RuneError.
func QuotedToString(d []byte) string {
	b := &strings.Builder{}
	i := 1
	n := len(d) - 1
	for i < n {
		c := d[i]
		if c != '\\' {
			r, sz := utf8.DecodeRune(d[i:n])
			b.WriteRune(r)
			i += sz
			continue
		}
		i++
		if i >= n {
			break
		}
		switch d[i] {
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'f':
			b.WriteByte('\f')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'u':
			r, ok := hex4(d, i+1)
			if !ok {
				b.WriteRune(utf8.RuneError)
				return b.String()
			}
			i += 4
			if utf16.IsSurrogate(r) {
				r2, ok := lowSurrogate(d, i+1)
				if dec := utf16.DecodeRune(r, r2); ok && dec != utf8.RuneError {
					r = dec
					i += 6
				} else {
					r = utf8.RuneError
				}
			}
			b.WriteRune(r)
		default:
			// '"', '\\', '/'
			b.WriteByte(d[i])
		}
		i++
	}
	return b.String()
}

func hex4(d []byte, i int) (rune, bool) {
	if i+4 > len(d) {
		return 0, false
	}
	dst := []byte{0, 0}
	if _, err := hex.Decode(dst, d[i:i+4]); err != nil {
		return 0, false
	}
	return rune(dst[0])<<8 | rune(dst[1]), true
}

func lowSurrogate(d []byte, i int) (rune, bool) {
	if i+6 > len(d) || d[i] != '\\' || d[i+1] != 'u' {
		return 0, false
	}
	return hex4(d, i+2)
}
