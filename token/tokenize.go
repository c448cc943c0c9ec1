package token

import (
	"bytes"
)

var (
	litTrue  = []byte("true")
	litFalse = []byte("false")
	litNull  = []byte("null")
)

// Tokenize appends the tokens of the JSON text src to dst.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	pd := NewPosDoc(src)
	n := len(src)
	i := 0
	for i < n {
		c := src[i]
		switch c {
		case '\n':
			pd.nl(i)
			i++
			continue
		case ' ', '\t', '\r':
			i++
			continue
		}
		pos := pd.Pos(i)
		var (
			tt TokenType
			sz int
		)
		switch c {
		case '{':
			tt, sz = TLCurl, 1
		case '}':
			tt, sz = TRCurl, 1
		case '[':
			tt, sz = TLSquare, 1
		case ']':
			tt, sz = TRSquare, 1
		case ':':
			tt, sz = TColon, 1
		case ',':
			tt, sz = TComma, 1
		case '"':
			m, err := ScanQuoted(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, pd.Pos(i+m))
			}
			tt, sz = TString, m
		case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			neg := 0
			if c == '-' {
				neg = 1
			}
			m, isFloat, err := number(src[i+neg:])
			if err != nil {
				if err == ErrNumberLeadingZero {
					return nil, LeadingZeroErr(pos)
				}
				return nil, NewTokenizeErr(err, pos)
			}
			tt, sz = TInteger, m+neg
			if isFloat {
				tt = TFloat
			}
		case 't':
			tt, sz = TTrue, keyword(src[i:], litTrue)
		case 'f':
			tt, sz = TFalse, keyword(src[i:], litFalse)
		case 'n':
			tt, sz = TNull, keyword(src[i:], litNull)
		default:
			return nil, UnexpectedErr(quoteByte(c), pos)
		}
		if sz == 0 {
			return nil, NewTokenizeErr(ErrLiteral, pos)
		}
		dst = append(dst, Token{Type: tt, Pos: pos, Bytes: src[i : i+sz]})
		i += sz
	}
	return dst, nil
}

// keyword returns len(kw) if d starts with kw and kw is not immediately
// followed by another letter, and 0 otherwise.
func keyword(d, kw []byte) int {
	if !bytes.HasPrefix(d, kw) {
		return 0
	}
	if len(d) > len(kw) {
		c := d[len(kw)]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || asciiDigit(c) || c == '_' {
			return 0
		}
	}
	return len(kw)
}

func quoteByte(c byte) string {
	return Quote(string([]byte{c}))
}

// End returns the position just past the last byte of the document the
// tokens were read from, or nil if toks is empty.
func End(toks []Token) *Pos {
	if len(toks) == 0 {
		return nil
	}
	return toks[len(toks)-1].Pos.D.end()
}
