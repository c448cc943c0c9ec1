package token

// number scans a JSON number (without sign) at the start of d, returning its
// length and whether it has a fraction or exponent part.
func number(d []byte) (int, bool, error) {
	digits := asciiDigits(d)
	if digits == 0 {
		return 0, false, ErrNumber
	}
	if digits > 1 && d[0] == '0' {
		return digits, false, ErrNumberLeadingZero
	}
	f := fract(d[digits:])
	if f < 0 {
		return digits, false, ErrNumber
	}
	e := exp(d[digits+f:])
	if e < 0 {
		return digits + f, false, ErrNumber
	}
	if f+e == 0 {
		return digits, false, nil
	}
	return f + e + digits, true, nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// exp returns the length of an exponent part, 0 if there is none and -1 if
// one is started but malformed.
func exp(d []byte) int {
	if len(d) == 0 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	if i < len(d) {
		switch d[i] {
		case '+', '-':
			i++
		}
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return -1
	}
	return n + i
}

// fract returns the length of a fraction part, 0 if there is none and -1 if
// the '.' is not followed by digits (rfc 8259).
func fract(d []byte) int {
	if len(d) == 0 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		return -1
	}
	return n + 1
}
