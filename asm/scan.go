package asm

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c|0x20) >= 'a' && (c|0x20) <= 'z'
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func isName(c byte) bool {
	return isAlnum(c) || c == '_'
}

// hexDigit returns the value of a hexadecimal digit, or -1.
func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// at returns text[p], or 0 past the end of text.
func at(text string, p int) byte {
	if p < 0 || p >= len(text) {
		return 0
	}
	return text[p]
}

// skipBlank returns the position of the first non-blank at or after p.
func skipBlank(text string, p int) int {
	for p < len(text) && text[p] <= ' ' {
		p++
	}
	return p
}

// span returns the position after the run of characters accepted by ok.
func span(text string, p int, ok func(byte) bool) int {
	for p < len(text) && ok(text[p]) {
		p++
	}
	return p
}
