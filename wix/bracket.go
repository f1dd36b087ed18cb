package wix

// closingBrace returns the index of the brace that balances the opening
// brace at s[start]. Braces inside single, double or backtick quoted
// strings are ignored, and a backslash escapes the next byte inside a
// string. Returns -1 when the braces never balance.
func closingBrace(s string, start int) int {
	if start < 0 || start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	var quote byte
	for i := start; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			quote = c
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
