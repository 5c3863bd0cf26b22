package match

// Soundex computes the classic American Soundex code for a name: the first
// letter followed by three digits encoding consonant sound groups. It is
// deterministic and locale-agnostic; non-ASCII-letter runes are skipped.
// Returns "" when the input contains no letters.
//
// Rules: vowels (and Y) separate equal codes, H and W do not.
func Soundex(s string) string {
	const codes = "01230120022455012623010202" // a..z

	code := func(c byte) byte {
		return codes[c-'a']
	}

	// Find the first letter.
	i := 0
	var first byte
	for ; i < len(s); i++ {
		c := lowerLetter(s[i])
		if c != 0 {
			first = c
			break
		}
	}
	if first == 0 {
		return ""
	}

	out := []byte{first - 'a' + 'A', '0', '0', '0'}
	n := 1
	prev := code(first)

	for i++; i < len(s) && n < 4; i++ {
		c := lowerLetter(s[i])
		if c == 0 {
			continue
		}
		if c == 'h' || c == 'w' {
			continue
		}
		d := code(c)
		if d == '0' {
			prev = '0'
			continue
		}
		if d != prev {
			out[n] = d
			n++
		}
		prev = d
	}

	return string(out)
}

// lowerLetter returns the lower-cased byte for ASCII letters, 0 otherwise.
func lowerLetter(c byte) byte {
	switch {
	case c >= 'a' && c <= 'z':
		return c
	case c >= 'A' && c <= 'Z':
		return c + ('a' - 'A')
	default:
		return 0
	}
}
