package rapidescape

// escapedLen is the number of replacement strings, and doubles as the
// "not escaped" marker in escapeLUT.
const escapedLen = 5

// escaped holds the replacement for each escaped byte, indexed by escapeLUT.
var escaped = [escapedLen]string{"&quot;", "&amp;", "&#039;", "&lt;", "&gt;"}

// escapeLUT maps each byte to its index in escaped, or escapedLen if the byte is copied verbatim.
var escapeLUT [256]uint8

func init() {
	for n := range escapeLUT {
		escapeLUT[n] = escapedLen
	}
	for i, c := range []byte{'"', '&', '\'', '<', '>'} {
		escapeLUT[c] = uint8(i)
	}
}

// escapeGeneric is the scalar escaper. It appends src to dst with every
// byte in escapeLUT replaced.
func escapeGeneric(dst, src []byte) []byte {
	start := 0
	for i, c := range src {
		if e := escapeLUT[c]; e < escapedLen {
			dst = append(dst, src[start:i]...)
			dst = append(dst, escaped[e]...)
			start = i + 1
		}
	}
	return append(dst, src[start:]...)
}

// needsEscapeGeneric reports whether any byte of src is in escapeLUT.
func needsEscapeGeneric(src []byte) bool {
	for _, c := range src {
		if escapeLUT[c] < escapedLen {
			return true
		}
	}
	return false
}
