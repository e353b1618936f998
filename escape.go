package rapidescape

import "unsafe"

// AppendEscape appends src to dst with the HTML-sensitive characters
// ", &, ', < and > replaced by &quot;, &amp;, &#039;, &lt; and &gt;,
// and returns the extended buffer.
func AppendEscape(dst, src []byte) []byte {
	if useSIMDEscape && len(src) >= escapeKernel.width {
		return escapeSIMD(escapeKernel, dst, src)
	}
	return escapeGeneric(dst, src)
}

// AppendEscapeString is like AppendEscape but takes a string.
func AppendEscapeString(dst []byte, s string) []byte {
	return AppendEscape(dst, unsafeStrToBytes(s))
}

// Escape appends the escaped form of s to buf.
func Escape(buf *Buffer, s string) {
	buf.B = AppendEscapeString(buf.B, s)
}

// EscapeBytes appends the escaped form of b to buf.
func EscapeBytes(buf *Buffer, b []byte) {
	buf.B = AppendEscape(buf.B, b)
}

// EscapeString returns the escaped form of s.
// s is returned as is when nothing in it needs escaping.
func EscapeString(s string) string {
	src := unsafeStrToBytes(s)
	if !needsEscape(src) {
		return s
	}
	return string(AppendEscape(make([]byte, 0, len(s)+len(s)/4), src))
}

func needsEscape(src []byte) bool {
	if useSIMDEscape && len(src) >= escapeKernel.width {
		return needsEscapeSIMD(escapeKernel, src)
	}
	return needsEscapeGeneric(src)
}

// unsafeStrToBytes returns the bytes of s without copying.
// The result must not be modified.
func unsafeStrToBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
