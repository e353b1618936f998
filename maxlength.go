package rapidescape

// MaxLength returns the maximum possible length of escaped output,
// given an input of length bytes.
func MaxLength(length int) int {
	return length * 6 // all characters escaped to &quot; or &#039;
}
