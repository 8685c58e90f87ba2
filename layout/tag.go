package layout

// Tag is a 32-bit OpenType identifier, used for scripts, languages,
// features and table names.
type Tag uint32

// MakeTag builds a Tag from four bytes.
func MakeTag(a, b, c, d byte) Tag {
	return Tag(a)<<24 | Tag(b)<<16 | Tag(c)<<8 | Tag(d)
}

// ParseTag converts a string into a Tag. Strings shorter than four bytes
// are padded with spaces, longer ones are truncated.
func ParseTag(s string) Tag {
	b := [4]byte{' ', ' ', ' ', ' '}
	for i := 0; i < len(s) && i < 4; i++ {
		b[i] = s[i]
	}
	return MakeTag(b[0], b[1], b[2], b[3])
}

// String returns the four characters of the tag.
func (t Tag) String() string {
	return string([]byte{
		byte(t >> 24),
		byte(t >> 16),
		byte(t >> 8),
		byte(t),
	})
}
