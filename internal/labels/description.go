package labels

import (
	"strings"
	"unicode"
)

// DeriveDescription turns a label name into its description: lower case,
// every character outside [a-z0-9] becomes one space, surrounding
// whitespace is trimmed. Runs of spaces are kept as is.
func DeriveDescription(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	return strings.TrimFunc(b.String(), unicode.IsSpace)
}
