package eerc

import "strings"

// MessageWidth is the fixed ciphertext slot size for transfer messages
const MessageWidth = 64

// PadNull fits a message into a fixed-width, null-terminated slot.
// Messages longer than the width are truncated. Already-padded input
// comes back unchanged, so the operation is idempotent.
func PadNull(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(s) > width {
		s = s[:width]
	}
	return s + strings.Repeat("\x00", width-len(s))
}

// TrimNull cuts a message at its first null byte. Idempotent.
func TrimNull(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}
