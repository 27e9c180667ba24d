package stringutil

import (
	"strings"
	"unicode"
)

// Slugify turns a habit name into a lowercase, hyphen-separated handle
// usable on the command line. Letters and digits from any script are kept;
// every other run of characters becomes a single hyphen.
func Slugify(name string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
