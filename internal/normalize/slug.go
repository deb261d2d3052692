package normalize

import (
	"strings"
	"unicode"
)

// Slugify converts a term to a URL-safe slug: accents are stripped,
// letters lowercased, and every run of characters that is not a letter or
// digit collapses into a single hyphen. Leading and trailing hyphens are
// trimmed.
//
// Example:
//
//	Slugify("Crème Brûlée 2.0!")  // returns "creme-brulee-2-0"
func Slugify(s string) (string, error) {
	s, err := StripAccents(s)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(s))

	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}

	return b.String(), nil
}
