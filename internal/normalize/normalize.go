// Package normalize provides the term normalization functions used by the
// splitter and the CLI: case folding, Unicode normal forms, accent
// stripping, quote stripping, and slug generation.
//
// Every normalizer is a pure function. Normalizers compose with Chain and
// resolve from configuration names with ByName, so a profile can declare
// `normalize: [lower, ascii]` and get one compiled function.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/conneroisu/termkit/internal/errors"
)

// Func transforms a term. It matches splitter.Normalizer so any normalizer
// here can be injected directly into a splitter configuration.
type Func func(string) (string, error)

// stripAccents decomposes, removes combining marks, and recomposes.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var titleCaser = cases.Title(language.Und)

// Identity returns the term unchanged.
func Identity(s string) (string, error) {
	return s, nil
}

// Lower lowercases the term.
func Lower(s string) (string, error) {
	return strings.ToLower(s), nil
}

// Upper uppercases the term.
func Upper(s string) (string, error) {
	return strings.ToUpper(s), nil
}

// Title applies Unicode title casing.
func Title(s string) (string, error) {
	return titleCaser.String(s), nil
}

// TrimSpace trims Unicode whitespace and invisible edge characters that
// commonly survive copy-paste from rich-text sources.
func TrimSpace(s string) (string, error) {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) ||
			r == '\u200b' || // Zero Width Space
			r == '\u200c' || // Zero Width Non-Joiner
			r == '\u200d' || // Zero Width Joiner
			r == '\ufeff' // Zero Width No-Break Space (BOM)
	}), nil
}

// NFC converts the term to Unicode Normalization Form C.
func NFC(s string) (string, error) {
	return norm.NFC.String(s), nil
}

// NFD converts the term to Unicode Normalization Form D.
func NFD(s string) (string, error) {
	return norm.NFD.String(s), nil
}

// StripAccents removes diacritics (e.g. "Élodie" -> "Elodie").
func StripAccents(s string) (string, error) {
	result, _, err := transform.String(stripAccents, s)
	if err != nil {
		return "", errors.NewNormalizeError("strip accents", err)
	}

	return result, nil
}

// TrimQuotes returns a normalizer that strips one matching pair of the
// given quote characters from the ends of the term. An unterminated
// leading quote is stripped alone, mirroring the splitter's handling of
// unterminated quoted spans.
func TrimQuotes(quotes ...rune) Func {
	return func(s string) (string, error) {
		for _, q := range quotes {
			if strings.HasPrefix(s, string(q)) {
				s = strings.TrimPrefix(s, string(q))
				s = strings.TrimSuffix(s, string(q))

				break
			}
		}

		return s, nil
	}
}

// Chain composes normalizers left to right; the first error stops the
// chain and propagates unchanged.
func Chain(fns ...Func) Func {
	return func(s string) (string, error) {
		var err error
		for _, fn := range fns {
			s, err = fn(s)
			if err != nil {
				return "", err
			}
		}

		return s, nil
	}
}

// ByName resolves a normalizer chain from configuration names. Supported
// names: identity, lower, upper, title, trim, nfc, nfd, ascii, unquote,
// slug. Unknown names are configuration errors.
func ByName(names ...string) (Func, error) {
	fns := make([]Func, 0, len(names))

	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "", "identity", "none":
			fns = append(fns, Identity)
		case "lower", "lowercase":
			fns = append(fns, Lower)
		case "upper", "uppercase":
			fns = append(fns, Upper)
		case "title":
			fns = append(fns, Title)
		case "trim":
			fns = append(fns, TrimSpace)
		case "nfc":
			fns = append(fns, NFC)
		case "nfd":
			fns = append(fns, NFD)
		case "ascii", "unaccent":
			fns = append(fns, StripAccents)
		case "unquote":
			fns = append(fns, TrimQuotes('"', '\''))
		case "slug":
			fns = append(fns, func(s string) (string, error) {
				return Slugify(s)
			})
		default:
			return nil, errors.NewConfigError(
				errors.ErrCodeNormalizerUnknown,
				"unknown normalizer: "+name,
			)
		}
	}

	return Chain(fns...), nil
}
