package splitter

import (
	"regexp"
	"strings"

	"github.com/conneroisu/termkit/internal/errors"
)

// compile builds the single token pattern from a validated configuration.
//
// Each match consumes, in order: an optional marker character (submatch 1),
// a token body (submatch 2) that is either a quoted span for one of the
// configured quote characters or a bare run of non-separator characters,
// and any trailing separators. Alternatives are tried in declaration order,
// quoted spans before bare runs, so a quote character is only special when
// it opens a token. Every match consumes at least one character, and input
// before the first token that consists only of separators is simply never
// matched, so leading separators are skipped for free.
func compile(cfg *Config) (*regexp.Regexp, error) {
	sepClass := classEscape(cfg.Separators)

	var pattern strings.Builder

	// Submatch 1: optional marker. The group is always present so Split
	// can index submatches uniformly whether or not markers are
	// configured.
	pattern.WriteString("(")
	if markers := realMarkers(cfg.Markers); len(markers) > 0 {
		pattern.WriteString("[" + classEscape(markers) + "]?")
	}
	pattern.WriteString(")")

	// Submatch 2: token body.
	alts := make([]string, 0, len(cfg.Quotes)+1)
	for _, q := range cfg.Quotes {
		qm := regexp.QuoteMeta(string(q))
		// Same-character delimiter: the span runs to the next occurrence
		// of the same quote, or to end of input when unterminated. The
		// quote characters stay in the raw token.
		alts = append(alts, qm+"[^"+classEscape([]rune{q})+"]*"+qm+"?")
	}
	alts = append(alts, "[^"+sepClass+"]+")

	pattern.WriteString("(" + strings.Join(alts, "|") + ")")

	// Trailing separators are consumed between tokens.
	pattern.WriteString("[" + sepClass + "]*")

	re, err := regexp.Compile(pattern.String())
	if err != nil {
		return nil, errors.NewInternalError(
			errors.ErrCodePatternCompile,
			"token pattern failed to compile",
			err,
		)
	}

	return re, nil
}

// realMarkers filters the NoMarker sentinel out of the configured marker
// list; the sentinel only influences grouping, never matching.
func realMarkers(markers []rune) []rune {
	out := make([]rune, 0, len(markers))
	for _, m := range markers {
		if m != NoMarker {
			out = append(out, m)
		}
	}

	return out
}

// classEscape renders runes for use inside a regexp character class.
func classEscape(rs []rune) string {
	var b strings.Builder
	for _, r := range rs {
		switch r {
		case '\\', ']', '^', '-':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
