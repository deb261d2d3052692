// Package splitter tokenizes a raw input line into an ordered sequence of
// terms. Tokens may be quoted to protect embedded separators and may carry
// a single leading marker character that assigns them to a group, the way
// search engines read `+cat -dog "medical treatment"`.
//
// A Splitter is compiled once from an immutable Config and is safe for
// concurrent use; Split is a pure function of (configuration, input) and
// performs no I/O. The matching pattern is a single ordered alternation
// with mutually exclusive alternatives per position, so a split is one
// linear scan of the input.
package splitter

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/conneroisu/termkit/internal/errors"
)

// Splitter is a compiled term splitter. Construct with New or Builder;
// never mutate a Splitter after construction.
type Splitter struct {
	cfg Config
	re  *regexp.Regexp

	// markerOrder lists every configured marker exactly once in
	// declaration order and always contains NoMarker, so grouped results
	// have a stable bucket order and a home for unmarked terms.
	markerOrder []rune
}

// New validates cfg and compiles the token pattern. The returned Splitter
// shares no state with cfg's slices and never changes afterwards.
func New(cfg Config) (*Splitter, error) {
	if err := validate(&cfg); err != nil {
		return nil, err
	}

	cfg.Separators = append([]rune(nil), cfg.Separators...)
	cfg.Quotes = append([]rune(nil), cfg.Quotes...)
	cfg.Markers = append([]rune(nil), cfg.Markers...)

	re, err := compile(&cfg)
	if err != nil {
		return nil, err
	}

	return &Splitter{
		cfg:         cfg,
		re:          re,
		markerOrder: markerOrder(cfg.Markers),
	}, nil
}

// markerOrder dedupes the configured markers, preserving declaration
// order. Terms with no recognized marker always have a bucket: when the
// configuration does not place NoMarker explicitly, the unmarked bucket
// leads.
func markerOrder(markers []rune) []rune {
	order := make([]rune, 0, len(markers)+1)
	seen := make(map[rune]bool, len(markers)+1)

	if !containsRune(markers, NoMarker) {
		order = append(order, NoMarker)
		seen[NoMarker] = true
	}

	for _, m := range markers {
		if !seen[m] {
			order = append(order, m)
			seen[m] = true
		}
	}

	return order
}

func containsRune(rs []rune, want rune) bool {
	for _, r := range rs {
		if r == want {
			return true
		}
	}

	return false
}

// Markers returns the bucket order of grouped results: every configured
// marker once, in declaration order, with NoMarker always present.
func (s *Splitter) Markers() []rune {
	return append([]rune(nil), s.markerOrder...)
}

// Config returns a copy of the splitter's configuration.
func (s *Splitter) Config() Config {
	cfg := s.cfg
	cfg.Separators = append([]rune(nil), s.cfg.Separators...)
	cfg.Quotes = append([]rune(nil), s.cfg.Quotes...)
	cfg.Markers = append([]rune(nil), s.cfg.Markers...)

	return cfg
}

// token is one raw match: the marker (NoMarker when absent) and the body
// with the marker already stripped.
type token struct {
	marker rune
	term   string
}

// Split tokenizes text into the configured result shape.
//
// The pipeline is: match tokens in input order, normalize each token body
// if a normalizer is configured (normalizer errors propagate unchanged),
// sort if requested, then group. Empty input, or input consisting only of
// separators, yields the empty shape: an empty term sequence, or a mapping
// in which every configured marker is present with an empty bucket.
func (s *Splitter) Split(text string) (*Result, error) {
	matches := s.re.FindAllStringSubmatch(text, -1)

	tokens := make([]token, 0, len(matches))
	for _, m := range matches {
		tok := token{marker: NoMarker, term: m[2]}
		if m[1] != "" {
			tok.marker = []rune(m[1])[0]
		}

		if s.cfg.Normalize != nil {
			term, err := s.cfg.Normalize(tok.term)
			if err != nil {
				// Caller-supplied normalizer failures are surfaced
				// verbatim, never wrapped or swallowed.
				return nil, err
			}
			tok.term = term
		}

		tokens = append(tokens, tok)
	}

	if s.cfg.Sort {
		sort.SliceStable(tokens, func(i, j int) bool {
			return tokens[i].term < tokens[j].term
		})
	}

	return s.group(tokens), nil
}

// SplitValue is Split for callers holding untyped input, accepting string,
// []byte, and fmt.Stringer. Anything else fails with an input-type error.
func (s *Splitter) SplitValue(v interface{}) (*Result, error) {
	switch text := v.(type) {
	case string:
		return s.Split(text)
	case []byte:
		return s.Split(string(text))
	case fmt.Stringer:
		return s.Split(text.String())
	default:
		return nil, errors.ErrInputType(v)
	}
}

// Join concatenates terms with the canonical (first) separator, the
// inverse of an unquoted, unmarked split.
func (s *Splitter) Join(terms []string) string {
	return strings.Join(terms, string(s.cfg.Separators[0]))
}

// group partitions normalized tokens into the configured result shape.
func (s *Splitter) group(tokens []token) *Result {
	switch s.cfg.Grouping {
	case GroupMap:
		return s.groupMap(tokens)
	case GroupPairs:
		return s.groupPairs(tokens)
	case GroupBuckets:
		return s.groupBuckets(tokens)
	default:
		return s.groupFlat(tokens)
	}
}

func (s *Splitter) groupFlat(tokens []token) *Result {
	terms := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		terms = append(terms, tok.term)
	}

	return &Result{Mode: GroupNone, Terms: s.applyContainer(terms)}
}

func (s *Splitter) groupMap(tokens []token) *Result {
	groups := make(map[rune][]string, len(s.markerOrder))
	for _, m := range s.markerOrder {
		groups[m] = []string{}
	}

	for _, tok := range tokens {
		groups[s.bucketFor(tok.marker)] = append(groups[s.bucketFor(tok.marker)], tok.term)
	}

	for m, terms := range groups {
		groups[m] = s.applyContainer(terms)
	}

	return &Result{Mode: GroupMap, Groups: groups}
}

func (s *Splitter) groupPairs(tokens []token) *Result {
	buckets := s.groupBuckets(tokens)

	pairs := make([]Pair, 0, len(tokens))
	for i, m := range s.markerOrder {
		for _, term := range buckets.Buckets[i] {
			pairs = append(pairs, Pair{Marker: m, Term: term})
		}
	}

	return &Result{Mode: GroupPairs, Pairs: pairs}
}

func (s *Splitter) groupBuckets(tokens []token) *Result {
	index := make(map[rune]int, len(s.markerOrder))
	buckets := make([][]string, len(s.markerOrder))
	for i, m := range s.markerOrder {
		index[m] = i
		buckets[i] = []string{}
	}

	for _, tok := range tokens {
		i := index[s.bucketFor(tok.marker)]
		buckets[i] = append(buckets[i], tok.term)
	}

	for i := range buckets {
		buckets[i] = s.applyContainer(buckets[i])
	}

	return &Result{Mode: GroupBuckets, Buckets: buckets}
}

// bucketFor maps a matched marker to its bucket. Markers only ever come
// from the compiled pattern, so they are always configured; the fallback
// keeps unmarked terms in the ungrouped bucket.
func (s *Splitter) bucketFor(marker rune) rune {
	if containsRune(s.markerOrder, marker) {
		return marker
	}

	return NoMarker
}

// applyContainer enforces the configured collection semantics on one term
// sequence.
func (s *Splitter) applyContainer(terms []string) []string {
	if s.cfg.Container != ContainerSet {
		return terms
	}

	seen := make(map[string]bool, len(terms))
	out := terms[:0]
	for _, term := range terms {
		if !seen[term] {
			seen[term] = true
			out = append(out, term)
		}
	}

	return out
}

var (
	defaultOnce     sync.Once
	defaultSplitter *Splitter
)

// Default returns the shared search-term splitter: space, tab, and comma
// separators, double and single quotes, no markers. It is built once and
// is safe to share; per-call state never leaks into it.
func Default() *Splitter {
	defaultOnce.Do(func() {
		s, err := NewBuilder().
			WithSeparators(' ', '\t', ',').
			WithQuotes('"', '\'').
			Build()
		if err != nil {
			// The default configuration is a compile-time constant;
			// failing to build it is a bug.
			panic(err)
		}
		defaultSplitter = s
	})

	return defaultSplitter
}
