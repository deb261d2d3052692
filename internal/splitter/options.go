package splitter

import (
	"github.com/conneroisu/termkit/internal/errors"
)

// GroupingMode selects the shape a split produces. It is resolved once at
// build time; Split performs a single switch on it per call.
type GroupingMode int

const (
	// GroupNone produces the flat, ordered term sequence.
	GroupNone GroupingMode = iota
	// GroupMap produces a mapping from marker to that marker's terms.
	// Every configured marker appears as a key even when its bucket is
	// empty.
	GroupMap
	// GroupPairs produces (marker, term) pairs in marker-declaration
	// order, then term order within each marker.
	GroupPairs
	// GroupBuckets produces one term sequence per configured marker, in
	// declaration order.
	GroupBuckets
)

// String returns the configuration name of the grouping mode.
func (m GroupingMode) String() string {
	switch m {
	case GroupNone:
		return "flat"
	case GroupMap:
		return "map"
	case GroupPairs:
		return "pairs"
	case GroupBuckets:
		return "buckets"
	default:
		return "unknown"
	}
}

// ParseGroupingMode resolves a configuration name to a grouping mode.
func ParseGroupingMode(name string) (GroupingMode, error) {
	switch name {
	case "", "flat", "list":
		return GroupNone, nil
	case "map", "mapping":
		return GroupMap, nil
	case "pairs":
		return GroupPairs, nil
	case "buckets", "sequences":
		return GroupBuckets, nil
	default:
		return GroupNone, errors.NewConfigError(
			errors.ErrCodeGroupingInvalid,
			"unknown grouping mode: "+name,
		)
	}
}

// Container selects the collection semantics of each produced term
// sequence.
type Container int

const (
	// ContainerList keeps every term in input order, duplicates included.
	ContainerList Container = iota
	// ContainerSet drops duplicate terms, keeping the first occurrence's
	// position.
	ContainerSet
)

// NoMarker is the sentinel for terms that carry no marker prefix. Listing
// it among the configured markers declares the unmarked bucket and fixes
// its position in pair and bucket ordering.
const NoMarker rune = 0

// Normalizer transforms a raw token into the term the caller receives.
// Errors propagate to the Split caller unchanged.
type Normalizer func(string) (string, error)

// Config describes one splitter. It is immutable once compiled into a
// Splitter; the zero value is not usable (an empty separator set is
// rejected).
type Config struct {
	// Separators delimit tokens and are discarded from output. The first
	// separator is the canonical join character.
	Separators []rune
	// Quotes are self-delimiting span characters: a quote opens a span
	// that runs to the next occurrence of the same character, or to end
	// of input when unterminated. Quote characters stay part of the raw
	// token.
	Quotes []rune
	// Markers are single leading characters that assign a token to a
	// group. May include NoMarker to position the unmarked bucket.
	Markers []rune
	// Grouping selects the result shape.
	Grouping GroupingMode
	// Normalize, when set, is applied to every token body.
	Normalize Normalizer
	// Sort orders terms lexicographically before grouping, so the order
	// applies within each final group.
	Sort bool
	// Container selects list or set semantics for term sequences.
	Container Container
}

// Builder provides a fluent interface for assembling a splitter
// configuration.
//
// Usage:
//
//	s, err := splitter.NewBuilder().
//	    WithSeparators(' ', '\t', ',').
//	    WithQuotes('"', '\'').
//	    WithMarkers(splitter.NoMarker, '+', '-').
//	    WithGrouping(splitter.GroupMap).
//	    Build()
type Builder struct {
	cfg Config
}

// NewBuilder creates a builder with an empty configuration.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithSeparators sets the separator characters; the first is canonical.
func (b *Builder) WithSeparators(seps ...rune) *Builder {
	b.cfg.Separators = seps

	return b
}

// WithQuotes sets the quote characters.
func (b *Builder) WithQuotes(quotes ...rune) *Builder {
	b.cfg.Quotes = quotes

	return b
}

// WithMarkers sets the group-marker characters, optionally including
// NoMarker for the unmarked bucket.
func (b *Builder) WithMarkers(markers ...rune) *Builder {
	b.cfg.Markers = markers

	return b
}

// WithGrouping sets the result shape.
func (b *Builder) WithGrouping(mode GroupingMode) *Builder {
	b.cfg.Grouping = mode

	return b
}

// WithNormalizer sets the per-token normalization function.
func (b *Builder) WithNormalizer(fn Normalizer) *Builder {
	b.cfg.Normalize = fn

	return b
}

// WithSort enables lexicographic term ordering.
func (b *Builder) WithSort(sort bool) *Builder {
	b.cfg.Sort = sort

	return b
}

// WithContainer sets list or set semantics.
func (b *Builder) WithContainer(c Container) *Builder {
	b.cfg.Container = c

	return b
}

// Build validates the configuration and compiles the splitter.
func (b *Builder) Build() (*Splitter, error) {
	return New(b.cfg)
}

// validate rejects empty or contradictory configurations. A character may
// serve only one role: separator, quote, or marker.
func validate(cfg *Config) error {
	if len(cfg.Separators) == 0 {
		return errors.ErrEmptySeparators()
	}

	if cfg.Grouping < GroupNone || cfg.Grouping > GroupBuckets {
		return errors.NewConfigError(
			errors.ErrCodeGroupingInvalid,
			"grouping mode out of range",
		)
	}

	if cfg.Container < ContainerList || cfg.Container > ContainerSet {
		return errors.NewConfigError(
			errors.ErrCodeContainerInvalid,
			"container selector out of range",
		)
	}

	seps := runeSet(cfg.Separators)
	quotes := runeSet(cfg.Quotes)

	for _, q := range cfg.Quotes {
		if seps[q] {
			return errors.NewConfigError(
				errors.ErrCodeQuoteConflict,
				"quote character is also configured as a separator: "+string(q),
			)
		}
	}

	for _, m := range cfg.Markers {
		if m == NoMarker {
			continue
		}
		if seps[m] {
			return errors.ErrMarkerConflict(m, "separator")
		}
		if quotes[m] {
			return errors.ErrMarkerConflict(m, "quote character")
		}
	}

	return nil
}

func runeSet(rs []rune) map[rune]bool {
	set := make(map[rune]bool, len(rs))
	for _, r := range rs {
		set[r] = true
	}

	return set
}
