package splitter

import (
	"encoding/json"
)

// Pair is one (marker, term) element of a GroupPairs result. Marker is
// NoMarker for unmarked terms.
type Pair struct {
	Marker rune
	Term   string
}

// Result is the outcome of one split. Mode tells which field is populated:
// Terms for GroupNone, Groups for GroupMap, Pairs for GroupPairs, Buckets
// for GroupBuckets. Results are plain values with no reference back to the
// splitter; two splits of the same input compare equal.
type Result struct {
	Mode GroupingMode

	Terms   []string
	Groups  map[rune][]string
	Pairs   []Pair
	Buckets [][]string
}

// Empty reports whether the result holds no terms at all.
func (r *Result) Empty() bool {
	switch r.Mode {
	case GroupMap:
		for _, terms := range r.Groups {
			if len(terms) > 0 {
				return false
			}
		}

		return true
	case GroupPairs:
		return len(r.Pairs) == 0
	case GroupBuckets:
		for _, bucket := range r.Buckets {
			if len(bucket) > 0 {
				return false
			}
		}

		return true
	default:
		return len(r.Terms) == 0
	}
}

// Len returns the total number of terms across all groups.
func (r *Result) Len() int {
	switch r.Mode {
	case GroupMap:
		n := 0
		for _, terms := range r.Groups {
			n += len(terms)
		}

		return n
	case GroupPairs:
		return len(r.Pairs)
	case GroupBuckets:
		n := 0
		for _, bucket := range r.Buckets {
			n += len(bucket)
		}

		return n
	default:
		return len(r.Terms)
	}
}

// markerKey renders a marker for JSON object keys; the unmarked bucket
// becomes the empty string.
func markerKey(m rune) string {
	if m == NoMarker {
		return ""
	}

	return string(m)
}

type jsonPair struct {
	Marker string `json:"marker"`
	Term   string `json:"term"`
}

// MarshalJSON renders the populated shape directly: a flat result becomes
// an array of terms, a map result an object keyed by marker, a pairs
// result an array of {marker, term} objects, and a buckets result an
// array of arrays.
func (r *Result) MarshalJSON() ([]byte, error) {
	switch r.Mode {
	case GroupMap:
		groups := make(map[string][]string, len(r.Groups))
		for m, terms := range r.Groups {
			groups[markerKey(m)] = terms
		}

		return json.Marshal(groups)
	case GroupPairs:
		pairs := make([]jsonPair, len(r.Pairs))
		for i, p := range r.Pairs {
			pairs[i] = jsonPair{Marker: markerKey(p.Marker), Term: p.Term}
		}

		return json.Marshal(pairs)
	case GroupBuckets:
		return json.Marshal(r.Buckets)
	default:
		return json.Marshal(r.Terms)
	}
}
