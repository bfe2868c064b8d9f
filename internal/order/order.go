// Package order holds the ordered-sequence rules: the persistence contract,
// the stored text format, load reconciliation and the swap mutation.
package order

import (
	"encoding/json"
	"slices"
	"strings"
)

// Store persists the ordered list of item identifiers.
//
// LoadOrder reports false when nothing usable is stored; absent and corrupt
// data are indistinguishable to the caller.
type Store interface {
	LoadOrder() ([]string, bool)
	SaveOrder(ids []string) error
}

// Encode serializes ids as a JSON array of strings.
func Encode(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode parses a stored order. It returns false for empty input, invalid
// JSON, or anything other than an array of strings.
func Decode(raw string) ([]string, bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, false
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, false
	}
	if ids == nil {
		// "null"
		return nil, false
	}
	return ids, true
}

// Reconcile builds the display sequence from a persisted order and the ids
// currently registered. Persisted ids that are no longer registered are
// dropped, duplicates keep their first position, and registered ids missing
// from the persisted order are appended in registration order.
func Reconcile(persisted, registered []string) []string {
	known := make(map[string]bool, len(registered))
	for _, id := range registered {
		known[id] = true
	}

	seq := make([]string, 0, len(registered))
	placed := make(map[string]bool, len(registered))
	for _, id := range persisted {
		if !known[id] || placed[id] {
			continue
		}
		placed[id] = true
		seq = append(seq, id)
	}
	for _, id := range registered {
		if placed[id] {
			continue
		}
		placed[id] = true
		seq = append(seq, id)
	}
	return seq
}

// Swap returns a copy of seq with a and b exchanged. It reports false, and
// returns seq unchanged, when a == b or either id is missing.
func Swap(seq []string, a, b string) ([]string, bool) {
	if a == b {
		return seq, false
	}
	i := slices.Index(seq, a)
	j := slices.Index(seq, b)
	if i < 0 || j < 0 {
		return seq, false
	}
	next := slices.Clone(seq)
	next[i], next[j] = next[j], next[i]
	return next, true
}
