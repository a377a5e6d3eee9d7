// Package trigram builds and queries the inverted trigram index used
// for fuzzy item-name search.
//
// The index maps every lowercase 3-byte substring of every display
// name to the ordered list of item positions containing it. Posting
// lists are in ascending item-index order; callers may rely on that
// for determinism but not for relevance.
package trigram

import "strings"

// Size is the n-gram window width.
const Size = 3

// Build constructs the inverted index over an ordered list of display
// names. Each position contributes each distinct trigram at most once,
// so repeated substrings within one name cannot inflate overlap
// scores. Names shorter than Size contribute nothing and are only
// reachable through the substring fallback at query time.
func Build(names []string) map[string][]int {
	index := make(map[string][]int)

	for i, name := range names {
		lower := strings.ToLower(name)
		if len(lower) < Size {
			continue
		}

		seen := make(map[string]struct{}, len(lower))
		for j := 0; j+Size <= len(lower); j++ {
			tri := lower[j : j+Size]
			if _, dup := seen[tri]; dup {
				continue
			}
			seen[tri] = struct{}{}
			index[tri] = append(index[tri], i)
		}
	}

	return index
}

// Extract returns the trigrams of a query in sliding-window order.
// Unlike Build it does not deduplicate: a repeated trigram in the
// query counts once per occurrence, matching how overlap scores are
// accumulated. The input must already be lowercased.
func Extract(query string) []string {
	if len(query) < Size {
		return nil
	}

	trigrams := make([]string, 0, len(query)-Size+1)
	for i := 0; i+Size <= len(query); i++ {
		trigrams = append(trigrams, query[i:i+Size])
	}
	return trigrams
}
