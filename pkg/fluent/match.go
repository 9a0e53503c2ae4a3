package fluent

import "digital.vasic.fluent/pkg/assertion"

// matchMultiset pairs every actual item with a distinct equal
// expected item. Unpaired expected items are missing and unpaired
// actual items are extra. Pairing is greedy in order, which is
// exact for an equivalence relation.
func matchMultiset[E any](actual, expected []E) (missing, extra []E) {
	pool := make([]int, len(expected))
	for i := range pool {
		pool[i] = i
	}

	for _, a := range actual {
		matched := -1
		for j, idx := range pool {
			if assertion.Equal(a, expected[idx]) {
				matched = j
				break
			}
		}
		if matched < 0 {
			extra = append(extra, a)
			continue
		}
		pool = append(pool[:matched], pool[matched+1:]...)
	}

	for _, idx := range pool {
		missing = append(missing, expected[idx])
	}
	return missing, extra
}
