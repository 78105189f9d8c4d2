package engine

import "sort"

// classification partitions the two key sets. Slices hold canonical keys
// sorted by key tuple so downstream output is deterministic.
type classification struct {
	missing []string // in source, not in target
	extra   []string // in target, not in source
	common  []string // in both
}

// classify computes missing = S − T, extra = T − S, common = S ∩ T using
// hash-set membership, O(|S| + |T|).
func classify(source, target map[string]entry) classification {
	var c classification
	for ck := range source {
		if _, ok := target[ck]; ok {
			c.common = append(c.common, ck)
		} else {
			c.missing = append(c.missing, ck)
		}
	}
	for ck := range target {
		if _, ok := source[ck]; !ok {
			c.extra = append(c.extra, ck)
		}
	}

	sortByKey(c.missing, source)
	sortByKey(c.extra, target)
	sortByKey(c.common, source)
	return c
}

func sortByKey(cks []string, idx map[string]entry) {
	sort.Slice(cks, func(i, j int) bool {
		return keyLess(idx[cks[i]].key, idx[cks[j]].key)
	})
}
