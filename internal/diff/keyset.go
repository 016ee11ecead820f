package diff

import "sort"

// Classify partitions the keys of a and b into three disjoint sorted
// groups: keys present in both, keys only in a, and keys only in b.
// Sorting makes the per-key resolution order deterministic and
// reproducible across runs. Empty or nil mappings yield empty groups.
func Classify(a, b Mapping) (common, onlyA, onlyB []string) {
	common = []string{}
	onlyA = []string{}
	onlyB = []string{}

	for k := range a {
		if _, ok := b[k]; ok {
			common = append(common, k)
		} else {
			onlyA = append(onlyA, k)
		}
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			onlyB = append(onlyB, k)
		}
	}

	sort.Strings(common)
	sort.Strings(onlyA)
	sort.Strings(onlyB)
	return common, onlyA, onlyB
}

// NewLayout computes the row rendering geometry for one pass over a and b.
func NewLayout(a, b Mapping) Layout {
	layout := Layout{ValueWidth: 40}
	for k := range a {
		if len(k) > layout.KeyWidth {
			layout.KeyWidth = len(k)
		}
	}
	for k := range b {
		if len(k) > layout.KeyWidth {
			layout.KeyWidth = len(k)
		}
	}
	return layout
}
