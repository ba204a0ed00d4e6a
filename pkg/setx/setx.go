package setx

import (
	"sort"

	"github.com/samber/lo"
)

func FromSlice(items []string) map[string]struct{} {
	return lo.SliceToMap(items, func(item string) (string, struct{}) {
		return item, struct{}{}
	})
}

// Sorted returns the members of s in lexicographic order.
func Sorted(s map[string]struct{}) []string {
	keys := lo.Keys(s)
	sort.Strings(keys)
	return keys
}

// Diff returns the members of current missing from known, in lexicographic order.
func Diff(current, known map[string]struct{}) []string {
	fresh := lo.OmitByKeys(current, lo.Keys(known))
	return Sorted(fresh)
}
