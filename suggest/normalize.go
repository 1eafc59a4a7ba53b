package suggest

import (
	"strconv"
	"strings"
)

// NormalizePlan returns a copy of items with a unique display Key on each.
// The key is the id when present, otherwise "<type>-<title>", otherwise
// "item-<index>". Repeated keys get "-1", "-2" and so on.
func NormalizePlan(items []PlanSuggestion) []PlanSuggestion {
	out := make([]PlanSuggestion, len(items))
	counts := make(map[string]int, len(items))
	for i, item := range items {
		key := baseKey(item, i)
		seen := counts[key]
		counts[key] = seen + 1
		if seen > 0 {
			key = key + "-" + strconv.Itoa(seen)
		}
		item.Key = key
		out[i] = item
	}
	return out
}

func baseKey(item PlanSuggestion, index int) string {
	if item.ID != "" {
		return item.ID
	}
	if item.Type == "" && item.Title == "" {
		return "item-" + strconv.Itoa(index)
	}
	typ := item.Type
	if typ == "" {
		typ = "item"
	}
	return strings.TrimSpace(typ + "-" + item.Title)
}
