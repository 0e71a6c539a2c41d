package stats

import (
	"sort"

	"github.com/verte-zerg/drawfreq/internal/model"
)

// DefaultTop is the number of highlighted entries per chart.
const DefaultTop = 5

// Rank sorts counter entries by count descending; ties keep first-seen order.
func Rank(c *Counter) model.RankedList {
	if c == nil {
		return model.RankedList{}
	}
	items := model.RankedList(c.Entries())
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Count > items[j].Count
	})
	return items
}

// Top returns the leading min(n, len(list)) entries.
func Top(list model.RankedList, n int) model.RankedList {
	if n <= 0 || len(list) == 0 {
		return model.RankedList{}
	}
	if n > len(list) {
		n = len(list)
	}
	out := make(model.RankedList, n)
	copy(out, list[:n])
	return out
}

// Highlight returns the numbers of the top n entries.
func Highlight(list model.RankedList, n int) model.HighlightSet {
	top := Top(list, n)
	set := make(model.HighlightSet, len(top))
	for _, e := range top {
		set[e.Number] = struct{}{}
	}
	return set
}
