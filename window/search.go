// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package window

import "sort"

// FindFirstVisible returns the index of the first node whose row extends
// below the top of the viewport, that is, whose Bottom is greater than
// scroll.Top. Rows cover the half-open range [Top, Bottom), so a row ending
// exactly at the scroll offset is not in view.
//
// The result is clamped to [0, len(nodes)-1]: if the viewport is below all
// content, the last node is reported. For no nodes the result is 0.
//
// The Bottom offsets of nodes must be non-decreasing, as Layout guarantees.
func FindFirstVisible(nodes []Node, scroll Scroll) int {
	n := len(nodes)
	if n == 0 {
		return 0
	}
	i := sort.Search(n, func(i int) bool { return nodes[i].Bottom > scroll.Top })
	return min(i, n-1)
}

// FindLastVisible returns the exclusive end of the range of nodes in view,
// scanning forward from first. The scan stops at the first node whose Bottom
// lies past scroll.Bottom; that node is partially in view and is included.
// The result is at most len(nodes), and 0 for no nodes.
//
// The cost of the scan is proportional to the number of rows in view.
func FindLastVisible(nodes []Node, first int, scroll Scroll) int {
	n := len(nodes)
	if n == 0 {
		return 0
	}
	end := max(first, 0)
	for end < n && nodes[end].Bottom <= scroll.Bottom {
		end++
	}
	return min(end+1, n)
}

// Pad widens the range [start, end) by extra rows on each side, clamped to
// the bounds of a list of n rows.
func Pad(start, end, n, extra int) (int, int) {
	extra = max(extra, 0)
	return max(start-extra, 0), min(end+extra, n)
}
