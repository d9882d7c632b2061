// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package window implements a virtual list over a sequence of display
// tokens: given the tokens currently visible and the geometry of a scrolled
// viewport, it computes the contiguous range of tokens that must be rendered.
//
// All rows have the same height, so the layout is a cumulative offset table
// and the first row in view is found by binary search. Recomputation is
// throttled to at most once per frame by a Throttle.
package window

import "github.com/creachadair/jview"

// A Node is the layout record of one row of the list.
type Node struct {
	Token  *jview.Token
	Index  int // offset among the visible tokens, not the whole sequence
	Height int
	Top    int // offset of the top edge of the row
	Bottom int // offset of the bottom edge, Top + Height
}

// Scroll describes the scroll position of the list.
type Scroll struct {
	Top    int // offset of the top edge of the viewport
	Bottom int // offset of the bottom edge of the viewport
	Height int // total height of the content
}

// View describes the size of the viewport.
type View struct {
	Width  int
	Height int
}

// Layout returns layout records for tokens, stacking rows of lineHeight
// from offset 0. A negative lineHeight is treated as 0.
func Layout(tokens []*jview.Token, lineHeight int) []Node {
	lineHeight = max(lineHeight, 0)
	nodes := make([]Node, len(tokens))
	top := 0
	for i, tok := range tokens {
		nodes[i] = Node{
			Token:  tok,
			Index:  i,
			Height: lineHeight,
			Top:    top,
			Bottom: top + lineHeight,
		}
		top += lineHeight
	}
	return nodes
}

// contentHeight reports the total height of nodes.
func contentHeight(nodes []Node) int {
	if len(nodes) == 0 {
		return 0
	}
	return nodes[len(nodes)-1].Bottom
}
