// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jview

import (
	"fmt"
	"iter"
)

// A Tree holds the tokens of a single JSON value along with their display
// state. All changes to the Collapsed and Visible flags of its tokens go
// through the methods of the Tree, which report the indexes of the tokens
// whose visibility changed.
//
// A Tree is not safe for concurrent use without external synchronization.
type Tree struct {
	tokens []Token
	hover  int // index of the hovered token, or -1
	watch  []func(changed []int)
}

// NewTree tokenizes v with the given options and returns a Tree for the
// resulting tokens.
func NewTree(v any, opts *Options) (*Tree, error) {
	toks, err := Tokenize(v, opts)
	if err != nil {
		return nil, err
	}
	t := &Tree{tokens: toks, hover: -1}
	t.rescan(0, len(toks)-1, true, nil)
	return t, nil
}

// Len reports the total number of tokens in t, visible or not.
func (t *Tree) Len() int { return len(t.tokens) }

// Token returns the token at index i, or nil if i is out of range.
func (t *Tree) Token(i int) *Token {
	if i < 0 || i >= len(t.tokens) {
		return nil
	}
	return &t.tokens[i]
}

// All returns the complete token sequence of t. The caller must not modify
// the flags of the tokens directly.
func (t *Tree) All() []Token { return t.tokens }

// Visible returns the tokens of t whose Visible flag is set, in order.
func (t *Tree) Visible() []*Token {
	var out []*Token
	for i := range t.tokens {
		if t.tokens[i].Visible {
			out = append(out, &t.tokens[i])
		}
	}
	return out
}

// Watch registers f to be called after every change to the collapse state
// of t, with the indexes of the tokens whose visibility changed. The slice
// may be empty, for example when a hidden node is toggled.
func (t *Tree) Watch(f func(changed []int)) { t.watch = append(t.watch, f) }

func (t *Tree) notify(changed []int) []int {
	for _, f := range t.watch {
		f(changed)
	}
	return changed
}

// Toggle flips the collapse state of the array or object one of whose
// tokens is at index i, and returns the indexes of the tokens whose
// visibility changed as a result.
func (t *Tree) Toggle(i int) ([]int, error) {
	open, err := t.openOf(i)
	if err != nil {
		return nil, err
	}
	return t.setCollapsed(open, !t.tokens[open].Collapsed), nil
}

// SetCollapsed sets the collapse state of the array or object one of whose
// tokens is at index i. It returns the indexes of the tokens whose
// visibility changed.
func (t *Tree) SetCollapsed(i int, collapsed bool) ([]int, error) {
	open, err := t.openOf(i)
	if err != nil {
		return nil, err
	}
	if t.tokens[open].Collapsed == collapsed {
		return nil, nil
	}
	return t.setCollapsed(open, collapsed), nil
}

// ExpandAll clears the collapse state of every array and object in t.
func (t *Tree) ExpandAll() []int { return t.setAll(false) }

// CollapseAll sets the collapse state of every array and object in t.
func (t *Tree) CollapseAll() []int { return t.setAll(true) }

// Reveal expands every collapsed ancestor of the token at index i, so that
// it becomes visible.
func (t *Tree) Reveal(i int) ([]int, error) {
	tok := t.Token(i)
	if tok == nil {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchToken, i)
	}
	if tok.IsClose() {
		t.setFlag(tok.Sibling, false) // a close token is hidden by its own node
	}
	for p := tok.Parent; p >= 0; p = t.tokens[p].Parent {
		t.setFlag(p, false)
	}
	return t.notify(t.rescan(0, len(t.tokens)-1, true, nil)), nil
}

// SetHover marks the token at index i as hovered and clears the mark from
// any other token. An index out of range clears the mark.
func (t *Tree) SetHover(i int) {
	if t.hover >= 0 {
		t.tokens[t.hover].Hover = false
	}
	t.hover = -1
	if tok := t.Token(i); tok != nil {
		tok.Hover = true
		t.hover = i
	}
}

// Children returns a sequence of the indexes of the direct children of the
// array or object opened at index i. The sequence is empty if i is not an
// open token.
func (t *Tree) Children(i int) iter.Seq[int] {
	return func(yield func(int) bool) {
		tok := t.Token(i)
		if tok == nil || !tok.IsOpen() {
			return
		}
		for c := i + 1; c < tok.Sibling; {
			if !yield(c) {
				return
			}
			if t.tokens[c].IsOpen() {
				c = t.tokens[c].Sibling
			}
			c++
		}
	}
}

// Lookup traverses a sequential path into the structure of t starting from
// the root, and returns the index of the token reached. Path elements are
// strings (object keys) or integers (offsets into arrays or objects).
// Negative offsets count backward from the end (-1 is last). For arrays and
// objects the index of the open token is returned.
func (t *Tree) Lookup(path ...any) (int, error) {
	if len(t.tokens) == 0 {
		return -1, ErrNoSuchToken
	}
	cur := 0
	for _, elt := range path {
		tok := &t.tokens[cur]
		switch e := elt.(type) {
		case string:
			if tok.Type != Object || !tok.IsOpen() {
				return -1, fmt.Errorf("cannot traverse %v with %q", tok.Type, e)
			}
			next := -1
			for c := range t.Children(cur) {
				if k := t.tokens[c].Key; k.IsName() && k.Name() == e {
					next = c
					break
				}
			}
			if next < 0 {
				return -1, fmt.Errorf("key %q not found", e)
			}
			cur = next

		case int:
			if !tok.IsOpen() {
				return -1, fmt.Errorf("cannot traverse %v with %v", tok.Type, e)
			}
			pos, ok := fixArrayBound(tok.Children, e)
			if !ok {
				return -1, fmt.Errorf("%v index %d out of bounds (n=%d)", tok.Type, pos, tok.Children)
			}
			// Array elements carry their offset; object members are counted.
			n := 0
			for c := range t.Children(cur) {
				if k := t.tokens[c].Key; k.Index() == pos || (k.IsName() && n == pos) {
					cur = c
					break
				}
				n++
			}

		default:
			return -1, fmt.Errorf("invalid path element %T", elt)
		}
	}
	return cur, nil
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}

// openOf returns the index of the open token paired with the token at i.
func (t *Tree) openOf(i int) (int, error) {
	tok := t.Token(i)
	if tok == nil {
		return -1, fmt.Errorf("%w: %d", ErrNoSuchToken, i)
	} else if !tok.Type.IsTree() {
		return -1, fmt.Errorf("%w: %v at %d", ErrNotCollapsible, tok.Type, i)
	} else if tok.IsClose() {
		return tok.Sibling, nil
	}
	return i, nil
}

// setFlag sets the collapse state of both tokens of the node opened at open.
func (t *Tree) setFlag(open int, collapsed bool) {
	t.tokens[open].Collapsed = collapsed
	t.tokens[t.tokens[open].Sibling].Collapsed = collapsed
}

func (t *Tree) setCollapsed(open int, collapsed bool) []int {
	t.setFlag(open, collapsed)

	// Only the node's own range depends on its state. Whether the open token
	// itself is visible is decided by its ancestors, which are unchanged.
	tok := &t.tokens[open]
	return t.notify(t.rescan(open, tok.Sibling, tok.Visible, nil))
}

func (t *Tree) setAll(collapsed bool) []int {
	for i := range t.tokens {
		if t.tokens[i].IsOpen() {
			t.setFlag(i, collapsed)
		}
	}
	return t.notify(t.rescan(0, len(t.tokens)-1, true, nil))
}

// rescan recomputes the Visible flag of the tokens in the closed range
// [lo, hi], in a single pass, and appends the indexes of the tokens whose
// flag changed to changed. If vis is false, every token in the range is
// hidden. Otherwise, a token is hidden if it falls after a visible,
// collapsed open token and at or before its paired close token.
func (t *Tree) rescan(lo, hi int, vis bool, changed []int) []int {
	suppress := -1 // tokens at or before this index are hidden
	for i := lo; i <= hi; i++ {
		tok := &t.tokens[i]
		want := vis && i > suppress
		if want && tok.IsOpen() && tok.Collapsed {
			suppress = tok.Sibling
		}
		if tok.Visible != want {
			tok.Visible = want
			changed = append(changed, i)
		}
	}
	return changed
}
