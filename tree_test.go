// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jview_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/creachadair/jview"
	"github.com/creachadair/jview/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  }
}`

func mustTree(t *testing.T, v any, opts *jview.Options) *jview.Tree {
	t.Helper()
	tree, err := jview.NewTree(v, opts)
	if err != nil {
		t.Fatalf("NewTree: unexpected error: %v", err)
	}
	return tree
}

// visibleIndexes returns the indexes of the visible tokens of tree.
func visibleIndexes(tree *jview.Tree) []int {
	var out []int
	for _, tok := range tree.Visible() {
		out = append(out, tok.Index)
	}
	return out
}

// wantVisible computes the visibility of the token at i by walking its
// ancestors: a token is hidden if any ancestor is collapsed, and a close
// token is also hidden if its own node is collapsed.
func wantVisible(toks []jview.Token, i int) bool {
	if toks[i].IsClose() && toks[i].Collapsed {
		return false
	}
	for p := toks[i].Parent; p >= 0; p = toks[p].Parent {
		if toks[p].Collapsed {
			return false
		}
	}
	return true
}

func checkVisibility(t *testing.T, tree *jview.Tree) {
	t.Helper()
	toks := tree.All()
	for i, tok := range toks {
		if want := wantVisible(toks, i); tok.Visible != want {
			t.Errorf("Token %d (%v): visible=%v, want %v", i, &tok, tok.Visible, want)
		}
	}
}

func TestToggle(t *testing.T) {
	// {"a": {"b": {"c": 1}}} with MaxDepth 1:
	//
	//   0 {     1 "a": {     2 "b": {     3 "c": 1
	//   4 }     5 }          6 }
	v := jview.Members{
		jview.Field("a", jview.Members{
			jview.Field("b", jview.Members{jview.Field("c", 1)}),
		}),
	}
	tree := mustTree(t, v, &jview.Options{MaxDepth: 1})
	if diff := cmp.Diff(visibleIndexes(tree), []int{0, 1, 6}); diff != "" {
		t.Fatalf("Initial visible (-got, +want):\n%s", diff)
	}

	var notified [][]int
	tree.Watch(func(changed []int) { notified = append(notified, changed) })

	steps := []struct {
		index   int
		changed []int
		visible []int
	}{
		{1, []int{2, 5}, []int{0, 1, 2, 5, 6}},       // expand "a"; "b" stays collapsed
		{2, []int{3, 4}, []int{0, 1, 2, 3, 4, 5, 6}}, // expand "b"
		{5, []int{2, 3, 4, 5}, []int{0, 1, 6}},       // collapse "a" by its close token
		{2, nil, []int{0, 1, 6}},                     // collapse hidden "b"
		{1, []int{2, 5}, []int{0, 1, 2, 5, 6}},       // expand "a"; "b" is collapsed again
		{0, []int{1, 2, 5, 6}, []int{0}},             // collapse the root
		{0, []int{1, 2, 5, 6}, []int{0, 1, 2, 5, 6}}, // and expand it
		{4, []int{3, 4}, []int{0, 1, 2, 3, 4, 5, 6}}, // expand "b" by its close token
	}
	for i, step := range steps {
		changed, err := tree.Toggle(step.index)
		if err != nil {
			t.Fatalf("Step %d: Toggle(%d): unexpected error: %v", i, step.index, err)
		}
		if diff := cmp.Diff(changed, step.changed); diff != "" {
			t.Errorf("Step %d: Toggle(%d) changed (-got, +want):\n%s", i, step.index, diff)
		}
		if diff := cmp.Diff(visibleIndexes(tree), step.visible); diff != "" {
			t.Errorf("Step %d: visible (-got, +want):\n%s", i, diff)
		}
		checkVisibility(t, tree)
	}
	if len(notified) != len(steps) {
		t.Errorf("Got %d notifications, want %d", len(notified), len(steps))
	}
}

func TestToggleErrors(t *testing.T) {
	tree := mustTree(t, []any{1, "two"}, nil)
	tests := []struct {
		index int
		want  error
	}{
		{-1, jview.ErrNoSuchToken},
		{4, jview.ErrNoSuchToken},
		{1, jview.ErrNotCollapsible},
		{2, jview.ErrNotCollapsible},
	}
	for _, tc := range tests {
		if _, err := tree.Toggle(tc.index); !errors.Is(err, tc.want) {
			t.Errorf("Toggle(%d): got error %v, want %v", tc.index, err, tc.want)
		}
		if _, err := tree.SetCollapsed(tc.index, true); !errors.Is(err, tc.want) {
			t.Errorf("SetCollapsed(%d): got error %v, want %v", tc.index, err, tc.want)
		}
	}
}

func TestToggleRandom(t *testing.T) {
	r := testutil.NewRand(3)
	for range 50 {
		v := testutil.RandomValue(r, 5, 4)
		tree := mustTree(t, v, &jview.Options{MaxDepth: r.IntN(4) - 1})
		checkVisibility(t, tree)

		var trees []int
		for i, tok := range tree.All() {
			if tok.Type.IsTree() {
				trees = append(trees, i)
			}
		}
		if len(trees) == 0 {
			continue
		}
		for range 20 {
			before := slices.Clone(visibleIndexes(tree))
			i := trees[r.IntN(len(trees))]
			changed, err := tree.Toggle(i)
			if err != nil {
				t.Fatalf("Toggle(%d): unexpected error: %v", i, err)
			}
			checkVisibility(t, tree)

			// The reported changes are exactly the difference between the
			// visible sets before and after.
			after := visibleIndexes(tree)
			var diff []int
			for j := range tree.Len() {
				if slices.Contains(before, j) != slices.Contains(after, j) {
					diff = append(diff, j)
				}
			}
			if !slices.Equal(diff, changed) {
				t.Fatalf("Toggle(%d): changed %v, want %v", i, changed, diff)
			}
		}
	}
}

func TestExpandCollapseAll(t *testing.T) {
	v, err := jview.Decode(strings.NewReader(testJSON))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	tree := mustTree(t, v, &jview.Options{MaxDepth: 1})
	n := tree.Len()

	tree.ExpandAll()
	if got := len(tree.Visible()); got != n {
		t.Errorf("After ExpandAll: %d visible, want %d", got, n)
	}
	checkVisibility(t, tree)

	tree.CollapseAll()
	if diff := cmp.Diff(visibleIndexes(tree), []int{0}); diff != "" {
		t.Errorf("After CollapseAll (-got, +want):\n%s", diff)
	}
	checkVisibility(t, tree)

	// Reveal the value of "d", which expands its ancestors but not its
	// siblings' containers.
	d, err := tree.Lookup("xyz", "d")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if _, err := tree.Reveal(d); err != nil {
		t.Fatalf("Reveal(%d): %v", d, err)
	}
	if !tree.Token(d).Visible {
		t.Errorf("Token %d is not visible after Reveal", d)
	}
	if list, _ := tree.Lookup("list"); !tree.Token(list).Collapsed {
		t.Errorf("Token %d was expanded by Reveal", list)
	}
	checkVisibility(t, tree)
}

func TestSetCollapsed(t *testing.T) {
	tree := mustTree(t, []any{[]any{1}}, nil)
	if changed, err := tree.SetCollapsed(1, false); err != nil || changed != nil {
		t.Errorf("SetCollapsed no-op: got %v, %v; want nil, nil", changed, err)
	}
	changed, err := tree.SetCollapsed(3, true)
	if err != nil {
		t.Fatalf("SetCollapsed: unexpected error: %v", err)
	}
	if diff := cmp.Diff(changed, []int{2, 3}); diff != "" {
		t.Errorf("SetCollapsed changed (-got, +want):\n%s", diff)
	}
}

func TestLookup(t *testing.T) {
	v, err := jview.Decode(strings.NewReader(testJSON))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	tree := mustTree(t, v, nil)

	tests := []struct {
		name string
		path []any
		want string // path of the token found
		fail bool
	}{
		{"NilInput", nil, "", false},
		{"NoMatch", []any{"nonesuch"}, "", true},
		{"WrongType", []any{"list", "x"}, "", true},
		{"ArrayPos", []any{"list", 1}, ".list[1]", false},
		{"ArrayNeg", []any{"list", -1}, ".list[1]", false},
		{"ArrayRange", []any{"o", 25}, "", true},
		{"ObjPath", []any{"xyz", "d"}, ".xyz.d", false},
		{"ObjIndex", []any{"xyz", -1}, ".xyz.q", false},
		{"Deep", []any{"list", 0, "x"}, ".list[0].x", false},
		{"ScalarStep", []any{"o", 0, 0}, "", true},
		{"BadElement", []any{1.5}, "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			i, err := tree.Lookup(tc.path...)
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
					return
				}
				t.Fatalf("Lookup %+v: unexpected error: %v", tc.path, err)
			} else if tc.fail {
				t.Fatalf("Lookup %+v: got %d, want error", tc.path, i)
			}
			if got := tree.Token(i).Path; got != tc.want {
				t.Errorf("Lookup %+v: got path %q, want %q", tc.path, got, tc.want)
			}
		})
	}
}

func TestChildren(t *testing.T) {
	tree := mustTree(t, []any{1, []any{2, 3}, jview.Members{}, "four"}, nil)
	got := slices.Collect(tree.Children(0))
	if diff := cmp.Diff(got, []int{1, 2, 6, 8}); diff != "" {
		t.Errorf("Children(0) (-got, +want):\n%s", diff)
	}
	if got := slices.Collect(tree.Children(1)); len(got) != 0 {
		t.Errorf("Children of a scalar: got %v, want none", got)
	}
	if got := slices.Collect(tree.Children(6)); len(got) != 0 {
		t.Errorf("Children of an empty object: got %v, want none", got)
	}
}

func TestSetHover(t *testing.T) {
	tree := mustTree(t, []any{1, 2, 3}, nil)
	hovered := func() []int {
		var out []int
		for i, tok := range tree.All() {
			if tok.Hover {
				out = append(out, i)
			}
		}
		return out
	}
	tree.SetHover(2)
	if diff := cmp.Diff(hovered(), []int{2}); diff != "" {
		t.Errorf("SetHover(2) (-got, +want):\n%s", diff)
	}
	tree.SetHover(3)
	if diff := cmp.Diff(hovered(), []int{3}); diff != "" {
		t.Errorf("SetHover(3) (-got, +want):\n%s", diff)
	}
	tree.SetHover(-1)
	if got := hovered(); len(got) != 0 {
		t.Errorf("SetHover(-1): got %v, want none", got)
	}
}
