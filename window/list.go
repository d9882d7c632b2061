// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package window

import "github.com/creachadair/jview"

// A Viewport reports the geometry of the scrolled region that displays the
// list. Measure reports false if the viewport cannot be measured yet, for
// example because it has not been laid out.
type Viewport interface {
	Measure() (Metrics, bool)
}

// ViewportFunc adapts a function to the Viewport interface.
type ViewportFunc func() (Metrics, bool)

// Measure satisfies the Viewport interface.
func (f ViewportFunc) Measure() (Metrics, bool) { return f() }

// Metrics are the measurements of a viewport.
type Metrics struct {
	ClientWidth  int
	ClientHeight int
	ScrollTop    int

	// ScrollHeight is the height of the scrolled content as the viewport
	// reports it. The List uses it only while it has no rows; otherwise the
	// content height comes from the layout.
	ScrollHeight int
}

// Options configure a List. A nil *Options is ready for use and gives a
// line height of 1, no pre-rendering, and immediate updates.
type Options struct {
	// LineHeight is the height of every row. If zero, 1 is used.
	LineHeight int

	// PreRender is the number of extra rows rendered beyond each edge of the
	// viewport.
	PreRender int

	// Scheduler runs throttled updates. If nil, Immediate is used.
	Scheduler Scheduler
}

func (o *Options) lineHeight() int {
	if o == nil || o.LineHeight <= 0 {
		return 1
	}
	return o.LineHeight
}

func (o *Options) preRender() int {
	if o == nil {
		return 0
	}
	return max(o.PreRender, 0)
}

func (o *Options) scheduler() Scheduler {
	if o == nil {
		return nil
	}
	return o.Scheduler
}

// A List is a virtual list engine. It keeps the layout of the visible tokens
// and the most recent measurement of its viewport, and computes the window
// of rows that must be rendered.
//
// The host reports changes with SetTokens, SetLineHeight, Scrolled and
// Resized. Each of these requests an update through a Throttle, so a burst
// of events costs one recomputation per frame.
//
// A List is not safe for concurrent use.
type List struct {
	vp         Viewport
	lineHeight int
	preRender  int
	throttle   *Throttle

	tokens   []*jview.Token
	nodes    []Node
	scroll   Scroll
	view     View
	measured bool

	start, end int // unpadded window
}

// New constructs a List that measures vp. The list is empty until the first
// call to SetTokens.
func New(vp Viewport, opts *Options) *List {
	return &List{
		vp:         vp,
		lineHeight: opts.lineHeight(),
		preRender:  opts.preRender(),
		throttle:   NewThrottle(opts.scheduler()),
	}
}

// SetTokens replaces the visible tokens of the list, rebuilds the layout,
// and requests an update.
func (l *List) SetTokens(tokens []*jview.Token) {
	l.tokens = tokens
	l.nodes = Layout(tokens, l.lineHeight)
	l.Invalidate()
}

// SetLineHeight changes the height of every row, rebuilds the layout, and
// requests an update. A value less than 1 is treated as 1.
func (l *List) SetLineHeight(h int) {
	l.lineHeight = max(h, 1)
	l.nodes = Layout(l.tokens, l.lineHeight)
	l.Invalidate()
}

// SetPreRender changes the number of extra rows rendered beyond each edge of
// the viewport. It takes effect immediately.
func (l *List) SetPreRender(n int) { l.preRender = max(n, 0) }

// Scrolled reports that the viewport has scrolled.
func (l *List) Scrolled() { l.Invalidate() }

// Resized reports that the viewport has changed size.
func (l *List) Resized() { l.Invalidate() }

// Invalidate requests an update. Requests made while one is already pending
// are coalesced with it.
func (l *List) Invalidate() { l.throttle.Trigger(l.Update) }

// Pending reports whether an update has been requested and not yet run.
func (l *List) Pending() bool { return l.throttle.Pending() }

// Update measures the viewport and recomputes the window immediately.
// If the viewport cannot be measured, the previous state is kept.
func (l *List) Update() {
	if l.vp == nil {
		return
	}
	m, ok := l.vp.Measure()
	if !ok {
		return
	}
	l.measured = true
	l.view = View{Width: m.ClientWidth, Height: m.ClientHeight}
	l.scroll = Scroll{
		Top:    m.ScrollTop,
		Bottom: m.ScrollTop + m.ClientHeight,
		Height: contentHeight(l.nodes),
	}
	if len(l.nodes) == 0 {
		l.scroll.Height = m.ScrollHeight
	}
	l.start = FindFirstVisible(l.nodes, l.scroll)
	l.end = FindLastVisible(l.nodes, l.start, l.scroll)
}

// Measured reports whether the viewport has been measured at least once.
func (l *List) Measured() bool { return l.measured }

// Entries returns the range [start, end) of rows in view, without padding.
// Before the first measurement, it returns (0, 0).
func (l *List) Entries() (start, end int) {
	if !l.measured {
		return 0, 0
	}
	end = min(l.end, len(l.nodes))
	return min(l.start, end), end
}

// Window returns the range [start, end) of rows to render: the rows in
// view, widened by the pre-render count on each side. Before the first
// measurement, it returns (0, 0).
func (l *List) Window() (start, end int) {
	start, end = l.Entries()
	if end == 0 {
		return 0, 0
	}
	return Pad(start, end, len(l.nodes), l.preRender)
}

// Viewable returns the layout records of the rows to render.
func (l *List) Viewable() []Node {
	start, end := l.Window()
	return l.nodes[start:end]
}

// Nodes returns the layout records of all visible tokens.
func (l *List) Nodes() []Node { return l.nodes }

// Scroll returns the most recently measured scroll state.
func (l *List) Scroll() Scroll { return l.scroll }

// View returns the most recently measured viewport size.
func (l *List) View() View { return l.view }
