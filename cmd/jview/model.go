// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/creachadair/jview"
	"github.com/creachadair/jview/window"
)

// frameInterval is the minimum delay between recomputations of the window.
const frameInterval = time.Second / 60

// frameMsg marks the start of a display frame.
type frameMsg struct{}

type config struct {
	Indent    int // spaces per nesting level
	PreRender int // rows beyond each edge of the screen
}

// A model is the bubbletea model of the viewer. The screen shows one row per
// visible token above a single status line.
type model struct {
	tree   *jview.Tree
	list   *window.List
	frames window.FrameQueue
	keys   keyMap
	styles styles
	cfg    config

	ticking       bool // a frameMsg is on its way
	width, height int
	scrollTop     int
	cursor        int // offset of the selected row in visible
	visible       []*jview.Token
	numWidth      int // width of the line number column
}

func newModel(tree *jview.Tree, cfg config) *model {
	m := &model{
		tree:     tree,
		keys:     defaultKeys(),
		styles:   defaultStyles(),
		cfg:      cfg,
		numWidth: len(strconv.Itoa(tree.Len())),
	}
	m.list = window.New(window.ViewportFunc(m.measure), &window.Options{
		LineHeight: 1,
		PreRender:  cfg.PreRender,
		Scheduler:  &m.frames,
	})
	tree.Watch(func([]int) { m.refresh() })
	m.refresh()
	m.moveCursor(0)
	return m
}

// refresh updates the list after a change in the visible tokens.
func (m *model) refresh() {
	m.visible = m.tree.Visible()
	m.list.SetTokens(m.visible)
}

func (m *model) measure() (window.Metrics, bool) {
	if m.height <= 0 {
		return window.Metrics{}, false
	}
	return window.Metrics{
		ClientWidth:  m.width,
		ClientHeight: m.bodyHeight(),
		ScrollTop:    m.scrollTop,
		ScrollHeight: len(m.visible),
	}, true
}

// bodyHeight reports the number of rows available for tokens.
func (m *model) bodyHeight() int { return max(m.height-1, 1) }

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.moveCursor(0)
		m.list.Resized()

	case frameMsg:
		m.ticking = false
		m.frames.Flush()

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scroll(-3)
		case tea.MouseButtonWheelDown:
			m.scroll(3)
		}

	case tea.KeyMsg:
		page := m.bodyHeight()
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
		case key.Matches(msg, m.keys.PageUp):
			m.moveCursor(-page)
		case key.Matches(msg, m.keys.PageDown):
			m.moveCursor(page)
		case key.Matches(msg, m.keys.Top):
			m.moveCursor(-len(m.visible))
		case key.Matches(msg, m.keys.Bottom):
			m.moveCursor(len(m.visible))
		case key.Matches(msg, m.keys.Toggle):
			m.toggle()
		case key.Matches(msg, m.keys.ExpandAll):
			cur := m.selected()
			m.tree.ExpandAll()
			m.selectToken(cur)
		case key.Matches(msg, m.keys.CollapseAll):
			cur := m.selected()
			m.tree.CollapseAll()
			m.selectToken(cur)
		}
	}
	return m, m.nextFrame()
}

// nextFrame returns a command to deliver the next frame, if any work is
// waiting for one and no frame is already on its way.
func (m *model) nextFrame() tea.Cmd {
	if m.ticking || m.frames.Len() == 0 {
		return nil
	}
	m.ticking = true
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

// selected returns the token index of the selected row.
func (m *model) selected() int {
	if m.cursor < len(m.visible) {
		return m.visible[m.cursor].Index
	}
	return 0
}

func (m *model) toggle() {
	cur := m.selected()
	if tok := m.tree.Token(cur); tok == nil || !tok.Type.IsTree() {
		return
	}
	if _, err := m.tree.Toggle(cur); err != nil {
		return
	}
	m.selectToken(cur)
}

// selectToken moves the cursor to the token at index i or, if it is hidden,
// to the nearest visible token that encloses it.
func (m *model) selectToken(i int) {
	for tok := m.tree.Token(i); tok != nil && !tok.Visible; tok = m.tree.Token(i) {
		if tok.IsClose() {
			i = tok.Sibling
		} else {
			i = tok.Parent
		}
	}
	pos, _ := slices.BinarySearchFunc(m.visible, i, func(t *jview.Token, i int) int {
		return cmp.Compare(t.Index, i)
	})
	m.cursor = pos
	m.moveCursor(0)
}

// moveCursor moves the cursor by delta rows, clamped to the visible tokens,
// and scrolls to keep it on screen.
func (m *model) moveCursor(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.visible)-1)
	page := m.bodyHeight()
	if m.cursor < m.scrollTop {
		m.scrollTop = m.cursor
	} else if m.cursor >= m.scrollTop+page {
		m.scrollTop = m.cursor - page + 1
	}
	m.scrollTop = min(m.scrollTop, max(len(m.visible)-page, 0))
	m.tree.SetHover(m.visible[m.cursor].Index)
	m.list.Scrolled()
}

// scroll moves the screen by delta rows, dragging the cursor along if it
// would leave the screen.
func (m *model) scroll(delta int) {
	if len(m.visible) == 0 {
		return
	}
	page := m.bodyHeight()
	m.scrollTop = min(max(m.scrollTop+delta, 0), max(len(m.visible)-page, 0))
	m.cursor = min(max(m.cursor, m.scrollTop), m.scrollTop+page-1)
	m.moveCursor(0)
}

func (m *model) View() string {
	if !m.list.Measured() {
		return ""
	}
	sc := m.list.Scroll()
	page := m.bodyHeight()

	var sb strings.Builder
	var rows int
	for _, n := range m.list.Viewable() {
		if n.Top < sc.Top || n.Top >= sc.Bottom {
			continue // pre-rendered rows are off screen in a terminal
		}
		sb.WriteString(m.renderRow(n.Token))
		sb.WriteByte('\n')
		rows++
	}
	for ; rows < page; rows++ {
		sb.WriteByte('\n')
	}
	sb.WriteString(m.renderStatus())
	return sb.String()
}
