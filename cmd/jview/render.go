// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/creachadair/jview"
	"github.com/mattn/go-runewidth"
)

// ellipsis marks truncated text and the elided contents of a collapsed node.
const ellipsis = "\u2026"

type styles struct {
	Gutter  lipgloss.Style
	Cursor  lipgloss.Style
	Key     lipgloss.Style
	Bracket lipgloss.Style
	Summary lipgloss.Style
	Status  lipgloss.Style
	Values  map[jview.Type]lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Gutter:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Cursor:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Bracket: lipgloss.NewStyle().Bold(true),
		Summary: lipgloss.NewStyle().Faint(true).Italic(true),
		Status:  lipgloss.NewStyle().Reverse(true),
		Values: map[jview.Type]lipgloss.Style{
			jview.String:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
			jview.Number:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
			jview.Boolean: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
			jview.Null:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		},
	}
}

// renderRow renders the display row for tok: a line number gutter, the
// cursor mark, indentation, the member name if any, and the value.
func (m *model) renderRow(tok *jview.Token) string {
	var sb strings.Builder

	mark := " "
	if tok.Hover {
		mark = m.styles.Cursor.Render(">")
	}
	sb.WriteString(m.styles.Gutter.Render(fmt.Sprintf("%*d", m.numWidth, tok.Index+1)))
	sb.WriteString(mark)
	sb.WriteByte(' ')
	used := m.numWidth + 2

	ind := strings.Repeat(" ", tok.Depth*max(m.cfg.Indent, 0))
	sb.WriteString(ind)
	used += len(ind)

	if tok.Key.IsName() && !tok.IsClose() {
		label := tok.Key.String()
		sb.WriteString(m.styles.Key.Render(label))
		sb.WriteString(": ")
		used += runewidth.StringWidth(label) + 2
	}

	// Leave at least one column for the value, even on a narrow screen.
	avail := max(m.width-used, 1)
	if m.width <= 0 {
		avail = -1
	}
	sb.WriteString(m.renderValue(tok, avail))
	return sb.String()
}

// renderValue renders the value part of a row in at most width columns.
// A negative width means no limit.
func (m *model) renderValue(tok *jview.Token, width int) string {
	comma := ""
	if tok.HasNext && !(tok.IsOpen() && !tok.Collapsed) {
		comma = ","
	}

	if !tok.Type.IsTree() {
		text := truncate(tok.Text()+comma, width)
		if st, ok := m.styles.Values[tok.Type]; ok {
			return st.Render(text)
		}
		return text
	}
	if !tok.IsOpen() || !tok.Collapsed {
		return m.styles.Bracket.Render(truncate(tok.Text()+comma, width))
	}

	// A collapsed node shows both brackets on one line with a summary.
	closer := "]"
	if tok.Type == jview.Object {
		closer = "}"
	}
	head := tok.Text() + ellipsis + closer + comma
	summary := " // " + countItems(tok.Children)
	full := truncate(head+summary, width)
	if len(full) <= len(head) || !strings.HasPrefix(full, head) {
		return m.styles.Bracket.Render(full)
	}
	return m.styles.Bracket.Render(head) + m.styles.Summary.Render(full[len(head):])
}

func (m *model) renderStatus() string {
	var path string
	var pos int
	if m.cursor < len(m.visible) {
		path = m.visible[m.cursor].Path
		pos = m.cursor + 1
	}
	if path == "" {
		path = "(root)"
	}
	right := fmt.Sprintf(" %d/%d", pos, len(m.visible))
	left := truncate(path, max(m.width-len(right), 1))
	pad := max(m.width-runewidth.StringWidth(left)-len(right), 1)
	return m.styles.Status.Render(left + strings.Repeat(" ", pad) + right)
}

// truncate shortens s to at most width columns, marking the cut with an
// ellipsis. A negative width leaves s unchanged.
func truncate(s string, width int) string {
	if width < 0 {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}

func countItems(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}
