package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// MessageType represents the type of status message.
type MessageType int

const (
	MsgInfo MessageType = iota
	MsgSuccess
	MsgError
)

// StatusBarModel is the one-line summary at the bottom of the viewer.
type StatusBarModel struct {
	message     string
	messageType MessageType
	messageTime time.Time
	settings    string
	queryTime   time.Duration
	rowCount    int
	width       int
}

// NewStatusBarModel creates a new status bar.
func NewStatusBarModel() StatusBarModel {
	return StatusBarModel{}
}

// SetWidth sets the status bar width.
func (m *StatusBarModel) SetWidth(w int) {
	m.width = w
}

// SetMessage sets a status message.
func (m *StatusBarModel) SetMessage(msg string, t MessageType) {
	m.message = msg
	m.messageType = t
	m.messageTime = time.Now()
}

// SetSettings sets the description of the active width settings.
func (m *StatusBarModel) SetSettings(desc string) {
	m.settings = desc
}

// SetQueryInfo updates the row count and, for database sources, the query time.
func (m *StatusBarModel) SetQueryInfo(elapsed time.Duration, rowCount int) {
	m.queryTime = elapsed
	m.rowCount = rowCount
}

// ClearExpiredMessage clears success messages after 3 seconds.
func (m *StatusBarModel) ClearExpiredMessage() {
	if m.messageType == MsgSuccess && time.Since(m.messageTime) > 3*time.Second {
		m.message = ""
	}
}

// View renders the status bar.
func (m StatusBarModel) View() string {
	left := m.settings

	if m.message != "" {
		var msgStyle lipgloss.Style
		switch m.messageType {
		case MsgError:
			msgStyle = StatusErrorStyle
		case MsgSuccess:
			msgStyle = StatusSuccessStyle
		default:
			msgStyle = StatusBarStyle
		}
		left = msgStyle.Render(m.message)
	}

	right := fmt.Sprintf("%d rows", m.rowCount)
	if m.queryTime > 0 {
		right += " in " + m.queryTime.Round(time.Millisecond).String()
	}

	w := m.width
	if w < 20 {
		w = 20
	}
	avail := w - lipgloss.Width(right) - 3
	if avail < 1 {
		avail = 1
	}
	left = ansi.Truncate(left, avail, "…")
	gap := w - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	line := left + strings.Repeat(" ", gap) + right
	return StatusBarStyle.Width(w).Render(line)
}
