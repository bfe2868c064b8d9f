package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ClockInterval is how often live cards are redrawn.
const ClockInterval = time.Second

// ClockTickMsg redraws time-dependent cards such as the status timer.
type ClockTickMsg time.Time

// ClockTickCmd schedules the next clock tick.
func ClockTickCmd() tea.Cmd {
	return tea.Tick(ClockInterval, func(t time.Time) tea.Msg {
		return ClockTickMsg(t)
	})
}

// Notification represents a temporary message shown in the header.
type Notification struct {
	ID      int64
	Message string
}

// NotificationClearMsg is sent to clear a specific notification after a delay.
type NotificationClearMsg struct {
	ID int64
}

// NotificationDuration is how long notifications are displayed.
const NotificationDuration = 3 * time.Second

// NotificationClearCmd returns a command that clears the notification after a delay.
func NotificationClearCmd(id int64) tea.Cmd {
	return tea.Tick(NotificationDuration, func(time.Time) tea.Msg {
		return NotificationClearMsg{ID: id}
	})
}

// notify replaces the current notification and schedules its removal.
func (m *Model) notify(message string) tea.Cmd {
	m.nextNotificationID++
	m.Notification = &Notification{ID: m.nextNotificationID, Message: message}
	return NotificationClearCmd(m.nextNotificationID)
}
