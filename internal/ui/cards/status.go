package cards

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/tiles/internal/ui/styles"
)

// StatusOptions are the agent statuses, in menu order.
var StatusOptions = []string{"Available", "Unavailable", "Personal", "Emails", "Meal", "Break"}

// Status shows the agent's current status and how long it has been held.
type Status struct {
	Current string
	Since   time.Time
	now     func() time.Time
}

// NewStatus starts in Available at now(). A nil clock means time.Now.
func NewStatus(now func() time.Time) *Status {
	if now == nil {
		now = time.Now
	}
	return &Status{Current: StatusOptions[0], Since: now(), now: now}
}

func (s *Status) Render(_, title string, width int) string {
	t := styles.T()
	st := t.S()
	now := s.now()
	elapsed := max(now.Sub(s.Since), 0)

	dot := lipgloss.NewStyle().Foreground(s.color()).Render("●")
	return Header(title, width) + "\n" + lines(width,
		dot+" "+st.Title.Render(s.Current),
		st.Muted.Render("for ")+st.Accent.Render(formatElapsed(elapsed)),
		st.Subtle.Render("since "+humanize.RelTime(s.Since, now, "ago", "from now")),
	)
}

func (s *Status) color() lipgloss.Color {
	t := styles.T()
	switch s.Current {
	case "Available":
		return t.Good
	case "Unavailable":
		return t.Bad
	}
	return t.Warn
}

// formatElapsed renders d as m:ss, or h:mm:ss past the hour.
func formatElapsed(d time.Duration) string {
	total := int(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours >= 1 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
