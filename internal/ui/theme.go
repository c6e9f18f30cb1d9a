package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"missiontracker/internal/engine"
)

// Mission tracker theme (CLI + TUI).

const (
	IconDaily   = "☀️"
	IconWeekly  = "📅"
	IconEvent   = "🎪"
	IconOther   = "📌"
	IconDone    = "✅"
	IconTodo    = "⬜"
	IconLocked  = "🔒"
	IconKey     = "🗝️"
	IconRuins   = "🏰"
	IconClock   = "⏰"
	IconUndo    = "↩️"
	IconReset   = "🔁"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconSparkle = "✨"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	barFilled = lipgloss.NewStyle().Foreground(cGood)
	barEmpty  = lipgloss.NewStyle().Foreground(cMuted)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func Check(done bool) string {
	if done {
		return IconDone
	}
	return IconTodo
}

// CategoryIcon picks the section icon; events get their own regardless of category.
func CategoryIcon(m engine.Mission) string {
	if m.Type == engine.MissionTypeEvent {
		return IconEvent
	}
	switch m.Category {
	case engine.CategoryDaily:
		return IconDaily
	case engine.CategoryWeekly:
		return IconWeekly
	default:
		return IconOther
	}
}

func CategoryTitle(c engine.Category) string {
	switch c {
	case engine.CategoryDaily:
		return IconDaily + " Daily"
	case engine.CategoryWeekly:
		return IconWeekly + " Weekly"
	default:
		return IconOther + " Other"
	}
}

// ProgressBar renders p as a fixed-width bar followed by "done/total (pct%)".
func ProgressBar(p engine.Progress, width int) string {
	if width < 3 {
		width = 3
	}
	filled := 0
	if p.Total > 0 {
		filled = p.Done * width / p.Total
	}
	if filled > width {
		filled = width
	}
	bar := barFilled.Render(strings.Repeat("█", filled)) + barEmpty.Render(strings.Repeat("░", width-filled))
	label := fmt.Sprintf("%d/%d (%d%%)", p.Done, p.Total, p.Percent())
	if p.Total > 0 && p.Done == p.Total {
		return bar + " " + Good.Render(label)
	}
	return bar + " " + Muted.Render(label)
}

// Gauge renders a bounded counter like "●●●○○○ 3/6".
func Gauge(v, max int) string {
	if v < 0 {
		v = 0
	}
	if v > max {
		v = max
	}
	s := Gold.Render(strings.Repeat("●", v)) + Muted.Render(strings.Repeat("○", max-v))
	return fmt.Sprintf("%s %d/%d", s, v, max)
}

// Countdown formats d as "1d 02:03:04", or "02:03:04" under a day.
func Countdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d.Seconds())
	days := total / 86400
	h := (total % 86400) / 3600
	m := (total % 3600) / 60
	s := total % 60
	if days > 0 {
		return fmt.Sprintf("%dd %02d:%02d:%02d", days, h, m, s)
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
