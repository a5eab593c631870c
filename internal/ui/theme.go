package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Foundry theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconMission  = "🗺️"
	IconSparkle  = "✨"
	IconDone     = "✅"
	IconPending  = "○"
	IconTrophy   = "🏆"
	IconBolt     = "⚡"
	IconInfo     = "ℹ️"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconScroll   = "📜"
	IconHammer   = "🔨"
	IconTierUp   = "🎖️"
	IconWorkshop = "🏭"
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
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	GoodPanel   = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cGood).Padding(0, 1)
	AccentPanel = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cAccent).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeTierUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("TIER UP")
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

// MissionStatusText styles a mission's lifecycle status.
func MissionStatusText(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "complete":
		return Good.Render("✓ Complete")
	case "available":
		return Warn.Render("Available")
	case "in progress":
		return H2.Render("In progress")
	default:
		return Muted.Render(status)
	}
}

// CheckpointMark renders the pass/fail column for a checkpoint row.
func CheckpointMark(passed bool) string {
	if passed {
		return Good.Render("✓")
	}
	return Warn.Render(IconPending)
}
