package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/syre-ai/neural-foundry/internal/engine"
	"github.com/syre-ai/neural-foundry/internal/ui"
)

type boardModel struct {
	ctx    context.Context
	runner *engine.Runner

	width  int
	height int

	missions []engine.MissionInfo
	selected int

	lastCheck *engine.CheckResult
	lastLog   string
}

type checkedMsg struct {
	id  string
	res *engine.CheckResult
	err error
}

func newBoardModel(ctx context.Context, runner *engine.Runner) boardModel {
	return boardModel{
		ctx:      ctx,
		runner:   runner,
		missions: runner.Registry.All(),
		lastLog:  "Select a mission. c: check progress, q: quit.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) checkCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.runner.Check(m.ctx, id)
		return checkedMsg{id: id, res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case checkedMsg:
		if msg.err != nil {
			var notStarted engine.MissionNotStartedError
			if errors.As(msg.err, &notStarted) {
				m.lastLog = fmt.Sprintf("Not started yet. Run: foundry play %s", msg.id)
			} else {
				m.lastLog = "Check failed: " + msg.err.Error()
			}
			m.lastCheck = nil
			return m, nil
		}
		m.lastCheck = msg.res
		passed := 0
		for _, r := range msg.res.Results {
			if r.Passed {
				passed++
			}
		}
		m.lastLog = fmt.Sprintf("%s: %d/%d checkpoints passing", msg.id, passed, len(msg.res.Results))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.missions)-1 {
				m.selected++
			}
			return m, nil
		case "c", "enter", " ":
			if m.selected < 0 || m.selected >= len(m.missions) {
				return m, nil
			}
			id := m.missions[m.selected].ID
			m.lastLog = "Checking " + id + "…"
			return m, m.checkCmd(id)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	var b strings.Builder

	b.WriteString(ui.Heading(ui.IconWorkshop, "Mission Board"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s | XP: %d | Missions: %d\n\n",
		ui.Key.Render(string(m.runner.State.Tier)),
		m.runner.State.XP,
		len(m.runner.State.MissionsCompleted)))

	for i, info := range m.missions {
		status := ui.MissionStatusText(ui.MissionStatus(m.runner.State, info))
		line := fmt.Sprintf("%s %s  %s  %s", ui.IconMission, info.ID, info.Title, status)
		if i == m.selected {
			line = ui.SelectedRow.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.lastCheck != nil {
		b.WriteString("\n")
		b.WriteString(ui.H2.Render("Checkpoints: " + m.lastCheck.Info.Title))
		b.WriteString("\n")
		for _, r := range m.lastCheck.Results {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				ui.CheckpointMark(r.Passed), r.Checkpoint.Title, ui.Muted.Render(r.Message)))
		}
		if !m.lastCheck.AllComplete && m.lastCheck.Hint != "" {
			b.WriteString(ui.Dim.Render("  Hint: " + m.lastCheck.Hint))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(ui.Muted.Render(m.lastLog))
	b.WriteString("\n")
	b.WriteString(ui.Dim.Render("j/k: move  c: check  q: quit"))
	b.WriteString("\n")
	return b.String()
}
