package ui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/syre-ai/neural-foundry/internal/engine"
	"github.com/syre-ai/neural-foundry/internal/journal"
)

var logo = Title.Render(`
 _   _                      _   _____                      _
| \ | | ___ _   _ _ __ __ _| | |  ___|__  _   _ _ __   __| |_ __ _   _
|  \| |/ _ \ | | | '__/ _` + "`" + ` | | | |_ / _ \| | | | '_ \ / _` + "`" + ` | '__| | | |
| |\  |  __/ |_| | | | (_| | | |  _| (_) | |_| | | | | (_| | |  | |_| |
|_| \_|\___|\__,_|_|  \__,_|_| |_|  \___/ \__,_|_| |_|\__,_|_|   \__, |
                                                                 |___/`)

// Welcome renders the no-subcommand screen: logo, intro panel, quick status.
func Welcome(w io.Writer, state *engine.GameState) {
	fmt.Fprintln(w, logo)
	fmt.Fprintln(w, Panel.Render(fmt.Sprintf(
		"%s\n\nMaster new skills through hands-on missions.\nProgress through tiers from Apprentice to Master.\n\n%s",
		Title.Render("Welcome, "+state.PlayerName+"!"),
		Muted.Render("Commands: status, missions, tracks, play, check, complete"),
	)))
	fmt.Fprintln(w)
	QuickStatus(w, state)
}

// QuickStatus renders the one-line progress bar shown under the welcome.
func QuickStatus(w io.Writer, state *engine.GameState) {
	line := fmt.Sprintf("%s | XP: %d | Missions: %d",
		Key.Render(string(state.Tier)), state.XP, len(state.MissionsCompleted))
	if next, ok := engine.NextTier(state.Tier); ok {
		line += Muted.Render(fmt.Sprintf(" | Next tier: %d/%d missions",
			len(state.MissionsCompleted), engine.Info(next).MissionsRequired))
	}
	if state.CurrentTrack != "" && state.CurrentTrack != "default" {
		line += Muted.Render(" | Track: " + state.CurrentTrack)
	}
	fmt.Fprintln(w, line)
}

// Status renders the detailed player status screen.
func Status(w io.Writer, state *engine.GameState) {
	fmt.Fprintln(w, Heading(IconSparkle, "Player Status"))

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendRow(table.Row{"Name", state.PlayerName})
	tw.AppendRow(table.Row{"Tier", string(state.Tier)})
	tw.AppendRow(table.Row{"XP", state.XP})
	tw.AppendRow(table.Row{"Missions Completed", len(state.MissionsCompleted)})
	tw.AppendRow(table.Row{"Models Trained", state.TotalModelsTrained})
	tw.AppendRow(table.Row{"Current Track", state.CurrentTrack})
	tw.Render()
	fmt.Fprintln(w)

	info := engine.Info(state.Tier)
	skills := ""
	for _, s := range info.Skills {
		skills += "\n  - " + s
	}
	fmt.Fprintln(w, Panel.Render(fmt.Sprintf("%s\n\n%s%s",
		H2.Render(string(state.Tier)+" Tier"),
		info.Description+"\n\n"+Good.Render("Skills:"),
		skills,
	)))

	checker := engine.NewAchievementChecker(state)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %d/%d\n", Key.Render(IconTrophy+" Achievements:"), checker.CountEarned(), checker.CountTotal())
	for _, a := range checker.GetAchievements() {
		if a.Earned {
			fmt.Fprintf(w, "  %s %s %s\n", a.Icon, Good.Render(a.Name), Muted.Render("- "+a.Description))
		}
	}
}

// MissionStatus derives the listing status for one mission.
func MissionStatus(state *engine.GameState, info engine.MissionInfo) string {
	switch {
	case state.HasCompleted(info.ID):
		return "complete"
	case state.CurrentMission != nil && state.CurrentMission.MissionID == info.ID:
		return "in progress"
	case info.Tier == state.Tier:
		return "available"
	default:
		return "locked"
	}
}

// MissionTable renders the mission listing.
func MissionTable(w io.Writer, state *engine.GameState, infos []engine.MissionInfo) {
	if len(infos) == 0 {
		fmt.Fprintln(w, Warn.Render("No missions available yet."))
		return
	}
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"ID", "Title", "Track", "Tier", "XP", "Status"})
	for _, info := range infos {
		tw.AppendRow(table.Row{
			info.ID, info.Title, info.Track, string(info.Tier), info.XPReward,
			MissionStatusText(MissionStatus(state, info)),
		})
	}
	tw.Render()
	fmt.Fprintln(w)
	fmt.Fprintln(w, Muted.Render("Start a mission with: foundry play <mission_id>"))
}

// TrackTable renders the track listing with per-track mission counts.
func TrackTable(w io.Writer, tracks []engine.TrackInfo, missionCount func(trackID string) int) {
	if len(tracks) == 0 {
		fmt.Fprintln(w, Warn.Render("No tracks registered."))
		return
	}
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"ID", "Name", "Description", "Missions"})
	for _, t := range tracks {
		tw.AppendRow(table.Row{t.ID, t.Name, t.Description, missionCount(t.ID)})
	}
	tw.Render()
}

// CheckTable renders per-checkpoint validation results.
func CheckTable(w io.Writer, res *engine.CheckResult) {
	fmt.Fprintln(w, Heading(IconMission, "Mission Progress: "+res.Info.Title))
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"", "Checkpoint", "Details"})
	for _, r := range res.Results {
		tw.AppendRow(table.Row{CheckpointMark(r.Passed), r.Checkpoint.Title, r.Message})
	}
	tw.Render()

	fmt.Fprintln(w)
	if res.AllComplete {
		fmt.Fprintln(w, GoodPanel.Render(fmt.Sprintf(
			"%s\n\nXP Earned: +%d\n\nRun %s to claim rewards.",
			Good.Render("Mission Complete!"),
			res.Info.XPReward,
			Key.Render("foundry complete "+res.Info.ID),
		)))
	} else if res.Hint != "" {
		fmt.Fprintln(w, Dim.Render("Hint: "+res.Hint))
	}
}

// CompleteBanner renders the reward panels after a successful completion.
func CompleteBanner(w io.Writer, res *engine.CompleteResult) {
	if res.AlreadyCompleted {
		fmt.Fprintln(w, Warn.Render("Mission already completed."))
		return
	}
	fmt.Fprintln(w, GoodPanel.Render(fmt.Sprintf(
		"%s\n\nXP Earned: +%d\nTotal XP: %d",
		Good.Render("Mission Complete: "+res.Info.Title),
		res.XPAwarded, res.TotalXP,
	)))
	if res.TierUp {
		fmt.Fprintln(w)
		fmt.Fprintln(w, AccentPanel.Render(fmt.Sprintf(
			"%s %s\n\nYou are now: %s",
			IconTierUp, BadgeTierUp,
			Title.Render(string(res.TierAfter)),
		)))
	}
	for _, a := range res.NewAchievements {
		fmt.Fprintf(w, "%s %s %s\n", a.Icon, Gold.Render("Achievement unlocked: "+a.Name), Muted.Render("- "+a.Description))
	}
}

// HistoryTable renders the mission event journal.
func HistoryTable(w io.Writer, events []journal.Event) {
	if len(events) == 0 {
		fmt.Fprintln(w, Muted.Render("No mission history yet."))
		return
	}
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"When", "Mission", "Event", "XP", "Detail"})
	for _, e := range events {
		xp := ""
		if e.XPAwarded > 0 {
			xp = fmt.Sprintf("+%d", e.XPAwarded)
		}
		tw.AppendRow(table.Row{e.CreatedAt.Local().Format("2006-01-02 15:04"), e.MissionID, e.Kind, xp, e.Detail})
	}
	tw.Render()
}
