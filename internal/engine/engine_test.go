package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// stubMission is a minimal mission whose checkpoint outcomes are scripted
// per test.
type stubMission struct {
	info MissionInfo
	pass map[string]bool
}

func (m *stubMission) Info() MissionInfo { return m.info }

func (m *stubMission) Setup(workspace string) error {
	return os.MkdirAll(workspace, 0o755)
}

func (m *stubMission) Checkpoints() []Checkpoint {
	return []Checkpoint{
		{ID: "cp1", Title: "First", Hint: "do the first thing", Status: StatusAvailable},
		{ID: "cp2", Title: "Second", Hint: "do the second thing", Status: StatusLocked},
	}
}

func (m *stubMission) ValidateCheckpoint(workspace, checkpointID string) (bool, string) {
	if m.pass[checkpointID] {
		return true, "ok"
	}
	return false, "still failing"
}

func (m *stubMission) Instructions() string { return "# " + m.info.Title }

func newTestRunner(t *testing.T, missions ...*stubMission) *Runner {
	t.Helper()
	dir := t.TempDir()

	reg := NewRegistry()
	for _, m := range missions {
		m := m
		reg.Register(m.info, func() Mission { return m })
	}
	return NewRunner(reg, NewGameState(), SavePath(dir), filepath.Join(dir, "workspace"))
}

func stub(id string, xp int, passAll bool) *stubMission {
	m := &stubMission{
		info: MissionInfo{ID: id, Title: id, Tier: TierApprentice, XPReward: xp},
		pass: map[string]bool{},
	}
	if passAll {
		m.pass["cp1"] = true
		m.pass["cp2"] = true
	}
	return m
}

func TestStartUnknownMission(t *testing.T) {
	r := newTestRunner(t)
	_, err := r.Start(context.Background(), "nope")
	var notFound MissionNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err=%v, want MissionNotFoundError", err)
	}
}

func TestCheckBeforeStart(t *testing.T) {
	r := newTestRunner(t, stub("m1", 100, true))
	_, err := r.Check(context.Background(), "m1")
	var notStarted MissionNotStartedError
	if !errors.As(err, &notStarted) {
		t.Fatalf("err=%v, want MissionNotStartedError", err)
	}
	if !strings.Contains(err.Error(), "foundry play m1") {
		t.Fatalf("error should point at play command, got %q", err.Error())
	}
}

func TestStartPersistsProgress(t *testing.T) {
	ctx := context.Background()
	r := newTestRunner(t, stub("m1", 100, false))

	res, err := r.Start(ctx, "m1")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if res.Workspace != r.Workspace("m1") {
		t.Fatalf("workspace=%q, want %q", res.Workspace, r.Workspace("m1"))
	}
	if r.State.CurrentMission == nil || r.State.CurrentMission.MissionID != "m1" {
		t.Fatalf("current mission not recorded: %+v", r.State.CurrentMission)
	}

	reloaded := LoadState(r.SavePath)
	if reloaded.CurrentMission == nil || reloaded.CurrentMission.MissionID != "m1" {
		t.Fatalf("save did not persist current mission: %+v", reloaded.CurrentMission)
	}
}

func TestCheckReportsFailuresAndHint(t *testing.T) {
	ctx := context.Background()
	m := stub("m1", 100, false)
	m.pass["cp1"] = true
	r := newTestRunner(t, m)

	if _, err := r.Start(ctx, "m1"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	res, err := r.Check(ctx, "m1")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if res.AllComplete {
		t.Fatalf("expected incomplete mission")
	}
	if !res.Results[0].Passed || res.Results[1].Passed {
		t.Fatalf("pass pattern wrong: %+v", res.Results)
	}
	if res.Hint != "do the second thing" {
		t.Fatalf("hint=%q, want second checkpoint's hint", res.Hint)
	}
}

func TestCompleteRejectsIncompleteWithoutMutatingState(t *testing.T) {
	ctx := context.Background()
	r := newTestRunner(t, stub("m1", 100, false))

	if _, err := r.Start(ctx, "m1"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	_, err := r.Complete(ctx, "m1")
	var incomplete MissionIncompleteError
	if !errors.As(err, &incomplete) {
		t.Fatalf("err=%v, want MissionIncompleteError", err)
	}
	if incomplete.Checkpoint != "First" {
		t.Fatalf("failing checkpoint=%q, want First", incomplete.Checkpoint)
	}
	if r.State.XP != 0 || len(r.State.MissionsCompleted) != 0 {
		t.Fatalf("state mutated on failed completion: xp=%d completed=%v",
			r.State.XP, r.State.MissionsCompleted)
	}
}

func TestCompleteAwardsXPOnce(t *testing.T) {
	ctx := context.Background()
	r := newTestRunner(t, stub("m1", 100, true))

	if _, err := r.Start(ctx, "m1"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	res, err := r.Complete(ctx, "m1")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if res.AlreadyCompleted {
		t.Fatalf("first completion flagged AlreadyCompleted")
	}
	if res.XPAwarded != 100 || res.TotalXP != 100 {
		t.Fatalf("xp awarded=%d total=%d, want 100/100", res.XPAwarded, res.TotalXP)
	}
	if r.State.CurrentMission != nil {
		t.Fatalf("current mission should be cleared after completion")
	}
	if r.State.TotalModelsTrained != 1 {
		t.Fatalf("models trained=%d, want 1", r.State.TotalModelsTrained)
	}

	again, err := r.Complete(ctx, "m1")
	if err != nil {
		t.Fatalf("second Complete: %v", err)
	}
	if !again.AlreadyCompleted {
		t.Fatalf("second completion should report AlreadyCompleted")
	}
	if r.State.XP != 100 {
		t.Fatalf("xp=%d after repeat completion, want 100", r.State.XP)
	}
}

func TestTierAdvancesAtFiveMissions(t *testing.T) {
	ctx := context.Background()
	missions := make([]*stubMission, 0, 5)
	for i := 1; i <= 5; i++ {
		missions = append(missions, stub(fmt.Sprintf("m%d", i), 100, true))
	}
	r := newTestRunner(t, missions...)

	for i, m := range missions {
		if _, err := r.Start(ctx, m.info.ID); err != nil {
			t.Fatalf("Start %s: %v", m.info.ID, err)
		}
		res, err := r.Complete(ctx, m.info.ID)
		if err != nil {
			t.Fatalf("Complete %s: %v", m.info.ID, err)
		}
		if i < 4 && res.TierUp {
			t.Fatalf("tier up after %d missions", i+1)
		}
		if i == 4 {
			if !res.TierUp {
				t.Fatalf("expected tier up on fifth completion")
			}
			if res.TierBefore != TierApprentice || res.TierAfter != TierJourneyman {
				t.Fatalf("tier %s -> %s, want Apprentice -> Journeyman",
					res.TierBefore, res.TierAfter)
			}
		}
	}
}
