package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func completedN(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("m%02d", i+1)
	}
	return out
}

func TestAddXPWalksTierLadder(t *testing.T) {
	cases := []struct {
		missions int
		want     Tier
	}{
		{0, TierApprentice},
		{4, TierApprentice},
		{5, TierJourneyman},
		{11, TierJourneyman},
		{12, TierArtisan},
		{19, TierArtisan},
		{20, TierMaster},
		{30, TierMaster},
	}
	for _, tc := range cases {
		s := NewGameState()
		s.MissionsCompleted = completedN(tc.missions)
		s.AddXP(10)
		if s.Tier != tc.want {
			t.Fatalf("missions=%d tier=%s, want %s", tc.missions, s.Tier, tc.want)
		}
	}
}

func TestAddXPCanJumpMultipleTiers(t *testing.T) {
	s := NewGameState()
	s.MissionsCompleted = completedN(20)
	if !s.AddXP(0) {
		t.Fatalf("expected a tier change")
	}
	if s.Tier != TierMaster {
		t.Fatalf("tier=%s, want Master in one walk", s.Tier)
	}
}

func TestAddXPNeverRegresses(t *testing.T) {
	s := NewGameState()
	s.Tier = TierArtisan
	s.MissionsCompleted = completedN(2)
	if s.AddXP(50) {
		t.Fatalf("unexpected tier change")
	}
	if s.Tier != TierArtisan {
		t.Fatalf("tier regressed to %s", s.Tier)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := SavePath(t.TempDir())
	s := NewGameState()
	s.PlayerName = "Vex"
	s.XP = 250
	s.MissionsCompleted = []string{"m01_first_resonance", "m02_signal_noise"}
	s.StartMission("m03_mappers_path")

	if err := s.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := LoadState(path)
	if got.PlayerName != "Vex" || got.XP != 250 {
		t.Fatalf("loaded %q xp=%d", got.PlayerName, got.XP)
	}
	if len(got.MissionsCompleted) != 2 {
		t.Fatalf("completed=%v", got.MissionsCompleted)
	}
	if got.CurrentMission == nil || got.CurrentMission.MissionID != "m03_mappers_path" {
		t.Fatalf("current mission=%+v", got.CurrentMission)
	}
	if got.CurrentMission.StartedAt != s.CurrentMission.StartedAt {
		t.Fatalf("start time changed across save/load")
	}
}

func TestLoadStateMissingFile(t *testing.T) {
	got := LoadState(filepath.Join(t.TempDir(), "save.json"))
	if got.Tier != TierApprentice || got.XP != 0 {
		t.Fatalf("want fresh state, got tier=%s xp=%d", got.Tier, got.XP)
	}
	if got.MissionsCompleted == nil || got.Achievements == nil {
		t.Fatalf("slices should be non-nil")
	}
}

func TestLoadStateCorruptFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := LoadState(path)
	if got.Tier != TierApprentice || got.XP != 0 {
		t.Fatalf("corrupt save should load as fresh state, got %+v", got)
	}
}

func TestLoadStateInvalidTierFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	if err := os.WriteFile(path, []byte(`{"player_name":"x","tier":"Grandmaster","xp":999}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := LoadState(path)
	if got.Tier != TierApprentice || got.XP != 0 {
		t.Fatalf("invalid tier should load as fresh state, got %+v", got)
	}
}

func TestStartMissionKeepsOriginalStartTime(t *testing.T) {
	s := NewGameState()
	s.StartMission("m1")
	first := s.CurrentMission.StartedAt
	s.StartMission("m1")
	if s.CurrentMission.StartedAt != first {
		t.Fatalf("restarting the same mission replaced its start time")
	}
	s.StartMission("m2")
	if s.CurrentMission.MissionID != "m2" {
		t.Fatalf("current mission=%q, want m2", s.CurrentMission.MissionID)
	}
}

func TestCompleteMissionSetSemantics(t *testing.T) {
	s := NewGameState()
	s.CompleteMission("m1", 100)
	s.CompleteMission("m1", 100)
	if len(s.MissionsCompleted) != 1 {
		t.Fatalf("completed=%v, want single entry", s.MissionsCompleted)
	}
	if s.XP != 200 {
		t.Fatalf("xp=%d; CompleteMission itself does not guard XP", s.XP)
	}
}
