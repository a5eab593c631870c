package engine

import "testing"

func TestGrantAchievementsIsIncremental(t *testing.T) {
	s := NewGameState()
	s.MissionsCompleted = []string{"m1"}
	s.TotalModelsTrained = 1

	fresh := GrantAchievements(s)
	if len(fresh) != 1 || fresh[0].ID != "first_resonance" {
		t.Fatalf("fresh=%v, want first_resonance only", fresh)
	}

	if again := GrantAchievements(s); len(again) != 0 {
		t.Fatalf("repeat grant returned %v", again)
	}

	s.MissionsCompleted = append(s.MissionsCompleted, "m2", "m3")
	s.TotalModelsTrained = 3
	fresh = GrantAchievements(s)
	ids := map[string]bool{}
	for _, a := range fresh {
		ids[a.ID] = true
	}
	if !ids["finding_rhythm"] || !ids["model_smith"] {
		t.Fatalf("fresh=%v, want finding_rhythm and model_smith", fresh)
	}
}

func TestTierAchievementsCoverEarlierTiers(t *testing.T) {
	s := NewGameState()
	s.Tier = TierArtisan

	c := NewAchievementChecker(s)
	earned := map[string]bool{}
	for _, a := range c.GetAchievements() {
		if a.Earned {
			earned[a.ID] = true
		}
	}
	if !earned["journeyman"] || !earned["artisan"] {
		t.Fatalf("artisan should hold journeyman and artisan badges: %v", earned)
	}
	if earned["master"] {
		t.Fatalf("master badge granted early")
	}
}

func TestCountEarned(t *testing.T) {
	s := NewGameState()
	c := NewAchievementChecker(s)
	if c.CountEarned() != 0 {
		t.Fatalf("fresh state earned=%d", c.CountEarned())
	}
	if c.CountTotal() != 9 {
		t.Fatalf("total=%d, want 9", c.CountTotal())
	}
}
