package engine

// Achievement is a badge derived from the player's progress.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// AchievementChecker computes earned status from a GameState snapshot.
type AchievementChecker struct {
	state *GameState
}

func NewAchievementChecker(state *GameState) *AchievementChecker {
	return &AchievementChecker{state: state}
}

// GetAchievements returns all achievements with their earned status.
func (c *AchievementChecker) GetAchievements() []Achievement {
	return []Achievement{
		c.missionCountAchievement("first_resonance", "First Resonance", "Complete your first mission", "✨", 1),
		c.missionCountAchievement("finding_rhythm", "Finding the Rhythm", "Complete 3 missions", "🎵", 3),
		c.missionCountAchievement("track_runner", "Track Runner", "Complete 5 missions", "🏃", 5),
		c.missionCountAchievement("relentless", "Relentless", "Complete 12 missions", "🔥", 12),
		c.tierAchievement("journeyman", "Journeyman", "Reach the Journeyman tier", "🛠️", TierJourneyman),
		c.tierAchievement("artisan", "Artisan", "Reach the Artisan tier", "⚒️", TierArtisan),
		c.tierAchievement("master", "Master of the Foundry", "Reach the Master tier", "🏆", TierMaster),
		c.modelsAchievement("model_smith", "Model Smith", "Train 3 models", "🧠", 3),
		c.modelsAchievement("model_forge", "Model Forge", "Train 10 models", "⚙️", 10),
	}
}

// CountEarned returns how many achievements have been earned.
func (c *AchievementChecker) CountEarned() int {
	count := 0
	for _, a := range c.GetAchievements() {
		if a.Earned {
			count++
		}
	}
	return count
}

// CountTotal returns the total number of achievements.
func (c *AchievementChecker) CountTotal() int {
	return len(c.GetAchievements())
}

func (c *AchievementChecker) missionCountAchievement(id, name, desc, icon string, count int) Achievement {
	earned := len(c.state.MissionsCompleted) >= count
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) tierAchievement(id, name, desc, icon string, tier Tier) Achievement {
	earned := tierIndex(c.state.Tier) >= tierIndex(tier)
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) modelsAchievement(id, name, desc, icon string, count int) Achievement {
	earned := c.state.TotalModelsTrained >= count
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func tierIndex(t Tier) int {
	for i, lt := range Ladder {
		if lt == t {
			return i
		}
	}
	return 0
}

// GrantAchievements records any newly earned achievement IDs on the state
// and returns them, newest grants only.
func GrantAchievements(state *GameState) []Achievement {
	checker := NewAchievementChecker(state)
	granted := map[string]bool{}
	for _, id := range state.Achievements {
		granted[id] = true
	}

	var fresh []Achievement
	for _, a := range checker.GetAchievements() {
		if a.Earned && !granted[a.ID] {
			state.Achievements = append(state.Achievements, a.ID)
			fresh = append(fresh, a)
		}
	}
	return fresh
}
