package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultBaseDir returns the per-installation data directory.
func DefaultBaseDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".neural-foundry"), nil
}

// SavePath returns the save file location under the base directory.
func SavePath(baseDir string) string {
	return filepath.Join(baseDir, "save.json")
}

// MissionProgress tracks an in-flight mission. It is cleared when the
// mission completes.
type MissionProgress struct {
	MissionID   string   `json:"mission_id"`
	StartedAt   string   `json:"started_at"`
	CompletedAt *string  `json:"completed_at"`
	Checkpoints []string `json:"checkpoints"`
}

// GameState is the full persisted player record. XP only ever grows and
// MissionsCompleted never loses entries.
type GameState struct {
	PlayerName         string           `json:"player_name"`
	Tier               Tier             `json:"tier"`
	XP                 int              `json:"xp"`
	CurrentTrack       string           `json:"current_track"`
	MissionsCompleted  []string         `json:"missions_completed"`
	CurrentMission     *MissionProgress `json:"current_mission"`
	TotalModelsTrained int              `json:"total_models_trained"`
	Achievements       []string         `json:"achievements"`
	CreatedAt          string           `json:"created_at"`
}

// NewGameState returns a fresh default state.
func NewGameState() *GameState {
	return &GameState{
		PlayerName:        "Apprentice",
		Tier:              TierApprentice,
		CurrentTrack:      "default",
		MissionsCompleted: []string{},
		Achievements:      []string{},
		CreatedAt:         time.Now().UTC().Format(time.RFC3339),
	}
}

// LoadState reads the save file. Any read or decode problem falls back to a
// fresh default state; a corrupt save must never block the CLI.
func LoadState(path string) *GameState {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewGameState()
	}
	var s GameState
	if err := json.Unmarshal(data, &s); err != nil {
		return NewGameState()
	}
	if !s.Tier.IsValid() {
		return NewGameState()
	}
	if s.MissionsCompleted == nil {
		s.MissionsCompleted = []string{}
	}
	if s.Achievements == nil {
		s.Achievements = []string{}
	}
	return &s
}

// Save persists the state, writing to a temp file and renaming into place
// so a crash mid-write cannot corrupt an existing save.
func (s *GameState) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".save-*.json")
	if err != nil {
		return fmt.Errorf("create temp save: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close save: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace save: %w", err)
	}
	return nil
}

// AddXP adds a (non-negative) XP amount and recomputes the tier by walking
// the ladder one step at a time while the next tier's missions-required
// threshold is met. Returns true when the tier changed. The walk only moves
// forward; the tier never regresses.
func (s *GameState) AddXP(amount int) bool {
	s.XP += amount
	changed := false
	for {
		next, ok := NextTier(s.Tier)
		if !ok {
			break
		}
		if len(s.MissionsCompleted) < Info(next).MissionsRequired {
			break
		}
		s.Tier = next
		changed = true
	}
	return changed
}

// CompleteMission appends the mission to the completed set (set semantics)
// and awards XP. The caller is responsible for the already-completed guard;
// this method does not re-check it for XP purposes beyond the set insert.
func (s *GameState) CompleteMission(missionID string, xpReward int) bool {
	if !s.HasCompleted(missionID) {
		s.MissionsCompleted = append(s.MissionsCompleted, missionID)
	}
	tierUp := s.AddXP(xpReward)
	s.CurrentMission = nil
	return tierUp
}

// HasCompleted reports whether the mission ID is in the completed set.
func (s *GameState) HasCompleted(missionID string) bool {
	for _, id := range s.MissionsCompleted {
		if id == missionID {
			return true
		}
	}
	return false
}

// StartMission records in-flight progress for a mission. Re-playing the
// mission currently in flight keeps the original start time.
func (s *GameState) StartMission(missionID string) {
	if s.CurrentMission != nil && s.CurrentMission.MissionID == missionID {
		return
	}
	s.CurrentMission = &MissionProgress{
		MissionID:   missionID,
		StartedAt:   time.Now().UTC().Format(time.RFC3339),
		Checkpoints: []string{},
	}
}
