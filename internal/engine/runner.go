package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/syre-ai/neural-foundry/internal/journal"
)

// Runner orchestrates the mission lifecycle: registry lookup, workspace
// setup, checkpoint validation and completion rewards. It translates
// outcomes into plain result structs for the presentation layer.
//
// Mission state is derived, never stored: workspace directory absent means
// not started, all checkpoints passing means eligible for completion, and
// the persisted completed set decides "already completed".
type Runner struct {
	Registry      *Registry
	State         *GameState
	SavePath      string
	WorkspaceBase string
	Journal       *journal.Journal
	Log           *zap.Logger
}

func NewRunner(reg *Registry, state *GameState, savePath, workspaceBase string) *Runner {
	return &Runner{
		Registry:      reg,
		State:         state,
		SavePath:      savePath,
		WorkspaceBase: workspaceBase,
		Log:           zap.NewNop(),
	}
}

// Workspace returns the workspace directory for a mission.
func (r *Runner) Workspace(missionID string) string {
	return filepath.Join(r.WorkspaceBase, missionID)
}

// StartResult is returned by Start for rendering.
type StartResult struct {
	Info         MissionInfo
	Workspace    string
	Instructions string
}

// Start sets up a mission workspace and returns its briefing. Setup is
// re-entrant: re-playing a started mission refreshes generated data without
// touching user-created files.
func (r *Runner) Start(ctx context.Context, missionID string) (*StartResult, error) {
	factory := r.Registry.Get(missionID)
	if factory == nil {
		return nil, MissionNotFoundError{ID: missionID}
	}
	mission := factory()
	workspace := r.Workspace(missionID)

	if err := mission.Setup(workspace); err != nil {
		return nil, err
	}
	r.Log.Info("mission started", zap.String("mission", missionID), zap.String("workspace", workspace))

	r.State.StartMission(missionID)
	if err := r.State.Save(r.SavePath); err != nil {
		return nil, err
	}
	r.record(ctx, missionID, journal.KindStarted, 0, "workspace ready")

	return &StartResult{
		Info:         mission.Info(),
		Workspace:    workspace,
		Instructions: mission.Instructions(),
	}, nil
}

// CheckpointResult is the outcome of validating one checkpoint.
type CheckpointResult struct {
	Checkpoint Checkpoint
	Passed     bool
	Message    string
}

// CheckResult is returned by Check for rendering.
type CheckResult struct {
	Info        MissionInfo
	Results     []CheckpointResult
	AllComplete bool
	// Hint is the current checkpoint's hint when the mission is incomplete.
	Hint string
}

// Check validates every checkpoint in order against the current workspace
// contents. Validation failures are collected, not fatal; a later
// checkpoint can pass while an earlier one fails.
func (r *Runner) Check(ctx context.Context, missionID string) (*CheckResult, error) {
	mission, _, err := r.startedMission(missionID)
	if err != nil {
		return nil, err
	}
	workspace := r.Workspace(missionID)

	cps := mission.Checkpoints()
	results := make([]CheckpointResult, 0, len(cps))
	passed := 0
	for i := range cps {
		ok, msg := mission.ValidateCheckpoint(workspace, cps[i].ID)
		if ok {
			cps[i].Status = StatusCompleted
			passed++
		}
		results = append(results, CheckpointResult{Checkpoint: cps[i], Passed: ok, Message: msg})
	}

	res := &CheckResult{
		Info:        mission.Info(),
		Results:     results,
		AllComplete: AllComplete(cps),
	}
	if current := CurrentCheckpoint(cps); current != nil {
		res.Hint = current.Hint
	}
	r.Log.Debug("mission checked",
		zap.String("mission", missionID),
		zap.Int("passed", passed),
		zap.Int("total", len(cps)))
	r.record(ctx, missionID, journal.KindChecked, 0, checkDetail(passed, len(cps)))
	return res, nil
}

// CompleteResult is returned by Complete for rendering.
type CompleteResult struct {
	Info             MissionInfo
	AlreadyCompleted bool
	XPAwarded        int
	TotalXP          int
	TierBefore       Tier
	TierAfter        Tier
	TierUp           bool
	NewAchievements  []Achievement
}

// Complete re-validates every checkpoint (it does not trust prior Check
// calls), then awards XP, advances the tier if due and persists state.
// Completing an already-completed mission is a no-op reported via
// AlreadyCompleted, never a double XP award.
func (r *Runner) Complete(ctx context.Context, missionID string) (*CompleteResult, error) {
	mission, _, err := r.startedMission(missionID)
	if err != nil {
		return nil, err
	}
	workspace := r.Workspace(missionID)
	info := mission.Info()

	for _, cp := range mission.Checkpoints() {
		ok, msg := mission.ValidateCheckpoint(workspace, cp.ID)
		if !ok {
			return nil, MissionIncompleteError{ID: missionID, Checkpoint: cp.Title, Message: msg}
		}
	}

	if r.State.HasCompleted(missionID) {
		return &CompleteResult{
			Info:             info,
			AlreadyCompleted: true,
			TotalXP:          r.State.XP,
			TierBefore:       r.State.Tier,
			TierAfter:        r.State.Tier,
		}, nil
	}

	tierBefore := r.State.Tier
	tierUp := r.State.CompleteMission(missionID, info.XPReward)
	r.State.TotalModelsTrained++
	newAchievements := GrantAchievements(r.State)
	if err := r.State.Save(r.SavePath); err != nil {
		return nil, err
	}
	r.Log.Info("mission completed",
		zap.String("mission", missionID),
		zap.Int("xp", info.XPReward),
		zap.Bool("tier_up", tierUp))
	r.record(ctx, missionID, journal.KindCompleted, info.XPReward, string(r.State.Tier))

	return &CompleteResult{
		Info:            info,
		XPAwarded:       info.XPReward,
		TotalXP:         r.State.XP,
		TierBefore:      tierBefore,
		TierAfter:       r.State.Tier,
		TierUp:          tierUp,
		NewAchievements: newAchievements,
	}, nil
}

// startedMission resolves a mission that has a workspace on disk.
func (r *Runner) startedMission(missionID string) (Mission, string, error) {
	factory := r.Registry.Get(missionID)
	if factory == nil {
		return nil, "", MissionNotFoundError{ID: missionID}
	}
	workspace := r.Workspace(missionID)
	if _, err := os.Stat(workspace); err != nil {
		return nil, "", MissionNotStartedError{ID: missionID}
	}
	return factory(), workspace, nil
}

func (r *Runner) record(ctx context.Context, missionID, kind string, xp int, detail string) {
	if r.Journal == nil {
		return
	}
	if _, err := r.Journal.Append(ctx, missionID, kind, xp, detail); err != nil {
		r.Log.Warn("journal append failed", zap.String("mission", missionID), zap.Error(err))
	}
}

func checkDetail(passed, total int) string {
	return fmt.Sprintf("%d/%d checkpoints passing", passed, total)
}
