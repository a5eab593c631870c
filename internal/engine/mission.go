package engine

// CheckpointStatus tracks where a checkpoint stands within one command
// invocation. Status is never persisted; every check re-derives it from the
// workspace contents.
type CheckpointStatus string

const (
	StatusLocked    CheckpointStatus = "locked"
	StatusAvailable CheckpointStatus = "available"
	StatusCompleted CheckpointStatus = "completed"
)

// Checkpoint is one verifiable sub-objective within a mission.
type Checkpoint struct {
	ID          string
	Title       string
	Description string
	Hint        string
	Status      CheckpointStatus
}

// MissionInfo is the immutable descriptor for a registered mission.
type MissionInfo struct {
	ID          string
	Title       string
	Tier        Tier
	Track       string
	Description string
	Story       string
	XPReward    int
	Skills      []string
	TrackSkills []string
}

// Mission is the capability surface every mission variant implements.
//
// Setup materializes the workspace and must be safe to re-run over an
// existing directory without destroying user work. ValidateCheckpoint must
// be a pure function of the workspace contents: it only reads files and
// returns the same (ok, message) pair for the same bytes on disk.
type Mission interface {
	Info() MissionInfo
	Setup(workspace string) error
	Checkpoints() []Checkpoint
	ValidateCheckpoint(workspace, checkpointID string) (bool, string)
	Instructions() string
}

// MissionFactory builds a fresh mission instance per CLI invocation.
type MissionFactory func() Mission

// CurrentCheckpoint returns the first checkpoint in sequence order that is
// not completed, or nil when all are done. Order in the slice is the
// mission's declared order.
func CurrentCheckpoint(cps []Checkpoint) *Checkpoint {
	for i := range cps {
		if cps[i].Status != StatusCompleted {
			return &cps[i]
		}
	}
	return nil
}

// AllComplete reports whether every checkpoint is completed.
func AllComplete(cps []Checkpoint) bool {
	for i := range cps {
		if cps[i].Status != StatusCompleted {
			return false
		}
	}
	return true
}
