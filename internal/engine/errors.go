package engine

import "fmt"

// MissionNotFoundError indicates an unregistered mission ID.
type MissionNotFoundError struct {
	ID string
}

func (e MissionNotFoundError) Error() string {
	return fmt.Sprintf("mission not found: %s", e.ID)
}

// MissionNotStartedError indicates the mission workspace does not exist yet.
type MissionNotStartedError struct {
	ID string
}

func (e MissionNotStartedError) Error() string {
	return fmt.Sprintf("mission %s not started; run 'foundry play %s' first", e.ID, e.ID)
}

// MissionIncompleteError indicates a completion attempt while checkpoints
// are still failing. Checkpoint carries the first failing checkpoint's title
// and Message its validation diagnostic.
type MissionIncompleteError struct {
	ID         string
	Checkpoint string
	Message    string
}

func (e MissionIncompleteError) Error() string {
	return fmt.Sprintf("mission %s is not complete: %s (%s)", e.ID, e.Checkpoint, e.Message)
}
