package order

import "time"

// StageEvent is one entry in an order's append-only timeline: the moment a
// stage became current, whether it has since been completed, and any staff
// notes recorded at the transition.
type StageEvent struct {
	stage     Stage
	timestamp time.Time
	completed bool
	notes     string
}

// NewStageEvent creates a timeline entry for a stage that just became current.
func NewStageEvent(stage Stage, timestamp time.Time, notes string) (StageEvent, error) {
	if err := stage.Validate(); err != nil {
		return StageEvent{}, err
	}
	return StageEvent{
		stage:     stage,
		timestamp: timestamp,
		notes:     notes,
	}, nil
}

// RestoreStageEvent reconstructs a timeline entry from persistence,
// including its completed flag.
func RestoreStageEvent(stage Stage, timestamp time.Time, completed bool, notes string) (StageEvent, error) {
	if err := stage.Validate(); err != nil {
		return StageEvent{}, err
	}
	return StageEvent{
		stage:     stage,
		timestamp: timestamp,
		completed: completed,
		notes:     notes,
	}, nil
}

// Stage returns the catalog stage this entry records.
func (e StageEvent) Stage() Stage {
	return e.stage
}

// Timestamp returns when the stage became current.
func (e StageEvent) Timestamp() time.Time {
	return e.timestamp
}

// Completed reports whether a later stage has superseded this one.
func (e StageEvent) Completed() bool {
	return e.completed
}

// Notes returns the staff notes recorded with the transition.
func (e StageEvent) Notes() string {
	return e.notes
}

// complete returns a copy of the event flagged as superseded.
func (e StageEvent) complete() StageEvent {
	e.completed = true
	return e
}
