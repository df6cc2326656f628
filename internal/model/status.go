package model

// WorkerState represents the lifecycle state of a download worker
type WorkerState string

const (
	// WorkerStateIdle means the worker was created but not started
	WorkerStateIdle WorkerState = "Idle"

	// WorkerStateRunning means the download attempt is in progress
	WorkerStateRunning WorkerState = "Running"

	// WorkerStateCompleted means the download finished successfully
	WorkerStateCompleted WorkerState = "Completed"

	// WorkerStateFailed means the download attempt ended with an error
	WorkerStateFailed WorkerState = "Failed"
)

// String returns the string representation of WorkerState
func (ws WorkerState) String() string {
	return string(ws)
}

// IsActive returns true while the download attempt is in progress
func (ws WorkerState) IsActive() bool {
	return ws == WorkerStateRunning
}

// IsFinished returns true if the worker reached a terminal state
func (ws WorkerState) IsFinished() bool {
	return ws == WorkerStateCompleted || ws == WorkerStateFailed
}

// CanTransition reports whether moving from ws to next is a legal lifecycle step.
// Idle -> Running -> {Completed | Failed}; terminal states are final.
func (ws WorkerState) CanTransition(next WorkerState) bool {
	switch ws {
	case WorkerStateIdle:
		return next == WorkerStateRunning
	case WorkerStateRunning:
		return next == WorkerStateCompleted || next == WorkerStateFailed
	default:
		return false
	}
}
