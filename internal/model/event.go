package model

// EventKind identifies a worker notification
type EventKind int

const (
	EventProgress EventKind = iota
	EventFinished
	EventFailed
)

// String returns a short name for logs
func (k EventKind) String() string {
	switch k {
	case EventProgress:
		return "progress"
	case EventFinished:
		return "finished"
	case EventFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event is a single worker -> UI notification
type Event struct {
	Kind    EventKind
	Percent int    // set for EventProgress, 0..100
	Message string // set for EventFailed
}

// ProgressEvent creates a progress notification
func ProgressEvent(percent int) Event {
	return Event{Kind: EventProgress, Percent: percent}
}

// FinishedEvent creates a completion notification
func FinishedEvent() Event {
	return Event{Kind: EventFinished}
}

// FailedEvent creates an error notification carrying the error text
func FailedEvent(message string) Event {
	return Event{Kind: EventFailed, Message: message}
}

// IsTerminal reports whether no further events follow this one
func (e Event) IsTerminal() bool {
	return e.Kind == EventFinished || e.Kind == EventFailed
}
