package domain

// LogStatus is the terminal state recorded for a habit on a given day.
type LogStatus string

const (
	StatusCompleted LogStatus = "completed"
	StatusSkipped   LogStatus = "skipped"
	StatusPending   LogStatus = "pending"
)

// Action is the intent recognized from an inbound reply.
type Action string

const (
	ActionNone     Action = ""
	ActionComplete Action = "complete"
	ActionPostpone Action = "postpone"
	ActionSkip     Action = "skip"
)

// MessageKind selects a message pool in the catalog.
type MessageKind string

const (
	KindSuccess MessageKind = "SUCCESS"
	KindNudge   MessageKind = "NUDGE"
	KindDelay   MessageKind = "DELAY"
	KindSkip    MessageKind = "SKIP"
)

// FrogPriority is the threshold at or above which a habit is treated as the
// user's single most important daily task ("eat the frog").
const FrogPriority = 3
