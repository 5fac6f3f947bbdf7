package documents

// Status is the ingestion state of a document.
type Status string

const (
	// StatusProcessing is the initial state; ingestion is queued or running.
	StatusProcessing Status = "processing"
	// StatusReady means page text is stored and searchable.
	StatusReady Status = "ready"
	// StatusFailed means extraction or persistence failed.
	StatusFailed Status = "failed"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusProcessing, StatusReady, StatusFailed:
		return true
	}
	return false
}

// Terminal reports whether s can no longer change.
func (s Status) Terminal() bool {
	return s == StatusReady || s == StatusFailed
}

// CanTransition reports whether moving from s to next is allowed.
// Only processing may move, and only into a terminal state.
func (s Status) CanTransition(next Status) bool {
	return s == StatusProcessing && next.Terminal()
}
