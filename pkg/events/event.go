package events

import "time"

// Event type codes published on the in-process bus.
const (
	TypeDocumentIngested = "DOCUMENT_INGESTED"
	TypeChatAnswered     = "CHAT_ANSWERED"
	TypeSessionReset     = "SESSION_RESET"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CHAT_ANSWERED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the common implementation used by the constructors below.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewDocumentIngested reports a document committed into a session's index.
func NewDocumentIngested(sessionID, filename string, chunkCount int) Event {
	return BaseEvent{
		Type: TypeDocumentIngested,
		Data: map[string]interface{}{
			"session_id":  sessionID,
			"filename":    filename,
			"chunk_count": chunkCount,
		},
		OccurredAt: time.Now(),
	}
}

// NewChatAnswered reports a completed question/answer exchange.
func NewChatAnswered(sessionID string, sourceCount int) Event {
	return BaseEvent{
		Type: TypeChatAnswered,
		Data: map[string]interface{}{
			"session_id":   sessionID,
			"source_count": sourceCount,
		},
		OccurredAt: time.Now(),
	}
}

// NewSessionReset reports a session wiped back to its empty state.
func NewSessionReset(sessionID string) Event {
	return BaseEvent{
		Type: TypeSessionReset,
		Data: map[string]interface{}{
			"session_id": sessionID,
		},
		OccurredAt: time.Now(),
	}
}
