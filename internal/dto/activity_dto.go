package dto

import "time"

// ActivityMessage is the wire shape of events on the in-process activity
// topic, shared by the publisher and the consumer.
type ActivityMessage struct {
	Type       string                 `json:"type"`
	Payload    map[string]interface{} `json:"payload"`
	OccurredAt time.Time              `json:"occurred_at"`
}
