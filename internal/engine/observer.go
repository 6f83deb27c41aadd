package engine

import "time"

// EventType represents different lifecycle phases in query processing
type EventType string

const (
	EventLexStart   EventType = "lex_start"
	EventLexEnd     EventType = "lex_end"
	EventParseStart EventType = "parse_start"
	EventParseEnd   EventType = "parse_end"
	EventPlanStart  EventType = "plan_start"
	EventPlanEnd    EventType = "plan_end"
	EventExecStart  EventType = "exec_start"
	EventExecEnd    EventType = "exec_end"
)

// Event represents a lifecycle event of one Execute or Explain call
type Event struct {
	Type      EventType
	QueryID   string    // shared by every event of one call
	Timestamp time.Time // set by the engine when the event is sent
	// Data is phase specific: the SQL text, token count, statement keyword,
	// plan metadata, node type or result message.
	Data interface{}
}

// Observer receives events at major processing phases
type Observer interface {
	OnEvent(event Event)
}
