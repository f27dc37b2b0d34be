// Package events publishes domain events of the ledger to other systems.
package events

import (
	"context"
	"encoding/json"
	"time"
)

const (
	TypeMonthClosed  = "month.closed"
	TypeDataImported = "data.imported"
)

// Event is a domain event. Data is serialized as JSON.
type Event struct {
	Type string    `json:"type"`
	Time time.Time `json:"time"`
	Data any       `json:"data"`
}

// New creates an event for the current time.
func New(typ string, data any) Event {
	return Event{
		Type: typ,
		Time: time.Now().UTC(),
		Data: data,
	}
}

// JSON returns the JSON encoding of the event.
func (e Event) JSON() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher sends events to a broker.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// Nop discards all events. It is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error {
	return nil
}

func (Nop) Close() error {
	return nil
}
