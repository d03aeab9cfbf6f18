package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/swapitsneil/ai-job-tracker/internal/models"
)

// EventKind names an application lifecycle transition.
type EventKind string

const (
	ApplicationCreated       EventKind = "application.created"
	ApplicationUpdated       EventKind = "application.updated"
	ApplicationStatusChanged EventKind = "application.status_changed"
	ApplicationDeleted       EventKind = "application.deleted"
)

// Event is the payload handed to subscribers. PreviousStatus is only
// meaningful for update and status-change events.
type Event struct {
	ID             uuid.UUID                `json:"id"`
	Kind           EventKind                `json:"kind"`
	Application    models.Application       `json:"application"`
	PreviousStatus models.ApplicationStatus `json:"previous_status,omitempty"`
	OccurredAt     time.Time                `json:"occurred_at"`
}

type Handler func(ctx context.Context, event Event)

// Dispatcher invokes subscribed handlers synchronously, in registration
// order. Subscribe during startup only; Dispatch never mutates the table,
// so concurrent dispatches are safe afterwards.
type Dispatcher struct {
	handlers map[EventKind][]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: map[EventKind][]Handler{},
	}
}

func (d *Dispatcher) Subscribe(kind EventKind, handler Handler) {
	d.handlers[kind] = append(d.handlers[kind], handler)
}

// Dispatch runs every handler subscribed to the event's kind. A kind with
// no subscribers is a no-op.
func (d *Dispatcher) Dispatch(ctx context.Context, event Event) {
	for _, handler := range d.handlers[event.Kind] {
		handler(ctx, event)
	}
}

// NewEvent stamps an id and timestamp onto a lifecycle event.
func NewEvent(kind EventKind, app models.Application, previous models.ApplicationStatus) Event {
	return Event{
		ID:             uuid.New(),
		Kind:           kind,
		Application:    app,
		PreviousStatus: previous,
		OccurredAt:     time.Now(),
	}
}
