package events

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swapitsneil/ai-job-tracker/internal/models"
)

func TestDispatcher_InvokesHandlersInRegistrationOrder(t *testing.T) {
	dispatcher := NewDispatcher()

	var calls []string
	dispatcher.Subscribe(ApplicationCreated, func(_ context.Context, _ Event) {
		calls = append(calls, "first")
	})
	dispatcher.Subscribe(ApplicationCreated, func(_ context.Context, _ Event) {
		calls = append(calls, "second")
	})

	event := NewEvent(ApplicationCreated, models.Application{ID: 7}, "")
	dispatcher.Dispatch(context.Background(), event)

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestDispatcher_HandlerReceivesStampedEvent(t *testing.T) {
	dispatcher := NewDispatcher()

	var got Event
	dispatcher.Subscribe(ApplicationStatusChanged, func(_ context.Context, event Event) {
		got = event
	})

	app := models.Application{ID: 3, Company: "Acme", Status: models.StatusOffer}
	dispatcher.Dispatch(context.Background(), NewEvent(ApplicationStatusChanged, app, models.StatusInterview))

	assert.Equal(t, ApplicationStatusChanged, got.Kind)
	assert.Equal(t, app, got.Application)
	assert.Equal(t, models.StatusInterview, got.PreviousStatus)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.WithinDuration(t, time.Now(), got.OccurredAt, time.Minute)
}

func TestDispatcher_UnsubscribedKindIsNoOp(t *testing.T) {
	dispatcher := NewDispatcher()

	called := false
	dispatcher.Subscribe(ApplicationCreated, func(_ context.Context, _ Event) {
		called = true
	})

	require.NotPanics(t, func() {
		dispatcher.Dispatch(context.Background(), NewEvent(ApplicationDeleted, models.Application{}, ""))
	})
	assert.False(t, called)
}

func TestDispatcher_HandlersAreScopedToKind(t *testing.T) {
	dispatcher := NewDispatcher()

	counts := map[EventKind]int{}
	for _, kind := range []EventKind{ApplicationCreated, ApplicationUpdated, ApplicationDeleted} {
		dispatcher.Subscribe(kind, func(_ context.Context, event Event) {
			counts[event.Kind]++
		})
	}

	dispatcher.Dispatch(context.Background(), NewEvent(ApplicationCreated, models.Application{}, ""))
	dispatcher.Dispatch(context.Background(), NewEvent(ApplicationCreated, models.Application{}, ""))
	dispatcher.Dispatch(context.Background(), NewEvent(ApplicationUpdated, models.Application{}, ""))

	assert.Equal(t, 2, counts[ApplicationCreated])
	assert.Equal(t, 1, counts[ApplicationUpdated])
	assert.Zero(t, counts[ApplicationDeleted])
}
