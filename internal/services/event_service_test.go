package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/isdelr/expense-tracker-be/internal/database/dbtest"
	"github.com/isdelr/expense-tracker-be/internal/models"
	"github.com/isdelr/expense-tracker-be/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	published []models.Event
	err       error
}

func (p *recordingPublisher) Publish(_ context.Context, e models.Event) error {
	p.published = append(p.published, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func newEventFixture(t *testing.T, publisher *recordingPublisher) (*EventService, string) {
	db := dbtest.New(t)
	// Keep a nil *recordingPublisher out of the interface.
	svc := NewEventService(store.NewEventStore(db), nil)
	if publisher != nil {
		svc = NewEventService(store.NewEventStore(db), publisher)
	}
	// Inserted directly so the activity log starts empty.
	user := models.User{
		ID:           uuid.New().String(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "x",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, store.NewUserStore(db).Create(context.Background(), user))
	return svc, user.ID
}

func TestEventServicePublishes(t *testing.T) {
	pub := &recordingPublisher{}
	svc, userID := newEventFixture(t, pub)

	svc.Record(context.Background(), userID, "expense.create", LevelInfo, "hello")

	require.Len(t, pub.published, 1)
	assert.Equal(t, "expense.create", pub.published[0].Type)
	assert.Equal(t, userID, pub.published[0].UserID)
}

func TestEventServiceSwallowsPublishErrors(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc, userID := newEventFixture(t, pub)

	svc.Record(context.Background(), userID, "user.login", LevelInfo, "hi")

	events, err := svc.Recent(context.Background(), userID, 0)
	require.NoError(t, err)
	require.Len(t, events, 1, "event is stored even when publishing fails")
	assert.Equal(t, "user.login", events[0].Type)
}

func TestEventServiceRecentLimits(t *testing.T) {
	svc, userID := newEventFixture(t, nil)
	for i := 0; i < MaxEventLimit+5; i++ {
		svc.Record(context.Background(), userID, "user.login", LevelInfo, "hi")
	}

	events, err := svc.Recent(context.Background(), userID, 0)
	require.NoError(t, err)
	assert.Len(t, events, DefaultEventLimit)

	events, err = svc.Recent(context.Background(), userID, 1000)
	require.NoError(t, err)
	assert.Len(t, events, MaxEventLimit)
}

func TestEventServicePrune(t *testing.T) {
	svc, userID := newEventFixture(t, nil)
	svc.Record(context.Background(), userID, "user.login", LevelInfo, "hi")

	removed, err := svc.Prune(context.Background(), time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 0, removed)

	removed, err = svc.Prune(context.Background(), -time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)
}
