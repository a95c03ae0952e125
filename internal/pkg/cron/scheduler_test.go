package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddJobRejectsInvalidSpec(t *testing.T) {
	s := NewScheduler(time.UTC)
	err := s.AddJob("broken", "not a cron spec", func(ctx context.Context) error { return nil })
	assert.Error(t, err)
}

func TestRunOnceIsolatesJobFailures(t *testing.T) {
	s := NewScheduler(time.UTC)

	var ran []string
	require.NoError(t, s.AddJob("failing", "0 21 * * *", func(ctx context.Context) error {
		ran = append(ran, "failing")
		return errors.New("boom")
	}))
	require.NoError(t, s.AddJob("healthy", "45 8 * * *", func(ctx context.Context) error {
		ran = append(ran, "healthy")
		return nil
	}))

	s.RunOnce(context.Background())

	// The failing job must not prevent its sibling from running.
	assert.Equal(t, []string{"failing", "healthy"}, ran)
}

func TestSchedulerStartStop(t *testing.T) {
	s := NewScheduler(time.UTC)

	var ticks atomic.Int32
	require.NoError(t, s.AddJob("tick", "@every 10ms", func(ctx context.Context) error {
		ticks.Add(1)
		return nil
	}))

	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	assert.Greater(t, ticks.Load(), int32(0))
}

func TestSchedulerUsesConfiguredLocation(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Karachi")
	require.NoError(t, err)

	s := NewScheduler(loc)
	assert.Equal(t, "Asia/Karachi", s.loc.String())
}
