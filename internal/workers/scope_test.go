package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope_Go_BeforeStart(t *testing.T) {
	s := NewScope()

	ran := s.Go(func(context.Context) { t.Error("fn must not run") })
	assert.False(t, ran)
	assert.Error(t, s.Context().Err())
}

func TestScope_Go_RunsAndStopWaits(t *testing.T) {
	s := NewScope()
	s.Start(context.Background())

	var finished atomic.Bool
	ok := s.Go(func(ctx context.Context) {
		<-ctx.Done()
		time.Sleep(5 * time.Millisecond)
		finished.Store(true)
	})
	require.True(t, ok)

	s.Stop()
	assert.True(t, finished.Load(), "Stop должен дождаться горутины")
	assert.Error(t, s.Context().Err())
}

func TestScope_Go_AfterStop(t *testing.T) {
	s := NewScope()
	s.Start(context.Background())
	s.Stop()

	assert.False(t, s.Go(func(context.Context) {}))
}

func TestScope_Stop_Twice(t *testing.T) {
	s := NewScope()
	s.Start(context.Background())

	assert.NotPanics(t, func() {
		s.Stop()
		s.Stop()
	})
}

func TestScope_Start_Restart(t *testing.T) {
	s := NewScope()
	s.Start(context.Background())
	first := s.Context()

	// повторный Start на работающем scope ничего не меняет
	s.Start(context.Background())
	assert.Equal(t, first, s.Context())

	s.Stop()
	s.Start(context.Background())
	assert.NoError(t, s.Context().Err())
	s.Stop()
}

func TestScope_ParentCancel(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	s := NewScope()
	s.Start(parent)

	cancel()
	assert.Eventually(t, func() bool { return s.Context().Err() != nil }, time.Second, time.Millisecond)
	assert.False(t, s.Go(func(context.Context) {}))
}

func TestScope_ImplementsWorker(t *testing.T) {
	var _ Worker = NewScope()
}
