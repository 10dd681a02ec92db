package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerQueuesOneCommandPerArming(t *testing.T) {
	s := &scheduler{}
	s.Schedule(time.Millisecond, func() {})

	cmd := s.flush()
	require.NotNil(t, cmd)
	assert.Nil(t, s.flush(), "flush must drain the queue")

	msg, ok := cmd().(TickMsg)
	require.True(t, ok)
	assert.Equal(t, s.Generation(), msg.Gen)
}

func TestSchedulerRearmsAfterFire(t *testing.T) {
	fired := 0
	s := &scheduler{}
	s.Schedule(time.Millisecond, func() { fired++ })
	gen := s.Generation()
	s.flush()

	assert.True(t, s.handle(TickMsg{Gen: gen}))
	assert.Equal(t, 1, fired)
	require.NotNil(t, s.flush(), "plain fire re-arms the same generation")
	assert.Equal(t, gen, s.Generation())
}

func TestSchedulerDropsStaleTicks(t *testing.T) {
	fired := 0
	s := &scheduler{}
	s.Schedule(time.Millisecond, func() { fired++ })
	old := s.Generation()
	s.Reschedule(2 * time.Millisecond)
	s.flush()

	assert.False(t, s.handle(TickMsg{Gen: old}))
	assert.Equal(t, 0, fired)
	assert.Nil(t, s.flush())
}

func TestSchedulerRescheduleFromCallback(t *testing.T) {
	s := &scheduler{}
	s.Schedule(10*time.Millisecond, func() { s.Reschedule(time.Millisecond) })
	gen := s.Generation()
	s.flush()

	assert.True(t, s.handle(TickMsg{Gen: gen}))
	assert.Equal(t, gen+1, s.Generation())
	assert.Equal(t, time.Millisecond, s.Interval())

	cmd := s.flush()
	require.NotNil(t, cmd)
	msg := cmd().(TickMsg)
	assert.Equal(t, gen+1, msg.Gen)
}

func TestSchedulerCancelFromCallback(t *testing.T) {
	s := &scheduler{}
	s.Schedule(time.Millisecond, func() { s.Cancel() })
	gen := s.Generation()
	s.flush()

	assert.True(t, s.handle(TickMsg{Gen: gen}))
	assert.False(t, s.Active())
	assert.Nil(t, s.flush())
}
