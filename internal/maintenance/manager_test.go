// ABOUTME: Tests for the maintenance scheduler.
// ABOUTME: Uses counting fakes in place of the SQLite and KV stores.
package maintenance

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingOptimizer struct {
	calls atomic.Int32
	err   error
}

func (o *countingOptimizer) Optimize(context.Context) error {
	o.calls.Add(1)
	return o.err
}

type countingCollector struct {
	calls atomic.Int32
	err   error
}

func (c *countingCollector) RunGC() error {
	c.calls.Add(1)
	return c.err
}

func TestRunOnce(t *testing.T) {
	opt := &countingOptimizer{}
	gc := &countingCollector{}
	m := New(opt, gc)

	require.NoError(t, m.RunOnce(context.Background()))
	assert.Equal(t, int32(1), opt.calls.Load())
	assert.Equal(t, int32(1), gc.calls.Load())

	s := m.Status()
	assert.NotNil(t, s.LastRun)
	assert.Empty(t, s.LastErr)
}

func TestRunOnceJoinsErrors(t *testing.T) {
	optErr := errors.New("optimize failed")
	gcErr := errors.New("gc failed")
	opt := &countingOptimizer{err: optErr}
	gc := &countingCollector{err: gcErr}
	m := New(opt, gc)

	err := m.RunOnce(context.Background())
	assert.ErrorIs(t, err, optErr)
	assert.ErrorIs(t, err, gcErr)
	assert.Equal(t, int32(1), gc.calls.Load(), "gc runs after optimize fails")
	assert.Contains(t, m.Status().LastErr, "gc failed")
}

func TestRunOnceNilDependencies(t *testing.T) {
	m := New(nil, nil)
	assert.NoError(t, m.RunOnce(context.Background()))
}

func TestStartStop(t *testing.T) {
	m := New(&countingOptimizer{}, &countingCollector{})

	require.NoError(t, m.Start("@daily"))
	require.NoError(t, m.Start("@daily"), "second start is a no-op")

	s := m.Status()
	assert.True(t, s.Running)
	assert.Equal(t, "@daily", s.Schedule)
	require.NotNil(t, s.NextRun)
	assert.True(t, s.NextRun.After(time.Now()))

	m.Stop()
	m.Stop()
	assert.False(t, m.Status().Running)
	assert.Nil(t, m.Status().NextRun)
}

func TestStartInvalidSchedule(t *testing.T) {
	m := New(nil, nil)
	assert.Error(t, m.Start("not a schedule"))
	assert.False(t, m.Status().Running)
}

func TestScheduledRunFires(t *testing.T) {
	opt := &countingOptimizer{}
	m := New(opt, nil)

	require.NoError(t, m.Start("@every 1s"))
	defer m.Stop()

	assert.Eventually(t, func() bool { return opt.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
}
