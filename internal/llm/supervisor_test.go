package llm

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	calls    atomic.Int64
	failures int64
}

func (p *fakePinger) Ping(context.Context) error {
	if p.calls.Add(1) <= p.failures {
		return errors.New("connection refused")
	}
	return nil
}

func TestSupervisorRecovers(t *testing.T) {
	pinger := &fakePinger{failures: 2}
	sup := NewSupervisor(pinger, 5, time.Millisecond)

	require.NoError(t, sup.Probe(context.Background()))
	assert.True(t, sup.Available())
	assert.NoError(t, sup.Err())
	assert.EqualValues(t, 3, pinger.calls.Load())
}

func TestSupervisorBoundedGiveUp(t *testing.T) {
	pinger := &fakePinger{failures: 100}
	sup := NewSupervisor(pinger, 3, time.Millisecond)

	err := sup.Probe(context.Background())
	require.Error(t, err)
	assert.False(t, sup.Available())
	assert.Error(t, sup.Err())
	// Initial attempt plus three retries, never more.
	assert.EqualValues(t, 4, pinger.calls.Load())
}

func TestSupervisorHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pinger := &fakePinger{failures: 100}
	sup := NewSupervisor(pinger, 50, 10*time.Second)

	err := sup.Probe(ctx)
	require.Error(t, err)
	assert.False(t, sup.Available())
}
