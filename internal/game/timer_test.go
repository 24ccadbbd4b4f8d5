package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedStepInterval(t *testing.T) {
	assert.Equal(t, time.Second/30, NewFixedStep(30).Interval())
	assert.Equal(t, time.Second/30, NewFixedStep(0).Interval())
	assert.Equal(t, time.Second/30, NewFixedStep(-5).Interval())

	fs := NewFixedStep(10)
	fs.SetFPS(50)
	assert.Equal(t, 20*time.Millisecond, fs.Interval())
}

func TestFixedStepWait(t *testing.T) {
	fs := NewFixedStep(100)
	ctx := context.Background()

	start := time.Now()
	require.NoError(t, fs.Wait(ctx), "first wait does not block")
	require.NoError(t, fs.Wait(ctx))
	require.NoError(t, fs.Wait(ctx))
	assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
}

func TestFixedStepWaitCancelled(t *testing.T) {
	fs := NewFixedStep(1)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, fs.Wait(ctx))

	cancel()
	assert.ErrorIs(t, fs.Wait(ctx), context.Canceled)
}
