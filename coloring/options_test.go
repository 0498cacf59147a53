package coloring_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromatic/coloring"
)

// stepClock advances by step on every call.
func stepClock(step time.Duration) func() time.Time {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}

func TestWithClock_Elapsed(t *testing.T) {
	gr, err := coloring.NewGreedy(triangle(t), coloring.OrderNatural, coloring.WithClock(stepClock(time.Second)))
	require.NoError(t, err)
	_, err = gr.Color()
	require.NoError(t, err)
	assert.Equal(t, time.Second, gr.Elapsed())

	ex, err := coloring.NewExhaustive(triangle(t), coloring.WithClock(stepClock(time.Millisecond)))
	require.NoError(t, err)
	_, err = ex.Color()
	require.NoError(t, err)
	assert.Equal(t, time.Millisecond, ex.Elapsed())
}

func TestWithLogger_Debug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	wp, err := coloring.NewWelshPowell(pathACDB(t), coloring.WithLogger(logger))
	require.NoError(t, err)
	_, err = wp.Color()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "coloring complete")
	assert.Contains(t, out, "algorithm=welsh-powell")
	assert.Contains(t, out, "colors=2")
}

func TestNilOptionsIgnored(t *testing.T) {
	gr, err := coloring.NewGreedy(triangle(t), coloring.OrderNatural, coloring.WithLogger(nil), coloring.WithClock(nil))
	require.NoError(t, err)
	_, err = gr.Color()
	require.NoError(t, err)
	assert.True(t, gr.IsValid())
}
