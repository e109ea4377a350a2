package statistics

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/beggar/internal/deck"
	"github.com/lox/beggar/internal/game"
	"github.com/lox/beggar/internal/runid"
	"github.com/lox/beggar/internal/shuffle"
)

func fixedRunner(turns ...int) GameRunner {
	var mu sync.Mutex
	i := 0
	return func(int, []deck.Rank) (int, error) {
		mu.Lock()
		defer mu.Unlock()
		n := turns[i%len(turns)]
		i++
		return n, nil
	}
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestRunWithStubRunner(t *testing.T) {
	t.Parallel()
	r := NewRunner(WithGameRunner(fixedRunner(3, 7, 5)), WithSeed(1), WithLogger(quietLogger()))

	stats, err := r.Run(context.Background(), 2, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Players)
	assert.Equal(t, 3, stats.Trials)
	assert.Equal(t, 3, stats.Shortest)
	assert.Equal(t, 7, stats.Longest)
	assert.InDelta(t, 2.0, stats.StdDev, 1e-9)
	assert.InDelta(t, 5.0, stats.Average, 1e-9)
}

func TestRunShufflesEveryTrial(t *testing.T) {
	t.Parallel()
	var decks [][]deck.Rank
	record := func(_ int, cards []deck.Rank) (int, error) {
		require.NoError(t, deck.Validate(cards))
		decks = append(decks, cards)
		return 1, nil
	}

	_, err := NewRunner(WithGameRunner(record), WithSeed(9)).Run(context.Background(), 3, 4)
	require.NoError(t, err)

	require.Len(t, decks, 4)
	for i := 1; i < len(decks); i++ {
		assert.NotEqual(t, decks[0], decks[i], "trial %d reused a deck", i)
		assert.True(t, shuffle.Check(decks[0], decks[i]))
	}
}

func TestRunReproducibleWithSeed(t *testing.T) {
	t.Parallel()
	a, err := NewRunner(WithSeed(123)).Run(context.Background(), 3, 20)
	require.NoError(t, err)
	b, err := NewRunner(WithSeed(123)).Run(context.Background(), 3, 20)
	require.NoError(t, err)

	a.Elapsed, b.Elapsed = 0, 0
	assert.Equal(t, a, b)
	assert.Positive(t, a.Shortest)
	assert.LessOrEqual(t, a.Shortest, a.Longest)
}

func TestRunValidatesInput(t *testing.T) {
	t.Parallel()
	r := NewRunner(WithGameRunner(fixedRunner(1)))

	var cfgErr *game.ConfigError
	_, err := r.Run(context.Background(), 1, 10)
	assert.True(t, errors.As(err, &cfgErr))

	_, err = r.Run(context.Background(), 2, 0)
	assert.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "trial count", cfgErr.Field)
}

func TestRunPropagatesGameErrors(t *testing.T) {
	t.Parallel()
	failing := func(int, []deck.Rank) (int, error) { return 0, game.ErrTurnLimit }
	_, err := NewRunner(WithGameRunner(failing)).Run(context.Background(), 2, 5)
	assert.ErrorIs(t, err, game.ErrTurnLimit)
}

func TestRunHonoursCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewRunner(WithGameRunner(fixedRunner(1))).Run(ctx, 2, 5)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunMeasuresElapsed(t *testing.T) {
	t.Parallel()
	mClock := quartz.NewMock(t)
	tick := func(int, []deck.Rank) (int, error) {
		mClock.Advance(time.Second).MustWait(context.Background())
		return 10, nil
	}

	stats, err := NewRunner(WithGameRunner(tick), WithClock(mClock)).Run(context.Background(), 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, stats.Elapsed)
}

func TestRunRange(t *testing.T) {
	t.Parallel()
	for _, workers := range []int{1, 4} {
		r := NewRunner(WithSeed(5), WithWorkers(workers), WithLogger(quietLogger()))
		rows, err := r.RunRange(context.Background(), 2, 6, 10)
		require.NoError(t, err)
		require.Len(t, rows, 5)
		for i, row := range rows {
			assert.Equal(t, i+2, row.Players)
			assert.Equal(t, 10, row.Trials)
			assert.LessOrEqual(t, row.Shortest, row.Longest)
		}
	}
}

func TestRunRangeIndependentOfWorkers(t *testing.T) {
	t.Parallel()
	seq, err := NewRunner(WithSeed(77), WithWorkers(1)).RunRange(context.Background(), 2, 5, 15)
	require.NoError(t, err)
	par, err := NewRunner(WithSeed(77), WithWorkers(3)).RunRange(context.Background(), 2, 5, 15)
	require.NoError(t, err)

	for i := range seq {
		seq[i].Elapsed, par[i].Elapsed = 0, 0
	}
	assert.Equal(t, seq, par)
}

func TestRunRangeValidates(t *testing.T) {
	t.Parallel()
	r := NewRunner(WithGameRunner(fixedRunner(1)))
	_, err := r.RunRange(context.Background(), 5, 3, 10)
	assert.Error(t, err)
	_, err = r.RunRange(context.Background(), 2, 53, 10)
	assert.Error(t, err)
}

func TestRunStatistics(t *testing.T) {
	t.Parallel()
	stats, err := RunStatistics(4, MinTrials)
	require.NoError(t, err)
	assert.Equal(t, MinTrials, stats.Trials)
	assert.Positive(t, stats.Average)
	assert.GreaterOrEqual(t, stats.Average, float64(stats.Shortest))
	assert.LessOrEqual(t, stats.Average, float64(stats.Longest))
}

func TestWriteReport(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	rows := []GameStats{
		{Players: 2, Shortest: 30, Longest: 2000, Average: 455.123},
		{Players: 3, Shortest: 25, Longest: 1500, Average: 400},
	}
	require.NoError(t, WriteReport(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, ReportHeader, lines[0])
	assert.Equal(t, "2, 30, 2000, 455.12", lines[1])
	assert.Equal(t, "3, 25, 1500, 400.00", lines[2])
}

func TestRunnerHasRunID(t *testing.T) {
	t.Parallel()

	a := NewRunner(WithLogger(quietLogger()))
	b := NewRunner(WithLogger(quietLogger()))
	require.NoError(t, runid.Validate(a.RunID()))
	assert.NotEqual(t, a.RunID(), b.RunID())
}
