package batch_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/batch"
	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/loader"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

// grid returns a shared 6×6 undirected grid problem from the top-left to
// the bottom-right corner.
func grid(t *testing.T) *problem.GraphProblem {
	t.Helper()
	g, err := builder.BuildGraph([]core.GraphOption{core.WithUndirected()}, nil, builder.Grid(6, 6))
	require.NoError(t, err)
	p, err := problem.FromGraph(g, builder.GridID(0, 0), builder.GridID(5, 5))
	require.NoError(t, err)
	return p
}

func TestRun_AllStrategies(t *testing.T) {
	p := grid(t)
	var jobs []batch.Job[string]
	for _, s := range []search.Strategy{search.AStar, search.UniformCost, search.BreadthFirst, search.IterativeDeepening, search.Bidirectional} {
		jobs = append(jobs, batch.Job[string]{Name: s.String(), Problem: p, Strategy: s})
	}
	fixed := uuid.New()
	jobs[0].ID = fixed

	out, err := batch.Run(jobs, batch.WithConcurrency(2))
	require.NoError(t, err)
	require.Len(t, out, len(jobs))
	assert.Equal(t, fixed, out[0].JobID)

	seen := make(map[uuid.UUID]bool)
	for i, o := range out {
		require.NoError(t, o.Err, o.Name)
		assert.Equal(t, jobs[i].Name, o.Name, "outcomes keep job order")
		assert.Equal(t, jobs[i].Strategy, o.Result.Strategy)
		assert.True(t, o.Result.Found(), o.Name)
		assert.Equal(t, 10.0, o.Result.Cost, o.Name)
		assert.NotEqual(t, uuid.Nil, o.JobID)
		assert.False(t, seen[o.JobID], "job IDs are unique")
		seen[o.JobID] = true
	}
}

func TestRun_ConcurrencyBound(t *testing.T) {
	p := grid(t)
	var inFlight, peak int32
	slow := search.WithOnExpand(func(search.ExpandEvent) {
		n := atomic.AddInt32(&inFlight, 1)
		for {
			old := atomic.LoadInt32(&peak)
			if n <= old || atomic.CompareAndSwapInt32(&peak, old, n) {
				break
			}
		}
		time.Sleep(100 * time.Microsecond)
		atomic.AddInt32(&inFlight, -1)
	})
	jobs := make([]batch.Job[string], 8)
	for i := range jobs {
		jobs[i] = batch.Job[string]{Problem: p, Strategy: search.BreadthFirst, Options: []search.Option{slow}}
	}

	_, err := batch.Run(jobs, batch.WithConcurrency(3))
	require.NoError(t, err)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(3))
}

func TestRun_ErrorsPerOutcome(t *testing.T) {
	p := grid(t)
	jobs := []batch.Job[string]{
		{Name: "ok", Problem: p, Strategy: search.AStar},
		{Name: "bad", Problem: p, Strategy: search.Strategy(99)},
		{Name: "nil", Strategy: search.AStar},
	}
	out, err := batch.Run(jobs)
	require.NoError(t, err)
	assert.NoError(t, out[0].Err)
	assert.ErrorIs(t, out[1].Err, search.ErrUnknownStrategy)
	assert.ErrorIs(t, out[2].Err, search.ErrNilProblem)
}

func TestRun_FailFast(t *testing.T) {
	p := grid(t)
	jobs := []batch.Job[string]{{Name: "bad", Problem: p, Strategy: search.Strategy(99)}}
	for i := 0; i < 4; i++ {
		jobs = append(jobs, batch.Job[string]{Name: "ok", Problem: p, Strategy: search.AStar})
	}

	out, err := batch.Run(jobs, batch.WithConcurrency(1), batch.WithFailFast())
	require.ErrorIs(t, err, batch.ErrJobFailed)
	require.ErrorIs(t, err, search.ErrUnknownStrategy)
	for _, o := range out[1:] {
		assert.NoError(t, o.Err)
		assert.False(t, o.Result.Found(), "jobs after the failure do not run")
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, err := batch.Run([]batch.Job[string]{{Problem: grid(t), Strategy: search.AStar}}, batch.WithContext(ctx))
	require.NoError(t, err)
	assert.Equal(t, search.Ready, out[0].Result.Status)
}

func TestRun_Observer(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []search.Strategy
	)
	obs := search.ObserverFunc(func(s search.Summary) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, s.Strategy)
	})
	p := grid(t)
	_, err := batch.Run([]batch.Job[string]{
		{Problem: p, Strategy: search.AStar},
		{Problem: p, Strategy: search.Greedy},
	}, batch.WithObserver(obs))
	require.NoError(t, err)
	assert.ElementsMatch(t, []search.Strategy{search.AStar, search.Greedy}, seen)
}

func TestRun_OptionViolations(t *testing.T) {
	for name, opt := range map[string]batch.Option{
		"concurrency": batch.WithConcurrency(0),
		"context":     batch.WithContext(nil), //nolint:staticcheck
	} {
		t.Run(name, func(t *testing.T) {
			_, err := batch.Run[string](nil, opt)
			require.ErrorIs(t, err, batch.ErrOptionViolation)
		})
	}
}

func TestJobs_FromLoader(t *testing.T) {
	p, err := loader.Parse([]byte(`
name: line
initial: A
goals: [C]
edges:
  - {from: A, to: B, cost: 1}
  - {from: B, to: C, cost: 1}
runs:
  - {strategy: astar}
  - {strategy: dfs, label: deep}
`))
	require.NoError(t, err)
	jobs := batch.Jobs(p)
	require.Len(t, jobs, 2)
	assert.Equal(t, "line/astar", jobs[0].Name)
	assert.Equal(t, "line/deep", jobs[1].Name)

	out, err := batch.Run(jobs)
	require.NoError(t, err)
	for _, o := range out {
		assert.Equal(t, []string{"A", "B", "C"}, o.Result.States)
	}

	assert.Nil(t, batch.Jobs(nil))
}
