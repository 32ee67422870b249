package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/batch"
	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dijkstra"
	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

// errOracleMismatch is returned when a cost-optimal strategy disagrees with
// Dijkstra.
var errOracleMismatch = errors.New("cost differs from dijkstra")

type randomFlags struct {
	n          int
	p          float64
	seed       int64
	minWeight  int
	maxWeight  int
	undirected bool
	strategies string
	heuristic  string
	topology   string
}

func newRandomCmd(a *app) *cobra.Command {
	var rf randomFlags
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Search a seeded random graph and check optimal strategies against Dijkstra",
		Long: `Generate a random sparse graph over states v0..v(n-1) with integer edge
costs, search it from v0 to v(n-1) with every listed strategy, and compare
the cost of astar, uniform_cost and weighted_astar with Dijkstra's distance.

--heuristic selects zero, exact (the true distance) or half (half of it).
Weighted A* is checked against its bound w·optimum.

--topology replaces the random graph with a path, a cycle or a complete
graph over the same states; --p is then ignored.`,
		Example: `  lvsearch random --n 50 --p 0.1 --seed 7
  lvsearch random --strategies astar,beam,genetic --heuristic exact
  lvsearch random --topology complete --n 8 --undirected`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.random(cmd, rf)
		},
	}
	f := cmd.Flags()
	f.IntVar(&rf.n, "n", 30, "number of states")
	f.Float64Var(&rf.p, "p", 0.1, "edge probability")
	f.Int64Var(&rf.seed, "seed", 1, "generator seed")
	f.IntVar(&rf.minWeight, "min-weight", 1, "smallest edge cost")
	f.IntVar(&rf.maxWeight, "max-weight", 9, "largest edge cost")
	f.BoolVar(&rf.undirected, "undirected", false, "mirror every edge")
	f.StringVar(&rf.strategies, "strategies", "astar,uniform_cost,bfs,bidirectional", "comma-separated strategies")
	f.StringVar(&rf.heuristic, "heuristic", "exact", "zero, exact or half")
	f.StringVar(&rf.topology, "topology", "sparse", "sparse, path, cycle or complete")

	return cmd
}

func (a *app) random(cmd *cobra.Command, rf randomFlags) error {
	if rf.minWeight < 0 || rf.maxWeight < rf.minWeight {
		return fmt.Errorf("invalid weights [%d,%d]", rf.minWeight, rf.maxWeight)
	}
	var strategies []search.Strategy
	for _, name := range strings.Split(rf.strategies, ",") {
		s, err := search.ParseStrategy(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		strategies = append(strategies, s)
	}
	shape, err := topology(rf)
	if err != nil {
		return err
	}

	var gopts []core.GraphOption
	if rf.undirected {
		gopts = append(gopts, core.WithUndirected())
	}
	g, err := builder.BuildGraph(gopts, []builder.BuilderOption{
		builder.WithPrefixedIDs("v"),
		builder.WithSeed(rf.seed),
		builder.WithIntegerWeight(rf.minWeight, rf.maxWeight),
	}, shape)
	if err != nil {
		return err
	}
	start, goal := "v0", "v"+strconv.Itoa(rf.n-1)
	p, err := problem.FromGraph(g, start, goal)
	if err != nil {
		return err
	}

	optimum, _, err := dijkstra.ShortestPath(g, start, goal)
	reachable := err == nil
	if err != nil && !errors.Is(err, dijkstra.ErrNoPath) {
		return err
	}
	h, err := randomHeuristic(g, goal, rf.heuristic)
	if err != nil {
		return err
	}
	a.logger.Info("random graph",
		slog.String("topology", rf.topology),
		slog.Int("states", g.StateCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Bool("reachable", reachable),
		slog.Float64("optimum", optimum),
	)

	logger := a.logger.With(slog.String("component", "search"))
	jobs := make([]batch.Job[string], 0, len(strategies))
	for _, s := range strategies {
		jobs = append(jobs, batch.Job[string]{
			Name:      fmt.Sprintf("random(n=%d,seed=%d)/%s", rf.n, rf.seed, s),
			Problem:   p,
			Heuristic: h,
			Strategy:  s,
			Options:   []search.Option{search.WithSeed(rf.seed), search.WithLogger(logger)},
		})
	}
	outs, err := batch.Run(jobs,
		batch.WithContext(cmd.Context()),
		batch.WithObserver(a.collector),
		batch.WithLogger(a.logger.With(slog.String("component", "batch"))),
	)
	if err != nil {
		return err
	}
	if err := a.printer.Outcomes(outs); err != nil {
		return err
	}

	return checkOracle(outs, reachable, optimum)
}

func topology(rf randomFlags) (builder.Constructor, error) {
	switch rf.topology {
	case "sparse":
		return builder.RandomSparse(rf.n, rf.p), nil
	case "path":
		return builder.Path(rf.n), nil
	case "cycle":
		return builder.Cycle(rf.n), nil
	case "complete":
		return builder.Complete(rf.n), nil
	default:
		return nil, fmt.Errorf("invalid --topology %q: want sparse, path, cycle or complete", rf.topology)
	}
}

func randomHeuristic(g *core.Graph, goal, kind string) (heuristic.Func[string], error) {
	switch kind {
	case "zero":
		return heuristic.Zero[string](), nil
	case "exact", "half":
		dist, err := heuristic.DistancesToGoals(g, goal)
		if err != nil {
			return nil, err
		}
		h := heuristic.Table(dist)
		if kind == "half" {
			h = heuristic.Scale(h, 0.5)
		}
		return h, nil
	default:
		return nil, fmt.Errorf("invalid --heuristic %q: want zero, exact or half", kind)
	}
}

// checkOracle verifies the optimal strategies: the same cost as Dijkstra
// when the goal is reachable, exhaustion when it is not.
func checkOracle(outs []batch.Outcome[string], reachable bool, optimum float64) error {
	for _, o := range outs {
		if o.Err != nil {
			return fmt.Errorf("%s: %w", o.Name, o.Err)
		}
		bound := 0.0
		switch o.Result.Strategy {
		case search.AStar, search.UniformCost:
			bound = optimum
		case search.WeightedAStar:
			bound = search.DefaultWeight * optimum
		default:
			continue
		}
		if !reachable {
			if o.Result.Found() {
				return fmt.Errorf("%s: found a path dijkstra did not: %w", o.Name, errOracleMismatch)
			}
			continue
		}
		if !o.Result.Found() || o.Result.Cost > bound+1e-9 || o.Result.Cost < optimum-1e-9 {
			return fmt.Errorf("%s: cost %v, optimum %v: %w", o.Name, o.Result.Cost, optimum, errOracleMismatch)
		}
	}

	return nil
}
