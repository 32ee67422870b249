package loader

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/aostar"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

// Build turns a validated File into a Problem. The graph, the heuristic
// and every run are constructed eagerly so that a bad file fails here
// rather than mid-search.
func (f *File) Build() (*Problem, error) {
	out := &Problem{Name: f.Name}

	if f.Initial != "" {
		g, grid, err := f.graph()
		if err != nil {
			return nil, err
		}
		gp, err := problem.FromGraph(g, f.Initial, f.Goals...)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
		}
		h, err := f.heuristic(g, grid)
		if err != nil {
			return nil, err
		}
		out.Graph, out.Search, out.Heuristic = g, gp, h

		if out.Base, err = f.Search.run(); err != nil {
			return nil, fmt.Errorf("%w: search: %w", ErrInvalidFile, err)
		}
		specs := f.Runs
		if len(specs) == 0 {
			specs = []SearchSpec{{}}
		}
		for i, s := range specs {
			run, err := f.Search.merge(s).run()
			if err != nil {
				return nil, fmt.Errorf("%w: runs[%d]: %w", ErrInvalidFile, i, err)
			}
			out.Runs = append(out.Runs, run)
		}
	}

	if f.AndOr != nil {
		ao, err := f.AndOr.build()
		if err != nil {
			return nil, fmt.Errorf("%w: andor: %w", ErrInvalidFile, err)
		}
		out.AndOr = ao
	}

	return out, nil
}

// graph builds the state graph from the edge list or the grid. The grid is
// returned for the manhattan heuristic.
func (f *File) graph() (*core.Graph, *gridgraph.GridGraph, error) {
	if f.Grid != nil {
		opts := gridgraph.DefaultGridOptions()
		if f.Grid.Conn == 8 {
			opts.Conn = gridgraph.Conn8
		}
		if f.Grid.IDs == "letters" {
			opts.IDs = gridgraph.LetterIDs
		}
		if f.Grid.OpenThreshold != nil {
			opts.OpenThreshold = *f.Grid.OpenThreshold
		}
		opts.Weighted = f.Grid.Weighted
		gg, err := gridgraph.NewGridGraph(f.Grid.Rows, opts)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: grid: %w", ErrInvalidFile, err)
		}
		if err = f.reachable(gg); err != nil {
			return nil, nil, err
		}

		return gg.ToCoreGraph(), gg, nil
	}
	if len(f.Edges) == 0 {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidFile, ErrNoGraph)
	}

	var gopts []core.GraphOption
	if f.Undirected {
		gopts = append(gopts, core.WithUndirected())
	}
	g := core.NewGraph(gopts...)
	for i, e := range f.Edges {
		eopts := []core.EdgeOption{core.WithAction(e.Action)}
		if e.ReverseAction != "" {
			eopts = append(eopts, core.WithReverseAction(e.ReverseAction))
		}
		if _, err := g.AddEdge(e.From, e.To, e.Cost, eopts...); err != nil {
			return nil, nil, fmt.Errorf("%w: edges[%d]: %w", ErrInvalidFile, i, err)
		}
	}

	return g, nil, nil
}

// reachable rejects a grid on which no goal shares a region with the
// initial cell. Cells that are unknown or walls are left to FromGraph.
func (f *File) reachable(gg *gridgraph.GridGraph) error {
	region := make(map[string]int)
	for i, ids := range gg.Regions() {
		for _, id := range ids {
			region[id] = i
		}
	}
	home, ok := region[f.Initial]
	if !ok || len(f.Goals) == 0 {
		return nil
	}
	for _, goal := range f.Goals {
		if r, ok := region[goal]; !ok || r == home {
			return nil
		}
	}

	_, walls, err := gg.WallsToBreak(f.Initial, f.Goals[0])
	if err != nil {
		return fmt.Errorf("%w: %w: %w", ErrInvalidFile, problem.ErrInvalidProblem, err)
	}

	return fmt.Errorf("%w: %w: %w: %q is %d wall(s) away from %q",
		ErrInvalidFile, problem.ErrInvalidProblem, ErrUnreachableGoal, f.Goals[0], walls, f.Initial)
}

func (f *File) heuristic(g *core.Graph, grid *gridgraph.GridGraph) (heuristic.Func[string], error) {
	kind := f.Heuristic.Kind
	if kind == "" {
		kind = KindZero
		if len(f.Heuristic.Table) > 0 {
			kind = KindTable
		}
	}

	var h heuristic.Func[string]
	switch kind {
	case KindZero:
		h = heuristic.Zero[string]()
	case KindTable:
		h = heuristic.Table(f.Heuristic.Table)
	case KindExact:
		dist, err := heuristic.DistancesToGoals(g, f.Goals...)
		if err != nil {
			return nil, fmt.Errorf("%w: exact heuristic: %w", ErrInvalidFile, err)
		}
		h = heuristic.Table(dist)
	case KindManhattan:
		if grid == nil {
			return nil, fmt.Errorf("%w: %s needs a grid", ErrHeuristicKind, kind)
		}
		hs := make([]heuristic.Func[string], 0, len(f.Goals))
		for _, goal := range f.Goals {
			hg, err := grid.Heuristic(goal)
			if err != nil {
				return nil, fmt.Errorf("%w: goal %q: %w", ErrInvalidFile, goal, err)
			}
			hs = append(hs, hg)
		}
		h = heuristic.Min(hs...)
		if len(f.Heuristic.Table) > 0 {
			h = heuristic.Max(h, heuristic.Table(f.Heuristic.Table))
		}
	}
	if f.Heuristic.Scale > 0 && f.Heuristic.Scale != 1 {
		h = heuristic.Scale(h, f.Heuristic.Scale)
	}

	return h, nil
}

// merge overlays the fields set in o on s.
func (s SearchSpec) merge(o SearchSpec) SearchSpec {
	if o.Label != "" {
		s.Label = o.Label
	}
	if o.Strategy != "" {
		s.Strategy = o.Strategy
	}
	if o.MaxExpansions != 0 {
		s.MaxExpansions = o.MaxExpansions
	}
	if o.Deadline != 0 {
		s.Deadline = o.Deadline
	}
	if o.TieBreak != "" {
		s.TieBreak = o.TieBreak
	}
	if o.BeamWidth != 0 {
		s.BeamWidth = o.BeamWidth
	}
	if o.Weight != 0 {
		s.Weight = o.Weight
	}
	if o.DepthLimit != 0 {
		s.DepthLimit = o.DepthLimit
	}
	if o.TabuSize != nil {
		s.TabuSize = o.TabuSize
	}
	if o.InitialTemperature != 0 {
		s.InitialTemperature = o.InitialTemperature
	}
	if o.CoolingRate != 0 {
		s.CoolingRate = o.CoolingRate
	}
	if o.Seed != nil {
		s.Seed = o.Seed
	}
	if o.Population != 0 {
		s.Population = o.Population
	}
	if o.Generations != 0 {
		s.Generations = o.Generations
	}
	if o.MutationRate != nil {
		s.MutationRate = o.MutationRate
	}
	if o.MaxPathLength != 0 {
		s.MaxPathLength = o.MaxPathLength
	}
	if o.Horizon != 0 {
		s.Horizon = o.Horizon
	}

	return s
}

// run converts s into a strategy and search options. The empty strategy
// is astar.
func (s SearchSpec) run() (Run, error) {
	strategy := search.AStar
	if s.Strategy != "" {
		var err error
		if strategy, err = search.ParseStrategy(s.Strategy); err != nil {
			return Run{}, err
		}
	}
	label := s.Label
	if label == "" {
		label = strategy.String()
	}

	var opts []search.Option
	if s.MaxExpansions > 0 {
		opts = append(opts, search.WithMaxExpansions(s.MaxExpansions))
	}
	if s.Deadline > 0 {
		opts = append(opts, search.WithDeadline(s.Deadline))
	}
	if s.TieBreak != "" {
		tb, err := frontier.ParseTieBreak(s.TieBreak)
		if err != nil {
			return Run{}, err
		}
		opts = append(opts, search.WithTieBreak(tb))
	}
	if s.BeamWidth > 0 {
		opts = append(opts, search.WithBeamWidth(s.BeamWidth))
	}
	if s.Weight > 0 {
		opts = append(opts, search.WithWeight(s.Weight))
	}
	if s.DepthLimit > 0 {
		opts = append(opts, search.WithDepthLimit(s.DepthLimit))
	}
	if s.TabuSize != nil {
		opts = append(opts, search.WithTabuSize(*s.TabuSize))
	}
	if s.InitialTemperature > 0 {
		opts = append(opts, search.WithInitialTemperature(s.InitialTemperature))
	}
	if s.CoolingRate > 0 {
		opts = append(opts, search.WithCoolingRate(s.CoolingRate))
	}
	if s.Seed != nil {
		opts = append(opts, search.WithSeed(*s.Seed))
	}
	if s.Population > 0 {
		opts = append(opts, search.WithPopulation(s.Population))
	}
	if s.Generations > 0 {
		opts = append(opts, search.WithGenerations(s.Generations))
	}
	if s.MutationRate != nil {
		opts = append(opts, search.WithMutationRate(*s.MutationRate))
	}
	if s.MaxPathLength > 0 {
		opts = append(opts, search.WithMaxPathLength(s.MaxPathLength))
	}
	if s.Horizon > 0 {
		opts = append(opts, search.WithHorizon(s.Horizon))
	}

	return Run{Label: label, Strategy: strategy, Options: opts}, nil
}

func (a *AndOrSpec) build() (*AndOr, error) {
	g, err := aostar.FromAlternatives(a.Nodes)
	if err != nil {
		return nil, err
	}
	if _, ok := g.Node(a.Root); !ok {
		return nil, fmt.Errorf("%w: %q", aostar.ErrRootNotFound, a.Root)
	}

	var opts []aostar.Option
	if a.MaxDepth > 0 {
		opts = append(opts, aostar.WithMaxDepth(a.MaxDepth))
	}
	if len(a.Heuristic) > 0 {
		opts = append(opts, aostar.WithHeuristic(heuristic.Table(a.Heuristic)))
	}

	return &AndOr{Graph: g, Root: a.Root, Options: opts}, nil
}
