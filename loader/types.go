package loader

import (
	"errors"
	"time"

	"github.com/katalvlaran/lvsearch/aostar"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

// Sentinel errors for problem files.
var (
	// ErrInvalidFile indicates a file that does not decode or fails validation.
	ErrInvalidFile = errors.New("loader: invalid problem file")

	// ErrNoGraph indicates a search section without edges or grid.
	ErrNoGraph = errors.New("loader: problem needs edges or a grid")

	// ErrUnreachableGoal indicates a grid whose goals all lie in another
	// region of open cells than the initial state.
	ErrUnreachableGoal = errors.New("loader: goal never satisfiable by construction")

	// ErrHeuristicKind indicates a heuristic kind that does not fit the
	// problem, such as manhattan on an edge list.
	ErrHeuristicKind = errors.New("loader: heuristic kind not applicable")
)

// Heuristic kinds accepted in the heuristic section.
const (
	KindZero      = "zero"
	KindTable     = "table"
	KindManhattan = "manhattan"
	KindExact     = "exact"
)

// File is the YAML layout of a problem file.
//
//	name: classroom
//	initial: A
//	goals: [F]
//	edges:
//	  - {from: A, to: B, cost: 1}
//	heuristic:
//	  table: {A: 7, B: 6}
//	search:
//	  strategy: astar
//
// A grid section replaces edges. An andor section may stand alone, in which
// case initial and goals may be omitted.
type File struct {
	Name       string        `yaml:"name" validate:"omitempty,max=128"`
	Initial    string        `yaml:"initial" validate:"required_without=AndOr"`
	Goals      []string      `yaml:"goals" validate:"required_without=AndOr,dive,required"`
	Undirected bool          `yaml:"undirected"`
	Edges      []EdgeSpec    `yaml:"edges" validate:"excluded_with=Grid,dive"`
	Grid       *GridSpec     `yaml:"grid"`
	Heuristic  HeuristicSpec `yaml:"heuristic"`
	Search     SearchSpec    `yaml:"search"`

	// Runs lists extra searches over the same problem. Each run starts from
	// the search section and overrides the fields it sets.
	Runs  []SearchSpec `yaml:"runs" validate:"dive"`
	AndOr *AndOrSpec   `yaml:"andor"`
}

// EdgeSpec is one edge of an explicit graph.
type EdgeSpec struct {
	From          string  `yaml:"from" validate:"required"`
	To            string  `yaml:"to" validate:"required"`
	Cost          float64 `yaml:"cost" validate:"gte=0"`
	Action        string  `yaml:"action"`
	ReverseAction string  `yaml:"reverse_action"`
}

// GridSpec describes a grid world. Cells below OpenThreshold are walls.
type GridSpec struct {
	Rows          [][]int `yaml:"rows" validate:"required,min=1,dive,min=1"`
	Conn          int     `yaml:"conn" validate:"omitempty,oneof=4 8"`
	IDs           string  `yaml:"ids" validate:"omitempty,oneof=coord letters"`
	Weighted      bool    `yaml:"weighted"`
	OpenThreshold *int    `yaml:"open_threshold"`
}

// HeuristicSpec selects the heuristic. Kind defaults to table when Table
// is set and to zero otherwise. With kind manhattan a table raises the
// estimate of the states it lists.
type HeuristicSpec struct {
	Kind  string             `yaml:"kind" validate:"omitempty,oneof=zero table manhattan exact"`
	Table map[string]float64 `yaml:"table" validate:"dive,keys,required,endkeys,gte=0"`
	Scale float64            `yaml:"scale" validate:"omitempty,gt=0"`
}

// SearchSpec holds the strategy and the options of one search. Unset fields
// keep the search package defaults.
type SearchSpec struct {
	Label              string        `yaml:"label"`
	Strategy           string        `yaml:"strategy" validate:"omitempty,strategy"`
	MaxExpansions      int           `yaml:"max_expansions" validate:"gte=0"`
	Deadline           time.Duration `yaml:"deadline" validate:"gte=0"`
	TieBreak           string        `yaml:"tie_break" validate:"omitempty,tiebreak"`
	BeamWidth          int           `yaml:"beam_width" validate:"gte=0"`
	Weight             float64       `yaml:"weight" validate:"omitempty,gte=1"`
	DepthLimit         int           `yaml:"depth_limit" validate:"gte=0"`
	TabuSize           *int          `yaml:"tabu_size" validate:"omitempty,gte=0"`
	InitialTemperature float64       `yaml:"initial_temperature" validate:"gte=0"`
	CoolingRate        float64       `yaml:"cooling_rate" validate:"omitempty,gt=0,lt=1"`
	Seed               *int64        `yaml:"seed"`
	Population         int           `yaml:"population" validate:"omitempty,gte=2"`
	Generations        int           `yaml:"generations" validate:"omitempty,gte=1"`
	MutationRate       *float64      `yaml:"mutation_rate" validate:"omitempty,gte=0,lte=1"`
	MaxPathLength      int           `yaml:"max_path_length" validate:"omitempty,gte=2"`
	Horizon            int           `yaml:"horizon" validate:"gte=0"`
}

// AndOrSpec describes an AND-OR problem in the alternatives shape: every
// node lists its options, and an option with several arcs needs all of
// them. A node without options is a terminal of cost 0.
type AndOrSpec struct {
	Root      string                    `yaml:"root" validate:"required"`
	MaxDepth  int                       `yaml:"max_depth" validate:"gte=0"`
	Heuristic map[string]float64        `yaml:"heuristic" validate:"dive,keys,required,endkeys,gte=0"`
	Nodes     map[string][][]aostar.Arc `yaml:"nodes" validate:"required,dive,keys,required,endkeys,dive,min=1,dive"`
}

// Problem is a loaded problem file ready to search.
type Problem struct {
	Name string

	// Graph and Search are nil for a file with only an andor section.
	Graph     *core.Graph
	Search    *problem.GraphProblem
	Heuristic heuristic.Func[string]
	Runs      []Run

	// Base is the search section alone, without any runs entry merged in.
	Base Run

	AndOr *AndOr
}

// Run is one configured search over Problem.Search.
type Run struct {
	Label    string
	Strategy search.Strategy
	Options  []search.Option
}

// AndOr is a loaded AND-OR problem.
type AndOr struct {
	Graph   *aostar.Graph
	Root    string
	Options []aostar.Option
}
