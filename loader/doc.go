// Package loader reads search problems from YAML files.
//
// A problem file names an initial state, its goals, and the state graph,
// given either as an edge list or as a grid of cell values. The heuristic
// section selects a table, the grid's manhattan distance (raised by the
// table where it lists a larger value), the exact distance to the goals,
// or zero. The search section and the optional runs
// list pick strategies and their options; names match search.ParseStrategy
// and frontier.ParseTieBreak. An andor section describes an AND-OR problem
// in the alternatives shape accepted by aostar.FromAlternatives.
//
// Files are decoded strictly (unknown keys are errors), validated with
// struct tags, and built eagerly: a Problem returned without error is ready
// to search. A grid whose goals all lie in another region of open cells
// than the initial state is rejected with ErrUnreachableGoal.
package loader
