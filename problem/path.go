package problem

// Path is an immutable, persistent partial solution: a chain of nodes from
// the current state back to the root. The zero value is not usable; start
// with Root.
//
// Extend never modifies the receiver, so a Path may sit in several frontier
// entries at once and share its prefix with every extension.
type Path[S comparable] struct {
	parent *Path[S]
	state  S
	action string  // action that led here; "" at the root
	step   float64 // cost of the last edge
	cost   float64 // accumulated cost g
	depth  int     // number of edges from the root
}

// Root returns a one-state path with zero cost.
func Root[S comparable](s S) *Path[S] {
	return &Path[S]{state: s}
}

// Extend returns a new path that follows e from the end of p.
// Complexity: O(1).
func (p *Path[S]) Extend(e Edge[S]) *Path[S] {
	return &Path[S]{
		parent: p,
		state:  e.To,
		action: e.Action,
		step:   e.Cost,
		cost:   p.cost + e.Cost,
		depth:  p.depth + 1,
	}
}

// State returns the last state of the path.
func (p *Path[S]) State() S { return p.state }

// Cost returns the accumulated cost.
func (p *Path[S]) Cost() float64 { return p.cost }

// Depth returns the number of edges.
func (p *Path[S]) Depth() int { return p.depth }

// Step returns the cost of the last edge, or 0 at the root.
func (p *Path[S]) Step() float64 { return p.step }

// Parent returns the path without its last edge, or nil at the root.
func (p *Path[S]) Parent() *Path[S] { return p.parent }

// Action returns the label of the last edge, or "" at the root.
func (p *Path[S]) Action() string { return p.action }

// Contains reports whether s occurs anywhere on the path.
// Complexity: O(depth).
func (p *Path[S]) Contains(s S) bool {
	for n := p; n != nil; n = n.parent {
		if n.state == s {
			return true
		}
	}

	return false
}

// Actions returns the action labels root → end (len == Depth()).
func (p *Path[S]) Actions() []string {
	res := make([]string, p.depth)
	for n := p; n.parent != nil; n = n.parent {
		res[n.depth-1] = n.action
	}

	return res
}

// States returns the visited states root → end (len == Depth()+1).
func (p *Path[S]) States() []S {
	res := make([]S, p.depth+1)
	for n := p; n != nil; n = n.parent {
		res[n.depth] = n.state
	}

	return res
}

// Edges returns the edges root → end, replayable with Extend.
func (p *Path[S]) Edges() []Edge[S] {
	res := make([]Edge[S], p.depth)
	for n := p; n.parent != nil; n = n.parent {
		res[n.depth-1] = Edge[S]{Action: n.action, To: n.state, Cost: n.step}
	}

	return res
}

// Prefix returns the ancestor of p ending at depth d, clamped to [0, Depth()].
func (p *Path[S]) Prefix(d int) *Path[S] {
	n := p
	for n.parent != nil && n.depth > d {
		n = n.parent
	}

	return n
}

// IndexOf returns the depth of the first occurrence of s, or -1.
func (p *Path[S]) IndexOf(s S) int {
	idx := -1
	for n := p; n != nil; n = n.parent {
		if n.state == s {
			idx = n.depth
		}
	}

	return idx
}
