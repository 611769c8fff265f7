package astar

// Step is one element of a Path: a state together with the total
// cost of reaching it from the start.
type Step[S any, C Cost] struct {
	State S
	Cost  C
}

// Path is a sequence of steps from a start state to a goal state.
// A path returned by Solve always holds at least one step, and its
// first step is the start state with cost zero.
type Path[S any, C Cost] []Step[S, C]

// Cost returns the total cost of the path, or zero
// for an empty path.
func (p Path[S, C]) Cost() C {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1].Cost
}

// States returns the states along the path.
func (p Path[S, C]) States() []S {
	states := make([]S, len(p))
	for i, step := range p {
		states[i] = step.State
	}
	return states
}

// Last returns the final step of the path. It panics if
// the path is empty.
func (p Path[S, C]) Last() Step[S, C] {
	return p[len(p)-1]
}

// StepCosts returns the cost of each individual transition
// along the path, so len(StepCosts()) == len(p)-1.
func (p Path[S, C]) StepCosts() []C {
	if len(p) < 2 {
		return nil
	}
	costs := make([]C, len(p)-1)
	for i := 1; i < len(p); i++ {
		costs[i-1] = p[i].Cost - p[i-1].Cost
	}
	return costs
}
