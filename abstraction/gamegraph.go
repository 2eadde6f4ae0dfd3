// SPDX-License-Identifier: MIT

package abstraction

import "fmt"

// GameGraph is a read-only view over an AbstractedLSS exposing exactly
// what an external game solver needs: state labels,
// predicate labels per state, and the action/support/target structure.
// It never mutates the underlying AbstractedLSS.
type GameGraph struct {
	abs *AbstractedLSS
}

// NewGameGraph wraps abs in a read-only GameGraph view.
func NewGameGraph(abs *AbstractedLSS) *GameGraph {
	return &GameGraph{abs: abs}
}

// StateLabels returns every current state label, ordered.
func (g *GameGraph) StateLabels() []int {
	states := g.abs.States()
	out := make([]int, len(states))
	for i, s := range states {
		out[i] = s.label
	}
	return out
}

// PredicateLabelsOf returns the predicate labels holding on state s.
func (g *GameGraph) PredicateLabelsOf(s int) ([]string, error) {
	st := g.abs.State(s)
	if st == nil {
		return nil, fmt.Errorf("abstraction.GameGraph: state %d not found: %w", s, ErrValue)
	}
	return st.PredicateLabels(), nil
}

// ActionCount returns the number of actions available at state s,
// triggering lazy construction if not already cached.
func (g *GameGraph) ActionCount(s int) (int, error) {
	st := g.abs.State(s)
	if st == nil {
		return 0, fmt.Errorf("abstraction.GameGraph: state %d not found: %w", s, ErrValue)
	}
	actions, err := st.Actions()
	if err != nil {
		return 0, err
	}
	return len(actions), nil
}

// SupportCount returns the number of supports of the a-th action of
// state s, triggering lazy construction if not already cached.
func (g *GameGraph) SupportCount(s, a int) (int, error) {
	act, err := g.action(s, a)
	if err != nil {
		return 0, err
	}
	supports, err := act.Supports()
	if err != nil {
		return 0, err
	}
	return len(supports), nil
}

// TargetLabels returns the target state labels of the sup-th support of
// the a-th action of state s.
func (g *GameGraph) TargetLabels(s, a, sup int) ([]int, error) {
	act, err := g.action(s, a)
	if err != nil {
		return nil, err
	}
	supports, err := act.Supports()
	if err != nil {
		return nil, err
	}
	if sup < 0 || sup >= len(supports) {
		return nil, fmt.Errorf("abstraction.GameGraph: state %d action %d: support index %d out of range: %w", s, a, sup, ErrValue)
	}
	return supports[sup].Targets(), nil
}

func (g *GameGraph) action(s, a int) (*Action, error) {
	st := g.abs.State(s)
	if st == nil {
		return nil, fmt.Errorf("abstraction.GameGraph: state %d not found: %w", s, ErrValue)
	}
	actions, err := st.Actions()
	if err != nil {
		return nil, err
	}
	if a < 0 || a >= len(actions) {
		return nil, fmt.Errorf("abstraction.GameGraph: state %d: action index %d out of range: %w", s, a, ErrValue)
	}
	return actions[a], nil
}
