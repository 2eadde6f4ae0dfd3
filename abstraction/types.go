// SPDX-License-Identifier: MIT

package abstraction

import (
	"sort"
	"sync"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/polyhedra/lssforge/halfspace"
	"github.com/polyhedra/lssforge/lss"
	"github.com/polyhedra/lssforge/polytope"
)

// Kind classifies a State's relationship to the objective under analysis.
// Values match the integer encoding snapshot.StateRecord.Kind uses on the
// wire exactly, so serialization needs no translation table.
type Kind int

const (
	Outer         Kind = -10
	NonSatisfying Kind = -1
	Undecided     Kind = 0
	Satisfying    Kind = 1
)

// State is one labeled convex cell of the abstraction.
type State struct {
	owner *AbstractedLSS

	label      int
	poly       polytope.Polytope
	kind       Kind
	predicates *hashset.Set // of string predicate labels

	mu           sync.Mutex // guards the lazy fields below
	actionsReady bool
	actions      []*Action
	actionsErr   error
	reachable    *hashset.Set // of int state labels; the invalidation witness
}

// Label reports the state's fresh, monotonically assigned identifier.
func (s *State) Label() int { return s.label }

// Polytope returns the state's region.
func (s *State) Polytope() polytope.Polytope { return s.poly }

// Kind reports the state's current classification.
func (s *State) Kind() Kind { return s.kind }

// PredicateLabels returns the (unordered) predicate labels that hold on
// this state's region.
func (s *State) PredicateLabels() []string {
	out := make([]string, 0, s.predicates.Size())
	for _, v := range s.predicates.Values() {
		out = append(out, v.(string))
	}
	return out
}

// invalidate drops the cached action list, forcing recomputation on the
// next Actions() call. Called by refine for every surviving state whose
// reachable witness intersects the refined-set.
func (s *State) invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actionsReady = false
	s.actions = nil
	s.actionsErr = nil
	s.reachable = nil
}

// Action belongs to a State (its origin, held implicitly by the State
// that returned it from Actions()). targets is a set of other states'
// labels, not pointers: refine's delete-and-replace can never leave these
// dangling, because Refine calls State.invalidate on every surviving state
// whose reachable witness intersects the refined set, dropping its cached
// Actions before a caller can observe stale labels.
type Action struct {
	// origin is a live pointer, not a weak reference: an Action never
	// outlives the owning State's cache slot.
	origin   *State
	targets  []int // state labels, in precise-operator-partition sweep order
	controls *polytope.Union

	mu            sync.Mutex
	supportsReady bool
	supports      []*ActionSupport
	supportsErr   error
}

// Targets returns the ordered list of target state labels.
func (a *Action) Targets() []int {
	out := make([]int, len(a.targets))
	copy(out, a.targets)
	return out
}

// Controls returns the control region from which any control drives the
// origin into some target of this action.
func (a *Action) Controls() *polytope.Union { return a.controls }

// ActionSupport refines an Action by a specific non-empty subset of its
// targets, with the sub-region of the origin from which that subset is
// robustly reachable.
type ActionSupport struct {
	targets []int
	origin  *polytope.Union
}

// Targets returns the supported subset of the owning action's targets.
func (s *ActionSupport) Targets() []int {
	out := make([]int, len(s.targets))
	copy(out, s.targets)
	return out
}

// Origin returns the sub-region of the action's origin state from which
// this subset is robustly reachable.
func (s *ActionSupport) Origin() *polytope.Union { return s.origin }

// AbstractedLSS is an LSS together with its finite labeled-cell partition.
// The state map and label counter are the only resources shared across a
// refinement pass; they are guarded by muStates, following the split-lock
// shape of separating structural state from per-item caches. Action caches
// are per-State owned memoization guarded by each State's own mutex, not
// by muStates.
type AbstractedLSS struct {
	sys *lss.LSS

	muStates  sync.RWMutex
	states    map[int]*State
	nextLabel int

	predicates map[string]halfspace.Halfspace
}

// LSS returns the underlying dynamics the abstraction was built over.
func (a *AbstractedLSS) LSS() *lss.LSS { return a.sys }

// State returns the state with the given label, or nil if it has been
// refined away or never existed.
func (a *AbstractedLSS) State(label int) *State {
	a.muStates.RLock()
	defer a.muStates.RUnlock()
	return a.states[label]
}

// States returns a snapshot slice of every current state, ordered by
// label. Taking a snapshot (rather than exposing the map) is what lets
// refine safely delete-and-insert while a caller iterates.
func (a *AbstractedLSS) States() []*State {
	a.muStates.RLock()
	defer a.muStates.RUnlock()
	out := make([]*State, 0, len(a.states))
	for _, s := range a.states {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].label < out[j].label })
	return out
}

// Predicate returns the halfspace registered under label, and whether it
// exists.
func (a *AbstractedLSS) Predicate(label string) (halfspace.Halfspace, bool) {
	h, ok := a.predicates[label]
	return h, ok
}

// Predicates returns a copy of the label->halfspace registry fixed at
// construction time (snapshot consumers need the whole set, not just a
// single lookup).
func (a *AbstractedLSS) Predicates() map[string]halfspace.Halfspace {
	out := make(map[string]halfspace.Halfspace, len(a.predicates))
	for k, v := range a.predicates {
		out[k] = v
	}
	return out
}

// LabelNum reports the next label that would be assigned by newState: the
// monotonic high-water mark, not the current live state count (refine
// never reuses a deleted label).
func (a *AbstractedLSS) LabelNum() int {
	a.muStates.RLock()
	defer a.muStates.RUnlock()
	return a.nextLabel
}

// newState mints a fresh labeled State under the write lock, advancing
// the monotonic counter.
func (a *AbstractedLSS) newState(poly polytope.Polytope, kind Kind, predLabels []string) *State {
	a.muStates.Lock()
	defer a.muStates.Unlock()
	label := a.nextLabel
	a.nextLabel++
	preds := hashset.New()
	for _, p := range predLabels {
		preds.Add(p)
	}
	s := &State{owner: a, label: label, poly: poly, kind: kind, predicates: preds}
	a.states[label] = s
	return s
}
