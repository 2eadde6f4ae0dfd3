// SPDX-License-Identifier: MIT

package polytope

import (
	"fmt"
	"math"
	"sort"

	"github.com/polyhedra/lssforge/halfspace"
	"github.com/polyhedra/lssforge/numeric"
)

// Polygon is the 2D Polytope: a bounded convex region with CCW-ordered
// vertices as its primary representation. The H-form is derived lazily from
// the vertex list (edge-to-halfspace conversion) and memoized — see
// halfspaces().
//
// Every Polygon in this package is full-dimensional and convex by
// construction: new vertex lists come from hull2D (Andrew's monotone chain)
// and noRedund2D (halfspace-clip reduction), both of which either emit a
// valid CCW polygon or the canonical Empty(2); the other callers of
// NewPolygonFromVertices (Translate, Invert, and the bounding-box builders)
// pass a translated or point-reflected canonical vertex list, or a box's
// four corners in CCW order.
type Polygon struct {
	vertices []numeric.Vector      // canonical CCW V-form
	hsCache  []halfspace.Halfspace // lazy memoized H-form; nil until computed
}

// NewPolygonFromVertices wraps an already-canonical (CCW, non-redundant)
// vertex list. Callers outside this package should use Hull or Intersection
// instead; this is exposed for the union/lss layers that already hold a
// canonical vertex list (e.g. after a Minkowski sum's own hull step).
func NewPolygonFromVertices(verts []numeric.Vector) Polytope {
	if len(verts) < 3 {
		return Empty(2)
	}
	return &Polygon{vertices: verts}
}

func (p *Polygon) Dim() int { return 2 }

func (p *Polygon) IsEmpty() bool {
	return len(p.vertices) < 3 || p.Volume() < numeric.Epsilon
}

func (p *Polygon) Vertices() ([]numeric.Vector, error) {
	out := make([]numeric.Vector, len(p.vertices))
	copy(out, p.vertices)
	return out, nil
}

func (p *Polygon) Halfspaces() ([]halfspace.Halfspace, error) {
	if p.hsCache == nil {
		p.hsCache = v2h2D(p.vertices)
	}
	out := make([]halfspace.Halfspace, len(p.hsCache))
	copy(out, p.hsCache)
	return out, nil
}

// v2h2D turns each CCW edge (v_i -> v_{i+1}) into the halfspace
// (Δy, -Δx)·x <= det(v_i, v_{i+1}), then sorts the result into canonical
// angle order.
func v2h2D(verts []numeric.Vector) []halfspace.Halfspace {
	n := len(verts)
	out := make([]halfspace.Halfspace, 0, n)
	for i := 0; i < n; i++ {
		v := verts[i]
		w := verts[(i+1)%n]
		dx := w.At(0) - v.At(0)
		dy := w.At(1) - v.At(1)
		det := v.At(0)*w.At(1) - v.At(1)*w.At(0)
		out = append(out, halfspace.Normalize(numeric.NewVector(dy, -dx), det))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Angle() < out[j].Angle() })
	return out
}

func (p *Polygon) Contains(pt numeric.Vector) bool {
	hs, _ := p.Halfspaces()
	for _, h := range hs {
		if !h.Contains(pt) {
			return false
		}
	}
	return true
}

// Volume returns the shoelace-formula signed area, halved and made
// positive (vertices are canonically CCW so the raw shoelace sum is
// already non-negative up to floating error).
func (p *Polygon) Volume() float64 {
	n := len(p.vertices)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		a := p.vertices[i]
		b := p.vertices[(i+1)%n]
		sum += a.At(0)*b.At(1) - b.At(0)*a.At(1)
	}
	return math.Abs(sum) / 2
}

// Centroid returns the Green's-formula centroid over the vertex list.
func (p *Polygon) Centroid() numeric.Vector {
	n := len(p.vertices)
	if n < 3 {
		return numeric.Zeros(2)
	}
	var cx, cy, area float64
	for i := 0; i < n; i++ {
		a := p.vertices[i]
		b := p.vertices[(i+1)%n]
		cross := a.At(0)*b.At(1) - b.At(0)*a.At(1)
		area += cross
		cx += (a.At(0) + b.At(0)) * cross
		cy += (a.At(1) + b.At(1)) * cross
	}
	if numeric.Zero(area) {
		return p.vertices[0]
	}
	return numeric.NewVector(cx/(3*area), cy/(3*area))
}

func (p *Polygon) Extent() [][2]float64 {
	if len(p.vertices) == 0 {
		return nil
	}
	minX, maxX := p.vertices[0].At(0), p.vertices[0].At(0)
	minY, maxY := p.vertices[0].At(1), p.vertices[0].At(1)
	for _, v := range p.vertices[1:] {
		minX = math.Min(minX, v.At(0))
		maxX = math.Max(maxX, v.At(0))
		minY = math.Min(minY, v.At(1))
		maxY = math.Max(maxY, v.At(1))
	}
	return [][2]float64{{minX, maxX}, {minY, maxY}}
}

func (p *Polygon) BoundingBox() Polytope {
	ext := p.Extent()
	if ext == nil {
		return Empty(2)
	}
	verts := []numeric.Vector{
		numeric.NewVector(ext[0][0], ext[1][0]),
		numeric.NewVector(ext[0][1], ext[1][0]),
		numeric.NewVector(ext[0][1], ext[1][1]),
		numeric.NewVector(ext[0][0], ext[1][1]),
	}
	return NewPolygonFromVertices(verts)
}

func (p *Polygon) Translate(v numeric.Vector) (Polytope, error) {
	if v.Dim() != 2 {
		return nil, fmt.Errorf("Polygon.Translate: %w", ErrDimensionMismatch)
	}
	out := make([]numeric.Vector, len(p.vertices))
	for i, vert := range p.vertices {
		sum, _ := vert.Add(v)
		out[i] = sum
	}
	return NewPolygonFromVertices(out), nil
}

func (p *Polygon) Invert() Polytope {
	out := make([]numeric.Vector, len(p.vertices))
	n := len(p.vertices)
	// Point reflection reverses orientation; re-reverse the list to keep
	// the result CCW.
	for i, vert := range p.vertices {
		out[n-1-i] = vert.Negate()
	}
	return NewPolygonFromVertices(out)
}

func (p *Polygon) Apply(m numeric.Matrix) (Polytope, error) {
	if m.Cols() != 2 {
		return nil, fmt.Errorf("Polygon.Apply: cols=%d: %w", m.Cols(), ErrDimensionMismatch)
	}
	out := make([]numeric.Vector, len(p.vertices))
	for i, v := range p.vertices {
		mv, err := m.MulVec(v)
		if err != nil {
			return nil, err
		}
		out[i] = mv
	}
	return Hull(out)
}

func (p *Polygon) ApplyRight(m numeric.Matrix) (Polytope, error) {
	hs, _ := p.Halfspaces()
	out := make([]halfspace.Halfspace, len(hs))
	for i, h := range hs {
		nh, err := h.ApplyRight(m)
		if err != nil {
			return nil, err
		}
		out[i] = nh
	}
	return Intersection(out)
}

// Minkowski returns the hull of pairwise vertex sums.
func (p *Polygon) Minkowski(q Polytope) (Polytope, error) {
	if q.Dim() != 2 {
		return nil, fmt.Errorf("Polygon.Minkowski: %w", ErrDimensionMismatch)
	}
	if p.IsEmpty() || q.IsEmpty() {
		return Empty(2), nil
	}
	qv, err := q.Vertices()
	if err != nil {
		return nil, err
	}
	pts := make([]numeric.Vector, 0, len(p.vertices)*len(qv))
	for _, a := range p.vertices {
		for _, b := range qv {
			sum, _ := a.Add(b)
			pts = append(pts, sum)
		}
	}
	return Hull(pts)
}

// Pontryagin computes self ⊖ q: for each halfspace h of self and each
// vertex w of -q, collect h.Translate(w), then reduce via noredund.
func (p *Polygon) Pontryagin(q Polytope) (Polytope, error) {
	if q.Dim() != 2 {
		return nil, fmt.Errorf("Polygon.Pontryagin: %w", ErrDimensionMismatch)
	}
	if q.IsEmpty() {
		return p, nil
	}
	selfHS, err := p.Halfspaces()
	if err != nil {
		return nil, err
	}
	qv, err := q.Vertices()
	if err != nil {
		return nil, err
	}
	var all []halfspace.Halfspace
	for _, h := range selfHS {
		for _, w := range qv {
			th, err := h.Translate(w.Negate())
			if err != nil {
				return nil, err
			}
			all = append(all, th)
		}
	}
	return Intersection(all)
}

// Intersect implements the 2D fast path (exactly one other: merge the two
// canonical angle-ordered halfspace lists, one-way, then noredund) and the
// general path (concatenate + resort) for zero or multiple others.
func (p *Polygon) Intersect(others ...Polytope) (Polytope, error) {
	selfHS, err := p.Halfspaces()
	if err != nil {
		return nil, err
	}
	for _, o := range others {
		if o.IsEmpty() {
			return Empty(2), nil
		}
		if o.Dim() != 2 {
			return nil, fmt.Errorf("Polygon.Intersect: %w", ErrDimensionMismatch)
		}
	}
	if len(others) == 1 {
		otherHS, err := others[0].Halfspaces()
		if err != nil {
			return nil, err
		}
		merged := mergeByAngle(selfHS, otherHS)
		return noRedund2D(merged), nil
	}
	all := append([]halfspace.Halfspace(nil), selfHS...)
	for _, o := range others {
		ohs, err := o.Halfspaces()
		if err != nil {
			return nil, err
		}
		all = append(all, ohs...)
	}
	return Intersection(all)
}

// mergeByAngle performs a one-way merge of two angle-sorted halfspace
// lists, avoiding an O(n log n) resort. The comparison is τ-fuzzy
// (numeric.AngleLTE) rather than a strict "<=" so that two edges whose
// angles differ only by floating-point noise — as happens with
// near-parallel edges shared between nested polygons — still merge in a
// stable, deterministic order instead of toggling on rounding error.
func mergeByAngle(a, b []halfspace.Halfspace) []halfspace.Halfspace {
	out := make([]halfspace.Halfspace, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if numeric.AngleLTE(a[i].Angle(), b[j].Angle()) {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

func (p *Polygon) Split(hs []halfspace.Halfspace) ([]Polytope, error) {
	return genericSplit(p, hs)
}

func (p *Polygon) Remove(others []Polytope) ([]Polytope, error) {
	return genericRemove(p, others)
}

// IsSameAs reports whether q is a 2D polygon with the same vertex count
// whose vertex list matches self's under some cyclic rotation, within
// tolerance.
func (p *Polygon) IsSameAs(q Polytope) bool {
	if q.IsEmpty() != p.IsEmpty() {
		return false
	}
	if p.IsEmpty() {
		return true
	}
	if q.Dim() != 2 {
		return false
	}
	qv, err := q.Vertices()
	if err != nil || len(qv) != len(p.vertices) {
		return false
	}
	n := len(p.vertices)
	for shift := 0; shift < n; shift++ {
		match := true
		for i := 0; i < n; i++ {
			if !p.vertices[i].ApproxEqual(qv[(i+shift)%n]) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// hull2D builds the convex hull via Andrew's monotone chain:
// sort ascending by x (ties descending y), build lower/upper chains
// by popping while the last three points are not a strict CCW turn or the
// new point τ-coincides with the chain's last point, concatenate minus
// duplicate endpoints.
func hull2D(points []numeric.Vector) Polytope {
	pts := append([]numeric.Vector(nil), points...)
	sort.SliceStable(pts, func(i, j int) bool {
		if !numeric.Equal(pts[i].At(0), pts[j].At(0)) {
			return pts[i].At(0) < pts[j].At(0)
		}
		return pts[i].At(1) > pts[j].At(1)
	})

	lower := monotoneChain(pts)
	reversed := make([]numeric.Vector, len(pts))
	for i, p := range pts {
		reversed[len(pts)-1-i] = p
	}
	upper := monotoneChain(reversed)

	hull := make([]numeric.Vector, 0, len(lower)+len(upper))
	if len(lower) > 0 {
		hull = append(hull, lower[:len(lower)-1]...)
	}
	if len(upper) > 0 {
		hull = append(hull, upper[:len(upper)-1]...)
	}
	if len(hull) < 3 {
		return Empty(2)
	}
	return NewPolygonFromVertices(hull)
}

func monotoneChain(pts []numeric.Vector) []numeric.Vector {
	var chain []numeric.Vector
	for _, p := range pts {
		for len(chain) >= 2 {
			o := chain[len(chain)-2]
			a := chain[len(chain)-1]
			cross := signedArea(o, a, p)
			coincide := dist2D(a, p) < numeric.Epsilon
			if cross >= numeric.Epsilon && !coincide {
				break
			}
			chain = chain[:len(chain)-1]
		}
		chain = append(chain, p)
	}
	return chain
}

func signedArea(o, a, b numeric.Vector) float64 {
	return (a.At(0)-o.At(0))*(b.At(1)-o.At(1)) - (a.At(1)-o.At(1))*(b.At(0)-o.At(0))
}

func dist2D(a, b numeric.Vector) float64 {
	return numeric.Hypot2(a.At(0)-b.At(0), a.At(1)-b.At(1))
}

// noRedund2D reduces a canonically angle-ordered halfspace list to the
// Polygon it describes, or Empty(2) if infeasible or unbounded.
//
// Implementation note: rather than the source's incremental "tight loop"
// sweep-and-retry, this clips a sufficiently large bounding square by each
// halfspace in turn (Sutherland-Hodgman polygon clipping) and flags
// unboundedness by checking whether any surviving vertex still sits on the
// bounding square's extreme boundary. This produces the same canonical
// contract (non-redundant H-form, CCW V-form, Empty(2) on
// infeasible/unbounded) with a numerically robust, well-understood
// primitive instead of re-deriving the angle-sweep's retry logic.
func noRedund2D(hs []halfspace.Halfspace) Polytope {
	const big = 1e6
	verts := []numeric.Vector{
		numeric.NewVector(-big, -big),
		numeric.NewVector(big, -big),
		numeric.NewVector(big, big),
		numeric.NewVector(-big, big),
	}
	for _, h := range hs {
		if h.IsTrivial() {
			continue
		}
		if h.IsInfeasible() {
			return Empty(2)
		}
		verts = clipConvexByHalfspace(verts, h)
		verts = dedupeCoincident(verts)
		if len(verts) < 3 {
			return Empty(2)
		}
	}
	for _, v := range verts {
		if math.Abs(v.At(0)) >= big*0.999 || math.Abs(v.At(1)) >= big*0.999 {
			return Empty(2) // unbounded regions are out of scope for this package
		}
	}
	return NewPolygonFromVertices(verts)
}

// clipConvexByHalfspace clips a CCW convex polygon by a single halfspace
// (Sutherland-Hodgman), returning the (still CCW) surviving vertex list.
func clipConvexByHalfspace(verts []numeric.Vector, h halfspace.Halfspace) []numeric.Vector {
	n := len(verts)
	if n == 0 {
		return nil
	}
	out := make([]numeric.Vector, 0, n+1)
	for i := 0; i < n; i++ {
		cur := verts[i]
		nxt := verts[(i+1)%n]
		curIn := h.Contains(cur)
		nxtIn := h.Contains(nxt)
		if curIn {
			out = append(out, cur)
		}
		if curIn != nxtIn {
			out = append(out, edgeHalfspaceIntersection(cur, nxt, h))
		}
	}
	return out
}

func edgeHalfspaceIntersection(a, b numeric.Vector, h halfspace.Halfspace) numeric.Vector {
	n := h.Normal()
	na, _ := n.Dot(a)
	diff, _ := b.Sub(a)
	nd, _ := n.Dot(diff)
	t := (h.Offset() - na) / nd
	scaled := diff.Scale(t)
	res, _ := a.Add(scaled)
	return res
}

func dedupeCoincident(verts []numeric.Vector) []numeric.Vector {
	if len(verts) == 0 {
		return verts
	}
	out := make([]numeric.Vector, 0, len(verts))
	for i, v := range verts {
		prev := verts[(i-1+len(verts))%len(verts)]
		if i == 0 || dist2D(v, prev) >= numeric.Epsilon {
			out = append(out, v)
		}
	}
	if len(out) > 1 && dist2D(out[0], out[len(out)-1]) < numeric.Epsilon {
		out = out[:len(out)-1]
	}
	return out
}
