// SPDX-License-Identifier: MIT

package refinement

// PostProcessing selects what Run does with the leftover pieces after
// composing every refinery's done region: keep them all (PostNone) or
// drop any piece smaller than the small-volume threshold, always keeping
// the largest piece (PostSuppress).
type PostProcessing int

const (
	PostNone PostProcessing = iota
	PostSuppress
)

// smallVolumeThreshold is the heuristic cutoff WithDontRefineSmall and
// PostSuppress use to decide a piece isn't worth keeping separate. It is
// not part of the τ contract (numeric.Epsilon): τ decides geometric
// equality/emptiness, this decides whether a genuinely non-empty sliver
// is useful to a downstream solver.
const smallVolumeThreshold = 1e-4

// layering holds the parameters of WithLayering.
type layering struct {
	generator string
	scaling   float64
	min, max  int
}

// config is the private, fully-resolved settings object built by applying
// a slice of Option values, mirroring builder.builderConfig's shape.
type config struct {
	expandTarget    bool
	dontRefineSmall bool
	postProcessing  PostProcessing
	layering        *layering
}

// Option configures a refinement Run, following builder.BuilderOption's
// exact shape: a function closing over the config it mutates, applied in
// order, panicking immediately on a nonsensical value rather than
// deferring the complaint to Run.
type Option func(*config)

// WithExpandTarget dilates every refinery's target union by a small fixed
// buffer before computing Attr/PreR against it, closing the thin boundary
// slivers that exact-arithmetic-adjacent floating point would otherwise
// leave undecided between a cell and its robust predecessor.
func WithExpandTarget() Option {
	return func(c *config) { c.expandTarget = true }
}

// WithDontRefineSmall folds a refinery's done output back into the
// remainder whenever its volume is below smallVolumeThreshold, preferring
// one coarse cell over many negligible fragments.
func WithDontRefineSmall() Option {
	return func(c *config) { c.dontRefineSmall = true }
}

// WithPostProcessing sets what happens to the final leftover pieces.
// Panics if mode is not one of PostNone or PostSuppress.
func WithPostProcessing(mode PostProcessing) Option {
	if mode != PostNone && mode != PostSuppress {
		panic("refinement.WithPostProcessing: unknown post-processing mode")
	}
	return func(c *config) { c.postProcessing = mode }
}

// WithLayering configures the Layered refinery's generator. generator must
// be "PreR" (the only supported generator); scaling must lie in
// [0, 1] and shrinks the disturbance set W before each PreR step; max
// bounds the number of nested rings produced, and min is validated
// (0 <= min <= max) but does not set a lower bound on the ring count.
// Panics on any value outside those ranges.
func WithLayering(generator string, scaling float64, min, max int) Option {
	if generator != "PreR" {
		panic("refinement.WithLayering: unsupported generator " + generator)
	}
	if scaling < 0 || scaling > 1 {
		panic("refinement.WithLayering: scaling must lie in [0, 1]")
	}
	if min < 0 || max < min {
		panic("refinement.WithLayering: invalid range [min, max]")
	}
	return func(c *config) {
		c.layering = &layering{generator: generator, scaling: scaling, min: min, max: max}
	}
}

// newConfig applies opts over a zero-value config in order.
func newConfig(opts ...Option) *config {
	c := &config{postProcessing: PostNone}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
