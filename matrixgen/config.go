package matrixgen

import "math/rand"

// Option customizes a generator run by mutating a config before
// generation begins. Mirrors lvlath builder.BuilderOption.
type Option func(cfg *config)

// config holds the resolved parameters for one Generate call.
type config struct {
	rng          *rand.Rand
	density      float64
	blockR       int
	blockC       int
	blockDensity float64
}

// newConfig returns a config initialized with defaults (density 0.1, no
// block structure, a time-independent-but-unseeded rng left nil until a
// caller supplies WithSeed), then applies opts in order.
func newConfig(opts ...Option) *config {
	cfg := &config{
		density: 0.1,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed seeds the generator's random source deterministically. Use
// this in tests to lock the produced matrix.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDensity sets the independent per-cell inclusion probability for
// the uniform Erdos-Renyi-like model. p outside [0,1] is clamped into
// range rather than rejected, matching builder's "option constructors
// never panic at runtime" discipline for continuously-valued knobs.
func WithDensity(p float64) Option {
	return func(cfg *config) {
		if p < 0 {
			p = 0
		}
		if p > 1 {
			p = 1
		}
		cfg.density = p
	}
}

// WithBlockStructure switches Generate to the aligned block-structured
// model: the matrix is partitioned into r x c blocks, and each block is
// either entirely filled or entirely empty, chosen independently with
// probability blockDensity. r,c<=0 disables the block model (falls back
// to uniform density).
func WithBlockStructure(r, c int, blockDensity float64) Option {
	return func(cfg *config) {
		if r <= 0 || c <= 0 {
			cfg.blockR, cfg.blockC = 0, 0
			return
		}
		if blockDensity < 0 {
			blockDensity = 0
		}
		if blockDensity > 1 {
			blockDensity = 1
		}
		cfg.blockR, cfg.blockC = r, c
		cfg.blockDensity = blockDensity
	}
}
