// Package datagen draws test signals and their difference matrices.
//
// Generate samples a vector X, builds D = diffmat.Diff(X) and optionally
// perturbs every entry of D with independent Gaussian noise. Sampling is
// deterministic: the same seed and options always produce the same Data.
//
// Seed policy (as in the tsp heuristics): seed 0 selects defaultSeed; any
// other seed is used verbatim. X and the noise come from two separate PCG
// streams of the same seed, so enabling noise never changes X.
package datagen

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/sigdiff/diffmat"
	"github.com/katalvlaran/sigdiff/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrBadSize is returned for a negative length.
var ErrBadSize = errors.New("datagen: n must be >= 0")

// DefaultNoise is the standard deviation enabled by WithDefaultNoise.
const DefaultNoise = 1e-5

const (
	defaultSeed uint64 = 1

	// PCG stream selectors.
	streamSignal uint64 = 0x9e3779b97f4a7c15
	streamNoise  uint64 = 0xbf58476d1ce4e5b9
)

// Data is a generated signal together with its (possibly noisy)
// difference matrix.
type Data struct {
	X []float64
	D *matrix.Dense
}

// Options configures Generate.
type Options struct {
	// Positive draws X from U[0,1) when true and from N(0,1) otherwise.
	Positive bool
	// Noise is the standard deviation of the elementwise perturbation of D.
	// Zero disables noise.
	Noise float64
	// Seed selects the random streams; 0 means defaultSeed.
	Seed uint64
	// MinZero shifts X so that min(X) = 0 before D is built.
	MinZero bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions: positive, noiseless, seed 0.
func DefaultOptions() Options { return Options{Positive: true} }

// WithPositive selects U[0,1) (true) or N(0,1) (false) for X.
func WithPositive(on bool) Option { return func(o *Options) { o.Positive = on } }

// WithNoise sets the noise standard deviation. Panics on a negative or
// non-finite scale.
func WithNoise(scale float64) Option {
	if scale < 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		panic("datagen: WithNoise: scale must be finite and >= 0")
	}

	return func(o *Options) { o.Noise = scale }
}

// WithDefaultNoise enables noise of standard deviation DefaultNoise.
func WithDefaultNoise() Option { return WithNoise(DefaultNoise) }

// WithSeed fixes the random streams.
func WithSeed(seed uint64) Option { return func(o *Options) { o.Seed = seed } }

// WithMinZero normalizes X so that its smallest entry is 0.
func WithMinZero() Option { return func(o *Options) { o.MinZero = true } }

// Generate returns a length-n signal and its difference matrix.
// n == 0 yields an empty X and a 0×0 D.
func Generate(n int, opts ...Option) (Data, error) {
	if n < 0 {
		return Data{}, fmt.Errorf("Generate(%d): %w", n, ErrBadSize)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	seed := o.Seed
	if seed == 0 {
		seed = defaultSeed
	}

	x := make([]float64, n)
	src := rand.NewPCG(seed, streamSignal)
	if o.Positive {
		u := distuv.Uniform{Min: 0, Max: 1, Src: src}
		for i := range x {
			x[i] = u.Rand()
		}
	} else {
		g := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
		for i := range x {
			x[i] = g.Rand()
		}
	}
	if o.MinZero && n > 0 {
		floats.AddConst(-floats.Min(x), x)
	}

	d := diffmat.Diff(x)
	if o.Noise > 0 {
		perturb(d, o.Noise, rand.NewPCG(seed, streamNoise))
	}

	return Data{X: x, D: d}, nil
}

// perturb adds N(0, sd) to every entry of d, diagonal included.
func perturb(d *matrix.Dense, sd float64, src rand.Source) {
	g := distuv.Normal{Mu: 0, Sigma: sd, Src: src}
	for i := 0; i < d.Rows(); i++ {
		for j := 0; j < d.Cols(); j++ {
			v, _ := d.At(i, j)
			_ = d.Set(i, j, v+g.Rand())
		}
	}
}
