package cmech

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// UniformChoice samples uniformly from a finite set of values, e.g. a
// variable's declared domain. Panics if no values are given; a sampler with
// nothing to sample from is a model-definition bug.
func UniformChoice(values ...any) *Sampler {
	if len(values) == 0 {
		panic("cmech: UniformChoice requires at least one value")
	}
	vs := make([]any, len(values))
	copy(vs, values)
	return &Sampler{sample: func(r *rand.Rand) any {
		return vs[r.Intn(len(vs))]
	}}
}

// Normal samples from a normal distribution with mean mu and standard
// deviation sigma.
func Normal(mu, sigma float64) *Sampler {
	return &Sampler{sample: func(r *rand.Rand) any {
		return distuv.Normal{Mu: mu, Sigma: sigma, Src: r}.Rand()
	}}
}

// Bernoulli samples 0 or 1 with success probability p, returned as int.
func Bernoulli(p float64) *Sampler {
	return &Sampler{sample: func(r *rand.Rand) any {
		return int(distuv.Bernoulli{P: p, Src: r}.Rand())
	}}
}

// Poisson samples a count from a Poisson distribution with rate lambda,
// returned as int.
func Poisson(lambda float64) *Sampler {
	return &Sampler{sample: func(r *rand.Rand) any {
		return int(distuv.Poisson{Lambda: lambda, Src: r}.Rand())
	}}
}

// Uniform samples a float64 uniformly from [min, max).
func Uniform(min, max float64) *Sampler {
	return &Sampler{sample: func(r *rand.Rand) any {
		return distuv.Uniform{Min: min, Max: max, Src: r}.Rand()
	}}
}
