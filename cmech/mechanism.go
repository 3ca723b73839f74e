// Package cmech defines the mechanism variants attached to causal-graph
// variables: zero-argument samplers for root variables and pure
// ordered-argument functions for derived variables. The engine treats a
// mechanism as opaque; only its declared arity matters for validation.
package cmech

import (
	"errors"
	"fmt"
	"reflect"

	"golang.org/x/exp/rand"
)

// Mechanism is either a *Sampler (arity 0, possibly stochastic) or a *Pure
// (ordered-argument function, deterministic given its arguments).
type Mechanism interface {
	// Arity returns the number of ordered arguments the mechanism expects.
	Arity() int
}

// Pure is a side-effect-free function of its variable's parent values, bound
// by position to the declared parent order. Any non-determinism in a model
// belongs to Sampler mechanisms, never here.
type Pure struct {
	arity int
	call  func(args []any) (any, error)
}

// Arity returns the number of ordered arguments the function expects.
func (p *Pure) Arity() int { return p.arity }

// Call invokes the function with parent values in declared parent order.
// Returns ErrArgumentCount if the argument count differs from the arity.
func (p *Pure) Call(args []any) (any, error) {
	if len(args) != p.arity {
		return nil, fmt.Errorf("%w: got %d arguments, expected %d", ErrArgumentCount, len(args), p.arity)
	}
	return p.call(args)
}

// NewPure wraps an untyped function body with an explicit arity.
func NewPure(arity int, fn func(args []any) (any, error)) *Pure {
	return &Pure{arity: arity, call: fn}
}

// Func builds a Pure mechanism from an arbitrary Go function via reflection.
// fn must be a non-variadic func returning one value, or a value and an
// error. The arity is captured from the function signature, so arity
// mismatches against the parent list are caught at model construction.
func Func(fn any) (*Pure, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: got %T", ErrNotFunction, fn)
	}
	t := v.Type()
	if t.IsVariadic() {
		return nil, fmt.Errorf("%w: variadic functions are not allowed", ErrBadSignature)
	}
	returnsErr := false
	switch t.NumOut() {
	case 1:
	case 2:
		if t.Out(1) != reflect.TypeOf((*error)(nil)).Elem() {
			return nil, fmt.Errorf("%w: second result must be error, got %v", ErrBadSignature, t.Out(1))
		}
		returnsErr = true
	default:
		return nil, fmt.Errorf("%w: must return one value or (value, error)", ErrBadSignature)
	}

	arity := t.NumIn()
	return &Pure{
		arity: arity,
		call: func(args []any) (any, error) {
			in := make([]reflect.Value, arity)
			for i, arg := range args {
				av := reflect.ValueOf(arg)
				if !av.IsValid() {
					// Untyped nil argument; substitute the zero value.
					av = reflect.Zero(t.In(i))
				}
				if !av.Type().AssignableTo(t.In(i)) {
					return nil, argTypeError(i, arg, t.In(i))
				}
				in[i] = av
			}
			out := v.Call(in)
			if returnsErr && !out[1].IsNil() {
				return nil, out[1].Interface().(error)
			}
			return out[0].Interface(), nil
		},
	}, nil
}

// MustFunc is like Func but panics on error.
func MustFunc(fn any) *Pure {
	p, err := Func(fn)
	if err != nil {
		panic(err)
	}
	return p
}

// Pure1 builds a typed single-argument mechanism without reflection.
func Pure1[A, R any](f func(A) R) *Pure {
	return &Pure{
		arity: 1,
		call: func(args []any) (any, error) {
			a, ok := args[0].(A)
			if !ok {
				return nil, argTypeError(0, args[0], reflect.TypeOf((*A)(nil)).Elem())
			}
			return f(a), nil
		},
	}
}

// Pure2 builds a typed two-argument mechanism without reflection.
func Pure2[A, B, R any](f func(A, B) R) *Pure {
	return &Pure{
		arity: 2,
		call: func(args []any) (any, error) {
			a, ok := args[0].(A)
			if !ok {
				return nil, argTypeError(0, args[0], reflect.TypeOf((*A)(nil)).Elem())
			}
			b, ok := args[1].(B)
			if !ok {
				return nil, argTypeError(1, args[1], reflect.TypeOf((*B)(nil)).Elem())
			}
			return f(a, b), nil
		},
	}
}

// Pure3 builds a typed three-argument mechanism without reflection.
func Pure3[A, B, C, R any](f func(A, B, C) R) *Pure {
	return &Pure{
		arity: 3,
		call: func(args []any) (any, error) {
			a, ok := args[0].(A)
			if !ok {
				return nil, argTypeError(0, args[0], reflect.TypeOf((*A)(nil)).Elem())
			}
			b, ok := args[1].(B)
			if !ok {
				return nil, argTypeError(1, args[1], reflect.TypeOf((*B)(nil)).Elem())
			}
			c, ok := args[2].(C)
			if !ok {
				return nil, argTypeError(2, args[2], reflect.TypeOf((*C)(nil)).Elem())
			}
			return f(a, b, c), nil
		},
	}
}

// Identity passes a single parent value through unchanged.
func Identity() *Pure {
	return &Pure{
		arity: 1,
		call: func(args []any) (any, error) {
			return args[0], nil
		},
	}
}

// Sampler is a zero-argument mechanism for root variables. It may be
// stochastic; the random source is injected per call so runs with equal
// seeds are reproducible.
type Sampler struct {
	sample func(r *rand.Rand) any
}

// Arity returns 0; samplers never read parent values.
func (s *Sampler) Arity() int { return 0 }

// Sample draws a value using the injected random source.
func (s *Sampler) Sample(r *rand.Rand) any {
	return s.sample(r)
}

// NewSampler wraps a sampling function.
func NewSampler(f func(r *rand.Rand) any) *Sampler {
	return &Sampler{sample: f}
}

// Const is a degenerate sampler that always returns v. Useful for root
// variables with a fixed default that can still be overridden by inputs.
func Const(v any) *Sampler {
	return &Sampler{sample: func(*rand.Rand) any { return v }}
}

func argTypeError(pos int, got any, want reflect.Type) error {
	return fmt.Errorf("%w: argument %d is %T, expected %v", ErrArgumentType, pos, got, want)
}

// Sentinel errors for mechanism construction and invocation.
var (
	ErrNotFunction   = errors.New("mechanism is not a function")
	ErrBadSignature  = errors.New("unsupported mechanism signature")
	ErrArgumentCount = errors.New("wrong argument count")
	ErrArgumentType  = errors.New("wrong argument type")
)
