package cdag

import (
	"errors"
	"testing"

	"github.com/AmirZur/CausalAbstraction/cmech"
	"github.com/alecthomas/assert/v2"
)

func TestNewBuilder(t *testing.T) {
	b := NewBuilder()
	assert.NotZero(t, b)
	assert.NotZero(t, b.GetGraph())
	// Maps are initialized (not nil)
	assert.NotEqual(t, (map[VarID]*Variable)(nil), b.GetGraph().Vars)
}

func TestAddRoot(t *testing.T) {
	t.Run("valid root registration", func(t *testing.T) {
		b := NewBuilder()
		err := b.AddRoot("A", nil, cmech.Const(0))
		assert.NoError(t, err)

		v, exists := b.GetVariable("A")
		assert.True(t, exists)
		assert.Equal(t, KindRoot, v.Kind())
		assert.Equal(t, 0, len(v.Parents))
	})

	t.Run("root without mechanism", func(t *testing.T) {
		b := NewBuilder()
		assert.NoError(t, b.AddRoot("A", nil, nil))

		_, err := b.Build()
		assert.NoError(t, err)
	})

	t.Run("duplicate variable name", func(t *testing.T) {
		b := NewBuilder()
		assert.NoError(t, b.AddRoot("A", nil, nil))

		err := b.AddRoot("A", nil, nil)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrVariableExists))
	})

	t.Run("invalid variable name", func(t *testing.T) {
		b := NewBuilder()

		assert.True(t, errors.Is(b.AddRoot("", nil, nil), ErrInvalidVarID))
		assert.True(t, errors.Is(b.AddRoot("has space", nil, nil), ErrInvalidVarID))
	})
}

func TestAddDerived(t *testing.T) {
	t.Run("valid derived registration", func(t *testing.T) {
		b := NewBuilder()
		assert.NoError(t, b.AddRoot("A", nil, nil))
		assert.NoError(t, b.AddRoot("B", nil, nil))

		err := b.AddDerived("sum", nil, cmech.Pure2(func(a, b int) int { return a + b }), "A", "B")
		assert.NoError(t, err)

		dag, err := b.Build()
		assert.NoError(t, err)

		// Verify parent-child relationship, in declared order
		v, _ := dag.Variable("sum")
		assert.Equal(t, []VarID{"A", "B"}, v.Parents)
		a, _ := dag.Variable("A")
		assert.Equal(t, []VarID{"sum"}, a.Children)
	})

	t.Run("no parents", func(t *testing.T) {
		b := NewBuilder()
		err := b.AddDerived("sum", nil, cmech.Identity())
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidGraph))
	})

	t.Run("unknown parent detected at build", func(t *testing.T) {
		b := NewBuilder()
		assert.NoError(t, b.AddDerived("child", nil, cmech.Identity(), "nonexistent"))

		_, err := b.Build()
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownVariable))
	})

	t.Run("child registered before parent", func(t *testing.T) {
		b := NewBuilder()
		assert.NoError(t, b.AddDerived("child", nil, cmech.Identity(), "root"))
		assert.NoError(t, b.AddRoot("root", nil, nil))

		_, err := b.Build()
		assert.NoError(t, err)
	})
}

func TestBuildMechanismValidation(t *testing.T) {
	t.Run("arity mismatch", func(t *testing.T) {
		b := NewBuilder()
		assert.NoError(t, b.AddRoot("A", nil, nil))
		assert.NoError(t, b.AddRoot("B", nil, nil))
		// One-argument mechanism for a two-parent variable
		assert.NoError(t, b.AddDerived("sum", nil, cmech.Identity(), "A", "B"))

		_, err := b.Build()
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrArityMismatch))
	})

	t.Run("sampler on derived variable", func(t *testing.T) {
		b := NewBuilder()
		assert.NoError(t, b.AddRoot("A", nil, nil))
		assert.NoError(t, b.AddDerived("child", nil, cmech.Const(1), "A"))

		_, err := b.Build()
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrArityMismatch))
	})

	t.Run("missing mechanism on derived variable", func(t *testing.T) {
		b := NewBuilder()
		assert.NoError(t, b.AddRoot("A", nil, nil))
		assert.NoError(t, b.AddDerived("child", nil, nil, "A"))

		_, err := b.Build()
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingMechanism))
	})

	t.Run("all mechanism errors reported at once", func(t *testing.T) {
		b := NewBuilder()
		assert.NoError(t, b.AddRoot("A", nil, nil))
		assert.NoError(t, b.AddDerived("one", nil, nil, "A"))
		assert.NoError(t, b.AddDerived("two", nil, cmech.Pure2(func(a, b int) int { return a + b }), "A"))

		_, err := b.Build()
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingMechanism))
		assert.True(t, errors.Is(err, ErrArityMismatch))
	})

	t.Run("zero-arity pure mechanism allowed on root", func(t *testing.T) {
		b := NewBuilder()
		assert.NoError(t, b.AddRoot("A", nil, cmech.NewPure(0, func([]any) (any, error) { return 42, nil })))

		_, err := b.Build()
		assert.NoError(t, err)
	})
}

func TestMustBuild(t *testing.T) {
	t.Run("panics on invalid graph", func(t *testing.T) {
		b := NewBuilder()
		assert.NoError(t, b.AddDerived("child", nil, cmech.Identity(), "nonexistent"))

		assert.Panics(t, func() {
			b.MustBuild()
		})
	})

	t.Run("returns DAG on valid graph", func(t *testing.T) {
		b := NewBuilder()
		assert.NoError(t, b.AddRoot("A", nil, nil))
		dag := b.MustBuild()
		assert.Equal(t, 1, dag.Len())
	})
}
