package causal

import (
	"errors"

	"github.com/AmirZur/CausalAbstraction/cdag"
)

// Per-call errors. A failing call aborts with no partial Assignment; the
// Model's static state is untouched and remains usable.
var (
	// ErrMissingInput is returned when a root variable has no explicit
	// input, no override, and no sampler mechanism.
	ErrMissingInput = errors.New("missing input for root variable")

	// ErrDomainViolation is returned in strict-domains mode when a computed
	// or supplied value falls outside a variable's declared domain.
	ErrDomainViolation = errors.New("value outside declared domain")

	// ErrNotRoot is returned when a base input names a derived variable.
	// Derived variables can only be forced via an intervention.
	ErrNotRoot = errors.New("input supplied for non-root variable")
)

// Construction-time errors, re-exported from cdag so callers of New can
// check them without importing the graph package.
var (
	ErrCycleDetected    = cdag.ErrCycleDetected
	ErrUnknownVariable  = cdag.ErrUnknownVariable
	ErrArityMismatch    = cdag.ErrArityMismatch
	ErrVariableExists   = cdag.ErrVariableExists
	ErrMissingMechanism = cdag.ErrMissingMechanism
	ErrInvalidVarID     = cdag.ErrInvalidVarID
)
