// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.

package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the non-negative tolerance below which a pivot or
	// column norm is treated as zero by the decomposition kernels in
	// matrix/ops. It is deliberately tight; raise it for noisy data.
	DefaultEpsilon = 1e-12

	// DefaultValidateNaNInf toggles strict finite-value validation on
	// FromRows ingestion. When enabled, NaN and ±Inf are rejected with
	// ErrNaNInf before any storage is allocated into the result.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// Eps reports the configured zero tolerance.
// Complexity: O(1).
func (o Options) Eps() float64 { return o.eps }

// ValidateNaNInf reports whether strict finite-value validation is enabled.
// Complexity: O(1).
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// NewOptions resolves opts over the documented defaults and returns the
// effective configuration. Deterministic: options apply in argument order.
// Complexity: O(len(opts)).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies opts over defaultOptions in order.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// defaultOptions mirrors the Default* constants exactly.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the zero tolerance eps used by pivot and rank checks.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on NaN, ±Inf or negative eps.
//   - eps == 0 requests exact zero pivots only (no numerical slack).
//
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if ValidateFinite(eps) != nil || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon
	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation on ingestion.
// This is the default; use WithNoValidateNaNInf to relax.
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Intended for ingesting external data with known ±Inf placeholders that the
// caller sanitizes afterwards; decomposition of such data is undefined.
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}
