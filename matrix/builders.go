// Package matrix — constructors ("Generating Matrices").
//
// Purpose:
//   - Provide thin, well-documented builders for the common starting shapes.
//   - Avoid any logic duplication — each builder delegates to NewDense and
//     writes values with deterministic loop orders.
//
// Determinism & Policy:
//   - NewRandom takes the caller's *rand.Rand; the package never touches the
//     global math/rand state, keeping builds reproducible under a fixed seed.
//   - FromRows enforces rectangularity and, under the default numeric policy,
//     rejects NaN/±Inf before allocating the result's final contents.

package matrix

import "math/rand"

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(rows*cols) zero-init (constructor).
func NewZeros(rows, cols int) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(rows, cols)
}

// NewOnes returns a rows×cols matrix with every element set to 1.
// Complexity: O(rows*cols).
func NewOnes(rows, cols int) (*Dense, error) {
	// Allocate a zero matrix via the constructor.
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Fill the flat backing slice in a single deterministic pass.
	for i := range m.data {
		m.data[i] = 1.0
	}

	return m, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = 1.0
	}

	// Return the identity matrix.
	return I, nil
}

// NewRandom returns a rows×cols matrix filled from rng (uniform [0, 1)).
// The caller owns the source; pass rand.New(rand.NewSource(seed)) for
// reproducible fills. rng must be non-nil.
// Complexity: O(rows*cols).
func NewRandom(rows, cols int, rng *rand.Rand) (*Dense, error) {
	// Allocate a zero matrix via the constructor.
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	// Fill the flat backing slice in row-major order.
	for i := range m.data {
		m.data[i] = rng.Float64()
	}

	return m, nil
}

// FromRows builds a *Dense from a 2D slice, copying every value.
// Stage 1 (Validate): non-empty input, rectangular rows, finite values
// (under the numeric policy; see WithNoValidateNaNInf).
// Stage 2 (Prepare): allocate the result.
// Stage 3 (Execute): copy row by row into the flat backing slice.
// Errors: ErrInvalidDimensions, ErrNotRectangular, ErrNaNInf.
// Complexity: O(rows*cols) time and memory.
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	// Validate outer shape: at least one row with at least one column.
	r := len(rows)
	if r == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	c := len(rows[0])

	// Validate rectangularity and (optionally) finiteness before allocating.
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, ErrNotRectangular
		}
		if o.validateNaNInf {
			for j = 0; j < c; j++ {
				if err := ValidateFinite(rows[i][j]); err != nil {
					return nil, err
				}
			}
		}
	}

	// Allocate and copy row by row.
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i = 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}
