package triangle

import apperrors "github.com/agbru/tricalc/internal/errors"

// Options carries the per-solve capacity limits. The zero value selects the
// package defaults, so callers can pass Options{} and get sane behavior.
type Options struct {
	// MaxRows caps the height of admitted triangles for every solver.
	// Zero means DefaultMaxRows.
	MaxRows int

	// MaxRecursionRows caps the height accepted by the recursive solvers,
	// which burn one stack frame per row and cache up to one cell per
	// position. Zero means DefaultMaxRecursionRows.
	MaxRecursionRows int
}

// DefaultOptions returns the package defaults as explicit values.
func DefaultOptions() Options {
	return Options{
		MaxRows:          DefaultMaxRows,
		MaxRecursionRows: DefaultMaxRecursionRows,
	}
}

// Validate rejects limits that no solver could honor.
//
// Returns:
//   - error: A ConfigError describing the problem, or nil.
func (o Options) Validate() error {
	if o.MaxRows < 0 {
		return apperrors.NewConfigError("max rows must not be negative, got %d", o.MaxRows)
	}
	if o.MaxRecursionRows < 0 {
		return apperrors.NewConfigError("max recursion rows must not be negative, got %d", o.MaxRecursionRows)
	}
	return nil
}

// withDefaults replaces zero fields with the package defaults.
func (o Options) withDefaults() Options {
	if o.MaxRows == 0 {
		o.MaxRows = DefaultMaxRows
	}
	if o.MaxRecursionRows == 0 {
		o.MaxRecursionRows = DefaultMaxRecursionRows
	}
	return o
}

// checkRows enforces the general admission limit.
func (o Options) checkRows(rows int) error {
	if rows > o.MaxRows {
		return apperrors.ResourceLimitError{
			Resource:  "rows",
			Requested: rows,
			Limit:     o.MaxRows,
		}
	}
	return nil
}

// checkRecursionRows enforces the limit protecting recursive solvers.
func (o Options) checkRecursionRows(rows int) error {
	if rows > o.MaxRecursionRows {
		return apperrors.ResourceLimitError{
			Resource:  "recursion rows",
			Requested: rows,
			Limit:     o.MaxRecursionRows,
		}
	}
	return nil
}
