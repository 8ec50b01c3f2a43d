package orchestration

import "github.com/agbru/tricalc/internal/triangle"

// AlgoAll selects every registered solver for a comparison run.
const AlgoAll = "all"

// GetSolversToRun determines which solvers should be executed for the given
// algorithm selection. Returns solvers in alphabetically sorted key order
// for consistent, reproducible behavior.
//
// Parameters:
//   - algorithm: A registry key, or AlgoAll for every registered solver.
//   - factory: The solver factory to retrieve implementations from.
//
// Returns:
//   - []triangle.Solver: A slice of solvers to execute. Nil when the key is
//     unknown.
func GetSolversToRun(algorithm string, factory triangle.SolverFactory) []triangle.Solver {
	if algorithm == AlgoAll {
		return factory.GetAll()
	}
	if s, err := factory.Get(algorithm); err == nil {
		return []triangle.Solver{s}
	}
	return nil
}
