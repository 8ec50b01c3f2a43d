package triangle

import (
	"fmt"
	"sort"
	"strings"

	apperrors "github.com/agbru/tricalc/internal/errors"
)

// SolverFactory provides named access to registered solvers. Registry keys
// are the lowercase Algo* constants, not the display names returned by
// Solver.Name.
type SolverFactory interface {
	// Get returns the solver registered under key.
	Get(key string) (Solver, error)

	// MustGet returns the solver registered under key and panics when the
	// key is unknown. Reserved for callers holding a known-good key.
	MustGet(key string) Solver

	// List returns the registered keys in sorted order.
	List() []string

	// GetAll returns every registered solver in List order.
	GetAll() []Solver
}

// DefaultFactory is the standard registry holding the three built-in
// strategies. The zero value is not usable; construct with
// NewDefaultFactory.
type DefaultFactory struct {
	solvers map[string]Solver
}

// NewDefaultFactory returns a registry with the built-in strategies
// registered under AlgoNaive, AlgoMemoized, and AlgoIterative.
func NewDefaultFactory() *DefaultFactory {
	return &DefaultFactory{
		solvers: map[string]Solver{
			AlgoNaive:     NewSolver(&NaiveSplit{}),
			AlgoMemoized:  NewSolver(&MemoizedTopDown{}),
			AlgoIterative: NewSolver(&IterativeBottomUp{}),
		},
	}
}

// Get implements SolverFactory.
func (f *DefaultFactory) Get(key string) (Solver, error) {
	if s, ok := f.solvers[strings.ToLower(key)]; ok {
		return s, nil
	}
	return nil, apperrors.NewConfigError(
		"unknown algorithm %q (available: %s)", key, strings.Join(f.List(), ", "))
}

// MustGet implements SolverFactory.
func (f *DefaultFactory) MustGet(key string) Solver {
	s, err := f.Get(key)
	if err != nil {
		panic(fmt.Sprintf("triangle: %v", err))
	}
	return s
}

// List implements SolverFactory.
func (f *DefaultFactory) List() []string {
	keys := make([]string, 0, len(f.solvers))
	for k := range f.solvers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetAll implements SolverFactory.
func (f *DefaultFactory) GetAll() []Solver {
	keys := f.List()
	solvers := make([]Solver, 0, len(keys))
	for _, k := range keys {
		solvers = append(solvers, f.solvers[k])
	}
	return solvers
}

// Register adds or replaces a solver under the given key. Hosts use it to
// extend the registry with experimental strategies.
func (f *DefaultFactory) Register(key string, s Solver) {
	f.solvers[strings.ToLower(key)] = s
}

// globalFactory backs GlobalFactory. Solvers are stateless, so one shared
// registry serves the whole process.
var globalFactory = NewDefaultFactory()

// GlobalFactory returns the process-wide default registry.
func GlobalFactory() SolverFactory {
	return globalFactory
}
