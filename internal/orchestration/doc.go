// Package orchestration coordinates concurrent execution of path-sum solvers
// and cross-checks their results for agreement. It decouples business logic
// from reporting via the ProgressReporter interface.
package orchestration
