// Package progress implements the observer pattern for solver progress
// reporting. Solver cores report through a plain callback; subjects fan the
// notifications out to channel, logging, or custom observers without the
// core knowing who is listening.
package progress
