// Package motion computes where a caret lands after one visual step inside
// a line that mixes left-to-right and right-to-left runs.
//
// The package is pure: callers pass the line text, its run Order, a
// RowMeasurer for soft-wrapped rows and optionally a Stepper, and get back a
// Caret. A move that cannot stay on the line returns NoCaret, which tells
// the caller to continue on the neighbouring line (or stop at the document
// edge). Row lookups are memoized for the duration of a single call only.
package motion
