// Package bidicaret moves a caret visually through a single line of mixed
// left-to-right and right-to-left text.
//
// The work is done by the subpackages: bidi resolves the run order, layout
// soft-wraps the line into rows and motion computes caret moves. Line ties
// them together for callers that just want a caret on a string.
package bidicaret
