// Package sort computes the destination of source files and replicates
// them there.
//
// Sorting a single file runs a fixed sequence of stages: build the variable
// context, render the destination template, skip when the destination is
// the source itself, handle an existing destination according to the
// overwrite setting, create parent directories and replicate. A failure
// in any stage stops that file only; errors carry the stage, the source and,
// when known, the destination.
package sort
