// Package replicator materializes a source file at its destination.
//
// Strategies (hardlink, softlink, copy) are tried in order by a Chain until
// one succeeds. Every chain ends with the none replicator, which always
// fails, so exhausting the chain surfaces as a REPLICATORS_EXHAUSTED error
// carrying each strategy's failure.
package replicator
