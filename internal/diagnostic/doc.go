// Package diagnostic provides the append-only diagnostic stream of the
// conversion pipeline.
//
// The sink is an explicit dependency threaded through every conversion
// entry point rather than an implicit global stream, so tests can capture
// and assert on diagnostic output deterministically. One line is appended
// per ignored record; implementations must keep lines atomic when
// independent conversions interleave.
package diagnostic
