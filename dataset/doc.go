// Package dataset defines the read-only point source consumed by the
// clustering engine and a dense in-memory implementation.
//
// Rows are addressed by index in [0, Len()). Implementations must return the
// same values for the same index for the whole duration of a clustering run
// and must be safe for concurrent readers.
package dataset
