// Package sampling provides the random draws used by centroid initialization
// (uniform integer and weight-proportional index) and the arg-min helper used
// by the assign phase.
package sampling
