/*
Package phase derives an election's temporal phase (upcoming, active,
completed) from its time bounds and a caller-supplied instant.

The derivation is a pure function: no I/O, no stored state, and no
caching, so the phase is always consistent with wall-clock time without
a background job flipping stored status flags.
*/
package phase
