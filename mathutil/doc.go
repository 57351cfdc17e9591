// Package mathutil provides the special math functions consumed by the
// grammar-induction engine: uniform random draws, the binomial probability mass
// used by the pattern-significance test, and log-gamma family helpers.
//
// All functions are pure; the only state is the package-level random source,
// which callers may reseed via Seed for reproducible runs.
package mathutil
