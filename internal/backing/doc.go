// Package backing selects the implementation behind expected.Expected.
//
// The tagged implementation is used by default. Building with the
// expected_boxed tag switches every alias in this package to the boxed
// fallback; callers never see which one is in use except through Name and
// Fallback.
package backing
