// Package expected provides Expected, a value holding either a result or an
// error, and the predicates generic code uses to recognise such values.
//
// Expected is an alias of whichever backing implementation was selected at
// build time (see BackingName). Code written against this package does not
// depend on that choice.
//
// Reading the side of an Expected that is not populated is a programming
// error: Value and Err panic with an error of class ErrBadAccess.
package expected

import (
	"github.com/Philanthropists/expected/internal/backing"
	"github.com/Philanthropists/expected/internal/types"
)

type (
	// Expected holds exactly one of a success value V or an error E. The
	// zero Expected holds the zero V.
	Expected[V, E any] = backing.Expected[V, E]

	// Unexpected tags an E as an error payload so it can't be mistaken for
	// a value at construction.
	Unexpected[E any] = backing.Unexpected[E]
)

const (
	// BackingName names the implementation behind Expected.
	BackingName = backing.Name

	// UsingFallback is true when the boxed fallback was selected with the
	// expected_boxed build tag.
	UsingFallback = backing.Fallback
)

// Error classes are shared with the backings, so they are exported as
// pointers to keep class identity.
var (
	ErrBadAccess  = &types.ErrBadAccess
	ErrUnexpected = &types.ErrUnexpected
	ErrDecode     = &types.ErrDecode
)

// New returns an Expected holding value.
func New[V, E any](value V) Expected[V, E] {
	return backing.New[V, E](value)
}

// FromUnexpected returns an Expected holding the error carried by u.
func FromUnexpected[V, E any](u Unexpected[E]) Expected[V, E] {
	return backing.FromUnexpected[V](u)
}

func MakeUnexpected[E any](err E) Unexpected[E] {
	return backing.MakeUnexpected(err)
}

// Fail is shorthand for FromUnexpected[V](MakeUnexpected(err)).
func Fail[V, E any](err E) Expected[V, E] {
	return FromUnexpected[V](MakeUnexpected(err))
}

// Equal reports whether a and b are in the same state with equal payloads.
func Equal[V, E comparable](a, b Expected[V, E]) bool {
	return EqualFunc(a, b,
		func(x, y V) bool { return x == y },
		func(x, y E) bool { return x == y },
	)
}

func EqualFunc[V, E any](a, b Expected[V, E], eqValue func(V, V) bool, eqErr func(E, E) bool) bool {
	if a.HasValue() != b.HasValue() {
		return false
	}

	if a.HasValue() {
		return eqValue(a.Value(), b.Value())
	}
	return eqErr(a.Err(), b.Err())
}
