//go:build !expected_boxed

package backing

import "github.com/Philanthropists/expected/internal/backing/tagged"

const (
	Name     = tagged.Name
	Fallback = false
)

type (
	Expected[V, E any] = tagged.Expected[V, E]
	Unexpected[E any]  = tagged.Unexpected[E]
)

func New[V, E any](value V) Expected[V, E] {
	return tagged.New[V, E](value)
}

func FromUnexpected[V, E any](u Unexpected[E]) Expected[V, E] {
	return tagged.FromUnexpected[V](u)
}

func MakeUnexpected[E any](err E) Unexpected[E] {
	return tagged.MakeUnexpected(err)
}
