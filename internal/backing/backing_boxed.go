//go:build expected_boxed

package backing

import "github.com/Philanthropists/expected/internal/backing/boxed"

const (
	Name     = boxed.Name
	Fallback = true
)

type (
	Expected[V, E any] = boxed.Expected[V, E]
	Unexpected[E any]  = boxed.Unexpected[E]
)

func New[V, E any](value V) Expected[V, E] {
	return boxed.New[V, E](value)
}

func FromUnexpected[V, E any](u Unexpected[E]) Expected[V, E] {
	return boxed.FromUnexpected[V](u)
}

func MakeUnexpected[E any](err E) Unexpected[E] {
	return boxed.MakeUnexpected(err)
}
