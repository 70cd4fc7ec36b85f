// Package boxed implements an expected that keeps its error behind a
// pointer. A nil box means the expected holds a value.
package boxed

import (
	"fmt"

	"github.com/Philanthropists/expected/internal/types"
	"github.com/Philanthropists/expected/internal/wire"
)

const Name = "boxed"

type Unexpected[E any] struct {
	err E
}

func MakeUnexpected[E any](err E) Unexpected[E] {
	return Unexpected[E]{err: err}
}

func (u Unexpected[E]) Err() E {
	return u.err
}

type Expected[V, E any] struct {
	value V
	box   *E
}

func New[V, E any](value V) Expected[V, E] {
	return Expected[V, E]{value: value}
}

func FromUnexpected[V, E any](u Unexpected[E]) Expected[V, E] {
	err := u.err
	return Expected[V, E]{box: &err}
}

func (x Expected[V, E]) HasValue() bool {
	return x.box == nil
}

func (x Expected[V, E]) Value() V {
	if x.box != nil {
		panic(types.ErrBadAccess.New("Value called on an expected holding %v", *x.box))
	}
	return x.value
}

func (x Expected[V, E]) Err() E {
	if x.box == nil {
		panic(types.ErrBadAccess.New("Err called on an expected holding a value"))
	}
	return *x.box
}

func (x Expected[V, E]) Backing() string {
	return Name
}

func (x Expected[V, E]) String() string {
	if x.box != nil {
		return fmt.Sprintf("unexpected(%v)", *x.box)
	}
	return fmt.Sprintf("expected(%v)", x.value)
}

func (x Expected[V, E]) MarshalJSON() ([]byte, error) {
	if x.box != nil {
		return wire.Marshal(false, nil, *x.box)
	}
	return wire.Marshal(true, x.value, nil)
}

func (x *Expected[V, E]) UnmarshalJSON(data []byte) error {
	if wire.Null(data) {
		return nil
	}

	value, err, ok, decodeErr := wire.Unmarshal[V, E](data)
	if decodeErr != nil {
		return decodeErr
	}

	if ok {
		*x = New[V, E](value)
	} else {
		*x = FromUnexpected[V](MakeUnexpected(err))
	}
	return nil
}
