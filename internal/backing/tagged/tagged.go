// Package tagged implements an expected as a struct carrying both payload
// slots and an explicit discriminant.
package tagged

import (
	"fmt"

	"github.com/Philanthropists/expected/internal/types"
	"github.com/Philanthropists/expected/internal/wire"
)

const Name = "tagged"

// Unexpected marks an E as an error payload.
type Unexpected[E any] struct {
	err E
}

func MakeUnexpected[E any](err E) Unexpected[E] {
	return Unexpected[E]{err: err}
}

func (u Unexpected[E]) Err() E {
	return u.err
}

// Expected holds either a V or an E. The zero value holds the zero V.
type Expected[V, E any] struct {
	value  V
	err    E
	failed bool
}

func New[V, E any](value V) Expected[V, E] {
	return Expected[V, E]{value: value}
}

func FromUnexpected[V, E any](u Unexpected[E]) Expected[V, E] {
	return Expected[V, E]{err: u.err, failed: true}
}

func (x Expected[V, E]) HasValue() bool {
	return !x.failed
}

// Value returns the success payload. It panics with an
// types.ErrBadAccess error if x holds an error.
func (x Expected[V, E]) Value() V {
	if x.failed {
		panic(types.ErrBadAccess.New("Value called on an expected holding %v", x.err))
	}
	return x.value
}

// Err returns the error payload. It panics with an types.ErrBadAccess
// error if x holds a value.
func (x Expected[V, E]) Err() E {
	if !x.failed {
		panic(types.ErrBadAccess.New("Err called on an expected holding a value"))
	}
	return x.err
}

func (x Expected[V, E]) Backing() string {
	return Name
}

func (x Expected[V, E]) String() string {
	if x.failed {
		return fmt.Sprintf("unexpected(%v)", x.err)
	}
	return fmt.Sprintf("expected(%v)", x.value)
}

func (x Expected[V, E]) MarshalJSON() ([]byte, error) {
	return wire.Marshal(!x.failed, x.value, x.err)
}

func (x *Expected[V, E]) UnmarshalJSON(data []byte) error {
	if wire.Null(data) {
		return nil
	}

	value, err, ok, decodeErr := wire.Unmarshal[V, E](data)
	if decodeErr != nil {
		return decodeErr
	}

	*x = Expected[V, E]{value: value, err: err, failed: !ok}
	return nil
}
