package expected

import (
	"reflect"
	"strings"
)

// Like is satisfied by any type shaped like an expected over V and E,
// whichever package defines it. Generic code constrained by Like works with
// every backing as well as with user types of the same shape.
type Like[V, E any] interface {
	HasValue() bool
	Value() V
	Err() E
}

var canonical = reflect.TypeFor[Expected[struct{}, struct{}]]()

// IsLike reports whether T has the methods of an expected: a HasValue
// returning a bool and nullary Value and Err methods returning one result
// each. Those results are T's value and error types.
func IsLike[T any]() bool {
	_, _, ok := shape(reflect.TypeFor[T]())
	return ok
}

// IsLikeValue is IsLike for the dynamic type of v.
func IsLikeValue(v any) bool {
	_, _, ok := shape(reflect.TypeOf(v))
	return ok
}

// Is reports whether T is shaped like an expected and is the Expected
// of this package instantiated over T's own value and error types. Types
// from the backing that was not selected satisfy IsLike but not Is.
func Is[T any]() bool {
	return isCanonical(reflect.TypeFor[T]())
}

func IsValue(v any) bool {
	return isCanonical(reflect.TypeOf(v))
}

// Unwrap returns the value held by v if v is shaped like an expected, and
// the error it holds otherwise. Anything else is returned unchanged. Error
// payloads that are not errors are wrapped in ErrUnexpected.
func Unwrap(v any) (any, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return v, nil
	}

	if _, _, ok := shape(rv.Type()); !ok {
		return v, nil
	}

	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return v, nil
	}

	if rv.MethodByName("HasValue").Call(nil)[0].Bool() {
		return rv.MethodByName("Value").Call(nil)[0].Interface(), nil
	}

	payload := rv.MethodByName("Err").Call(nil)[0].Interface()
	if err, ok := payload.(error); ok {
		return nil, err
	}
	return nil, ErrUnexpected.New("%v", payload)
}

func shape(t reflect.Type) (value, err reflect.Type, ok bool) {
	if t == nil {
		return nil, nil, false
	}

	has, ok := result(t, "HasValue")
	if !ok || has.Kind() != reflect.Bool {
		return nil, nil, false
	}

	value, ok = result(t, "Value")
	if !ok {
		return nil, nil, false
	}

	err, ok = result(t, "Err")
	if !ok {
		return nil, nil, false
	}

	return value, err, true
}

// result returns the only result of the nullary method name of t.
func result(t reflect.Type, name string) (reflect.Type, bool) {
	m, ok := t.MethodByName(name)
	if !ok {
		return nil, false
	}

	// methods of concrete types take their receiver as first argument
	in := 1
	if t.Kind() == reflect.Interface {
		in = 0
	}

	if m.Type.NumIn() != in || m.Type.NumOut() != 1 || m.Type.IsVariadic() {
		return nil, false
	}

	return m.Type.Out(0), true
}

func isCanonical(t reflect.Type) bool {
	if _, _, ok := shape(t); !ok {
		return false
	}

	// Value and Err of an instantiated Expected return its type arguments,
	// so matching the generic type is enough.
	return t.PkgPath() == canonical.PkgPath() && genericName(t) == genericName(canonical)
}

func genericName(t reflect.Type) string {
	name, _, _ := strings.Cut(t.Name(), "[")
	return name
}
