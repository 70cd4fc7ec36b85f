package expected

// ValueOr returns the value held by x, or fallback if x holds an error.
func ValueOr[V, E any](x Expected[V, E], fallback V) V {
	if x.HasValue() {
		return x.Value()
	}
	return fallback
}

// ErrorOr returns the error held by x, or fallback if x holds a value.
func ErrorOr[V, E any](x Expected[V, E], fallback E) E {
	if x.HasValue() {
		return fallback
	}
	return x.Err()
}

// AndThen calls f with the value of x. An error in x is passed through and
// f is not called.
func AndThen[V, U, E any](x Expected[V, E], f func(V) Expected[U, E]) Expected[U, E] {
	if !x.HasValue() {
		return Fail[U](x.Err())
	}
	return f(x.Value())
}

// OrElse calls f with the error of x. A value in x is passed through.
func OrElse[V, E, F any](x Expected[V, E], f func(E) Expected[V, F]) Expected[V, F] {
	if x.HasValue() {
		return New[V, F](x.Value())
	}
	return f(x.Err())
}

func Transform[V, U, E any](x Expected[V, E], f func(V) U) Expected[U, E] {
	if !x.HasValue() {
		return Fail[U](x.Err())
	}
	return New[U, E](f(x.Value()))
}

func TransformError[V, E, F any](x Expected[V, E], f func(E) F) Expected[V, F] {
	if x.HasValue() {
		return New[V, F](x.Value())
	}
	return Fail[V](f(x.Err()))
}

// FromPair converts a conventional (value, error) return. A nil err yields a
// value.
func FromPair[V any](value V, err error) Expected[V, error] {
	if err != nil {
		return Fail[V](err)
	}
	return New[V, error](value)
}

// ToPair is the inverse of FromPair. An error state holding a nil error
// yields an ErrUnexpected error, never a nil one.
func ToPair[V any, E error](x Expected[V, E]) (V, error) {
	if x.HasValue() {
		return x.Value(), nil
	}

	var zero V
	var err error = x.Err()
	if err == nil {
		return zero, ErrUnexpected.New("nil error payload")
	}
	return zero, err
}

func Try[V any](f func() (V, error)) Expected[V, error] {
	value, err := f()
	return FromPair(value, err)
}

// Collect returns the values of xs in order, or the first error found.
func Collect[V, E any](xs []Expected[V, E]) Expected[[]V, E] {
	values := make([]V, 0, len(xs))
	for _, x := range xs {
		if !x.HasValue() {
			return Fail[[]V](x.Err())
		}
		values = append(values, x.Value())
	}

	return New[[]V, E](values)
}
