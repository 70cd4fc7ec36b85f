package logging

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/constraints"

	"github.com/Philanthropists/expected/pkg/expected"
)

func Duration[S ~string](s S, t time.Duration) Field {
	return zap.Duration(string(s), t)
}

func Any[S ~string](s S, v any) Field {
	return zap.Any(string(s), v)
}

func Int[S ~string, T constraints.Signed](s S, v T) Field {
	return zap.Int64(string(s), int64(v))
}

func Uint[S ~string, T constraints.Unsigned](s S, v T) Field {
	return zap.Uint64(string(s), uint64(v))
}

func Bool[S ~string](s S, v bool) Field {
	return zap.Bool(string(s), v)
}

func Error(err error) Field {
	return zap.Error(err)
}

func String[U, V ~string](s U, v V) Field {
	return zap.String(string(s), string(v))
}

// Outcome logs v as an object with an "ok" flag and either its "value" or
// its "error". Values that are not shaped like an expected are logged as a
// successful outcome holding v.
func Outcome[S ~string](s S, v any) Field {
	return zap.Object(string(s), zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		val, err := expected.Unwrap(v)
		if err != nil {
			enc.AddBool("ok", false)
			enc.AddString("error", err.Error())
			return nil
		}

		enc.AddBool("ok", true)
		return enc.AddReflected("value", val)
	}))
}
