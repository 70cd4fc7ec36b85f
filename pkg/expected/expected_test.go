package expected

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func badAccess(t *testing.T, f func()) {
	t.Helper()

	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok, "expected a panic carrying an error, got %v", r)
		assert.True(t, ErrBadAccess.Has(err))
	}()

	f()
}

func Test_ValueIsHeld(t *testing.T) {
	x := New[int, string](42)

	assert.True(t, x.HasValue())
	assert.Equal(t, 42, x.Value())
	badAccess(t, func() { x.Err() })
}

func Test_UnexpectedIsHeld(t *testing.T) {
	x := FromUnexpected[int](MakeUnexpected("not found"))

	assert.False(t, x.HasValue())
	assert.Equal(t, "not found", x.Err())
	badAccess(t, func() { x.Value() })
}

func Test_ValuesRoundTripUnchanged(t *testing.T) {
	for _, v := range []int{-1, 0, 1, 1 << 40} {
		x := New[int, error](v)
		assert.True(t, x.HasValue())
		assert.Equal(t, v, x.Value())
	}

	for _, e := range []string{"", "not found", "timeout"} {
		x := Fail[int](e)
		assert.False(t, x.HasValue())
		assert.Equal(t, e, x.Err())
	}
}

func Test_ReassignmentReplacesState(t *testing.T) {
	x := New[int, string](1)
	assert.True(t, x.HasValue())

	x = Fail[int]("gone")
	assert.False(t, x.HasValue())
	assert.Equal(t, "gone", x.Err())

	x = New[int, string](2)
	assert.Equal(t, 2, x.Value())
}

func Test_ErrorPayloadIsNotAnError(t *testing.T) {
	var x any = Fail[int]("not found")

	_, isErr := x.(error)
	assert.False(t, isErr)
}

func Test_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Expected[int, string]
		want bool
	}{
		{"same value", New[int, string](1), New[int, string](1), true},
		{"different value", New[int, string](1), New[int, string](2), false},
		{"same error", Fail[int]("e"), Fail[int]("e"), true},
		{"different error", Fail[int]("e"), Fail[int]("f"), false},
		{"value and error", New[int, string](0), Fail[int](""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a))
		})
	}
}

func Test_EqualFuncComparesErrorsWithCallback(t *testing.T) {
	a := Fail[int](errors.New("boom"))
	b := Fail[int](errors.New("boom"))

	sameMessage := func(x, y error) bool { return x.Error() == y.Error() }
	same := func(x, y int) bool { return x == y }

	assert.True(t, EqualFunc(a, b, same, sameMessage))
}

func Test_JSON(t *testing.T) {
	type payload struct {
		Count Expected[int, string] `json:"count"`
	}

	in := payload{Count: Fail[int]("overflow")}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":{"unexpected":"overflow"}}`, string(b))

	var out payload
	require.NoError(t, json.Unmarshal([]byte(`{"count":3}`), &out))
	assert.True(t, Equal(New[int, string](3), out.Count))

	err = json.Unmarshal([]byte(`{"count":"three"}`), &out)
	assert.True(t, ErrDecode.Has(err))
}

func Test_BackingIsReported(t *testing.T) {
	assert.Equal(t, BackingName, New[int, int](0).Backing())
	assert.Equal(t, UsingFallback, BackingName != "tagged")
}
