package tagged

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Philanthropists/expected/internal/types"
)

func recovered(f func()) (r any) {
	defer func() {
		r = recover()
	}()
	f()
	return nil
}

func Test_ValueConstructionHoldsValue(t *testing.T) {
	x := New[int, string](42)

	assert.True(t, x.HasValue())
	assert.Equal(t, 42, x.Value())
	assert.Equal(t, "expected(42)", x.String())
}

func Test_UnexpectedConstructionHoldsError(t *testing.T) {
	x := FromUnexpected[int](MakeUnexpected("not found"))

	assert.False(t, x.HasValue())
	assert.Equal(t, "not found", x.Err())
	assert.Equal(t, "unexpected(not found)", x.String())
}

func Test_ZeroValueHoldsZeroValue(t *testing.T) {
	var x Expected[int, string]

	assert.True(t, x.HasValue())
	assert.Equal(t, 0, x.Value())
}

func Test_WrongSideAccessPanicsWithBadAccess(t *testing.T) {
	ok := New[int, string](1)
	bad := FromUnexpected[int](MakeUnexpected("boom"))

	r := recovered(func() { _ = ok.Err() })
	err, isErr := r.(error)
	require.True(t, isErr)
	assert.True(t, types.ErrBadAccess.Has(err))

	r = recovered(func() { _ = bad.Value() })
	err, isErr = r.(error)
	require.True(t, isErr)
	assert.True(t, types.ErrBadAccess.Has(err))
	assert.Contains(t, err.Error(), "boom")
}

func Test_JSONRoundTrip(t *testing.T) {
	tests := map[string]Expected[int, string]{
		"value": New[int, string](7),
		"error": FromUnexpected[int](MakeUnexpected("nope")),
	}

	for name, x := range tests {
		t.Run(name, func(t *testing.T) {
			b, err := json.Marshal(x)
			require.NoError(t, err)

			var got Expected[int, string]
			require.NoError(t, json.Unmarshal(b, &got))
			assert.Equal(t, x, got)
		})
	}
}

func Test_NullLeavesExpectedUnchanged(t *testing.T) {
	x := FromUnexpected[int](MakeUnexpected("e"))
	require.NoError(t, json.Unmarshal([]byte("null"), &x))

	assert.False(t, x.HasValue())
	assert.Equal(t, "e", x.Err())
}
