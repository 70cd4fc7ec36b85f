package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Philanthropists/expected/internal/types"
)

func Test_MarshalValueIsBare(t *testing.T) {
	b, err := Marshal(true, 42, "ignored")
	require.NoError(t, err)
	assert.JSONEq(t, `42`, string(b))
}

func Test_MarshalErrorIsTagged(t *testing.T) {
	b, err := Marshal(false, 0, "not found")
	require.NoError(t, err)
	assert.JSONEq(t, `{"unexpected":"not found"}`, string(b))
}

func Test_UnmarshalTaggedObjectIsError(t *testing.T) {
	v, e, ok, err := Unmarshal[int, string]([]byte(`{"unexpected":"not found"}`))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "not found", e)
	assert.Zero(t, v)
}

func Test_UnmarshalObjectWithOtherKeysIsValue(t *testing.T) {
	type pair struct {
		Unexpected string `json:"unexpected"`
		Other      int    `json:"other"`
	}

	v, _, ok, err := Unmarshal[pair, string]([]byte(`{"unexpected":"x","other":1}`))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, pair{Unexpected: "x", Other: 1}, v)
}

func Test_UnmarshalInvalidPayloads(t *testing.T) {
	tests := map[string]string{
		"value of wrong type": `"forty two"`,
		"error of wrong type": `{"unexpected":12}`,
		"malformed":           `{`,
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, ok, err := Unmarshal[int, string]([]byte(input))
			assert.False(t, ok)
			assert.True(t, types.ErrDecode.Has(err))
		})
	}
}

func Test_Null(t *testing.T) {
	assert.True(t, Null([]byte("null")))
	assert.True(t, Null([]byte(" null\n")))
	assert.False(t, Null([]byte(`"null"`)))
	assert.False(t, Null([]byte(`{"unexpected":null}`)))
}

func Test_SingleKeyValueDecodesAsError(t *testing.T) {
	b, err := Marshal(true, map[string]string{"unexpected": "x"}, nil)
	require.NoError(t, err)

	_, e, ok, err := Unmarshal[map[string]string, string](b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "x", e)
}
