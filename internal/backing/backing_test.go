package backing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SelectedBackingAgreesWithFallbackFlag(t *testing.T) {
	x := New[int, string](1)

	assert.Equal(t, Name, x.Backing())
	assert.Equal(t, Fallback, Name == "boxed")
}

func Test_AliasesRoundTripThroughSelectedBacking(t *testing.T) {
	x := FromUnexpected[int](MakeUnexpected("e"))

	assert.False(t, x.HasValue())
	assert.Equal(t, "e", x.Err())
}
