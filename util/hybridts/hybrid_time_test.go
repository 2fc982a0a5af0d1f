package hybridts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinels(t *testing.T) {
	require.True(t, Min.Valid())
	require.True(t, Max.Valid())
	require.False(t, Invalid.Valid())
	require.True(t, Max < Invalid)
	require.True(t, Min < Max)
}

func TestString(t *testing.T) {
	require.Equal(t, "<min>", Min.String())
	require.Equal(t, "<max>", Max.String())
	require.Equal(t, "<invalid>", Invalid.String())
	require.Equal(t, "42", HybridTime(42).String())
}
