package containers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	require.Equal(t, 0.0, mean([]float64{}))
	require.Equal(t, 2.0, mean([]float64{1, 2, 3}))
	require.Equal(t, float32(1.5), mean([]float32{1, 2}))
	require.Equal(t, 6.0, sum([]float64{1, 2, 3}))
}
