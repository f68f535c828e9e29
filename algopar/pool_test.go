package algopar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborio-graphs/nextgraph/algopar"
)

func TestNewPool_DefaultsToGOMAXPROCS(t *testing.T) {
	pool, err := algopar.NewPool()
	require.NoError(t, err)
	assert.NotNil(t, pool)
}

func TestNewPool_WithWorkers(t *testing.T) {
	pool, err := algopar.NewPool(algopar.WithWorkers(4))
	require.NoError(t, err)
	assert.NotNil(t, pool)
}

func TestNewPool_NonPositiveWorkersIgnored(t *testing.T) {
	// WithWorkers(0) and negative values leave the default in place
	// rather than producing an invalid configuration.
	pool, err := algopar.NewPool(algopar.WithWorkers(-3))
	require.NoError(t, err)
	assert.NotNil(t, pool)
}
