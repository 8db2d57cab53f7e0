package mst_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alinairsymova/spantree/core"
	"github.com/alinairsymova/spantree/mst"
)

// TestComputeBatch_PreservesOrder runs a batch of differently sized graphs
// and checks each result lands at its input index.
func TestComputeBatch_PreservesOrder(t *testing.T) {
	graphs := make([]*core.Graph, 8)
	for i := range graphs {
		// Chain of i+2 vertices: MST cost is exactly i+1 (unit weights).
		b := core.NewBuilder()
		for j := 0; j <= i; j++ {
			b.AddEdge(fmt.Sprintf("V%d", j), fmt.Sprintf("V%d", j+1), 1)
		}
		g, err := b.Build()
		require.NoError(t, err)
		graphs[i] = g
	}

	results, err := mst.ComputeBatch(mst.NewKruskal(), graphs)
	require.NoError(t, err)
	require.Len(t, results, len(graphs))
	for i, res := range results {
		assert.Equal(t, float64(i+1), res.TotalCost(), "result %d out of order", i)
		assert.True(t, res.IsValidMST())
	}
}

// TestComputeBatch_SharedInstanceUntouched verifies workers run on clones:
// the caller's instance keeps its pre-batch snapshot.
func TestComputeBatch_SharedInstanceUntouched(t *testing.T) {
	p := mst.NewPrim()
	graphs := []*core.Graph{buildTriangle(t), buildStar(t)}

	_, err := mst.ComputeBatch(p, graphs)
	require.NoError(t, err)
	assert.Zero(t, p.Metrics().Operations) // never ran directly
}

// TestComputeBatch_ErrorNamesGraphIndex verifies a failing graph aborts the
// batch with its position in the error.
func TestComputeBatch_ErrorNamesGraphIndex(t *testing.T) {
	disconnected, err := core.NewBuilder().
		AddEdge("A", "B", 1).
		AddVertex("C").
		Build()
	require.NoError(t, err)

	graphs := []*core.Graph{buildTriangle(t), disconnected}
	_, err = mst.ComputeBatch(mst.NewKruskal(), graphs)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
	assert.Contains(t, err.Error(), "graph 1")
}

// TestComputeBatch_Guards covers the nil algorithm and empty batch cases.
func TestComputeBatch_Guards(t *testing.T) {
	_, err := mst.ComputeBatch(nil, []*core.Graph{buildTriangle(t)})
	assert.ErrorIs(t, err, mst.ErrNilAlgorithm)

	results, err := mst.ComputeBatch(mst.NewPrim(), nil)
	assert.NoError(t, err)
	assert.Empty(t, results)
}
