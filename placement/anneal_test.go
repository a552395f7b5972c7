package placement

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnnealConvergesOnSmallFabric(t *testing.T) {
	topo := testTopology(4, 4)
	graph := topo.Build()
	impl := buildImplGraph(t)

	result, routed, err := Anneal(
		context.Background(),
		graph,
		topo,
		impl,
		WithMaxSteps(20),
		WithWorkers(3),
		WithRand(rand.New(rand.NewSource(42))),
	)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, routed)
}

func TestAnnealFailsWhenFabricTooSmall(t *testing.T) {
	topo := testTopology(0, 0)
	graph := topo.Build()
	impl := buildImplGraph(t)

	_, _, err := Anneal(context.Background(), graph, topo, impl, WithMaxSteps(5))
	require.Error(t, err)
}

func TestAnnealRespectsCancellation(t *testing.T) {
	topo := testTopology(4, 4)
	graph := topo.Build()
	impl := buildImplGraph(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := Anneal(ctx, graph, topo, impl, WithMaxSteps(50))
	require.Error(t, err)
}
