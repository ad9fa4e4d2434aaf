package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parprim/bfs"
	"github.com/katalvlaran/parprim/builder"
	"github.com/katalvlaran/parprim/core"
)

func reference(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Reference())
	require.NoError(t, err)
	return g
}

func TestBFS_Reference(t *testing.T) {
	t.Parallel()

	res, err := bfs.BFS(reference(t), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Order)
	assert.Equal(t, []int{0, 1, 1, 2, 2}, res.Depth)
	assert.Equal(t, []int{bfs.Unreached, 0, 0, 1, 2}, res.Parent)

	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4}, path)
}

func TestBFS_Errors(t *testing.T) {
	t.Parallel()
	g := reference(t)

	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(g, 5)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	stop := errors.New("stop")
	res, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
}

func TestBFS_MaxDepth(t *testing.T) {
	t.Parallel()

	res, err := bfs.BFS(reference(t), 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.False(t, res.Reached(3))

	_, err = res.PathTo(3)
	assert.Error(t, err)
}

func TestComponents(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.Path(3), builder.Nodes(6))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}, {3}, {4}, {5}}, bfs.Components(g))

	assert.Len(t, bfs.Components(reference(t)), 1)
	assert.Nil(t, bfs.Components(nil))

	empty, err := core.NewGraph(0, nil)
	require.NoError(t, err)
	assert.Empty(t, bfs.Components(empty))
}
