package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFigureIndex(t *testing.T) {
	t.Run("add and get", func(t *testing.T) {
		fi := newFigureIndex(4)
		figure := fi.add("ridgeline", "image/png", []byte("png"))
		require.NotEmpty(t, figure.Id)

		found, ok := fi.get(figure.Id)
		require.True(t, ok)
		assert.Equal(t, "ridgeline", found.Kind)
		assert.Equal(t, []byte("png"), found.Data)

		_, ok = fi.get("unknown")
		assert.False(t, ok)
	})

	t.Run("oldest evicted", func(t *testing.T) {
		fi := newFigureIndex(2)
		first := fi.add("heatmap", "image/svg+xml", nil)
		second := fi.add("heatmap", "image/svg+xml", nil)
		third := fi.add("heatmap", "image/svg+xml", nil)

		assert.Equal(t, 2, fi.len())
		_, ok := fi.get(first.Id)
		assert.False(t, ok)
		_, ok = fi.get(second.Id)
		assert.True(t, ok)
		_, ok = fi.get(third.Id)
		assert.True(t, ok)
	})

	t.Run("remove", func(t *testing.T) {
		fi := newFigureIndex(2)
		first := fi.add("ridgeline", "image/png", nil)
		fi.remove(first.Id)
		fi.remove("unknown")
		assert.Zero(t, fi.len())
		assert.Empty(t, fi.ids)
	})

	t.Run("concurrent adds", func(t *testing.T) {
		fi := newFigureIndex(10)
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				fi.add(fmt.Sprint(i), "image/png", nil)
			}(i)
		}
		wg.Wait()
		assert.Equal(t, 10, fi.len())
		assert.Len(t, fi.ids, 10)
	})
}

func TestSingleton(t *testing.T) {
	figure := AddFigure("ridgeline", "image/png", []byte{1})
	found, ok := GetFigure(figure.Id)
	require.True(t, ok)
	assert.Equal(t, figure, found)
	RemoveFigure(figure.Id)
	_, ok = GetFigure(figure.Id)
	assert.False(t, ok)
}
