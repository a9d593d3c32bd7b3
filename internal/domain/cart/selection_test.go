package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection_Toggle(t *testing.T) {
	sel := NewSelection()

	assert.True(t, sel.Toggle("line-1"))
	assert.True(t, sel.IsSelected("line-1"))

	assert.False(t, sel.Toggle("line-1"))
	assert.False(t, sel.IsSelected("line-1"))
	assert.Zero(t, sel.Count())
}

func TestSelection_AddIsIdempotent(t *testing.T) {
	sel := NewSelection()

	sel.Add("line-1")
	sel.Add("line-1")

	assert.Equal(t, 1, sel.Count())
	assert.True(t, sel.IsSelected("line-1"))
}

func TestSelection_SelectAllReplaces(t *testing.T) {
	sel := NewSelection()
	sel.Add("stale-line")

	sel.SelectAll([]string{"line-1", "line-2"})

	assert.Equal(t, 2, sel.Count())
	assert.False(t, sel.IsSelected("stale-line"))
	assert.True(t, sel.IsSelected("line-1"))
	assert.True(t, sel.IsSelected("line-2"))
}

func TestSelection_ClearAll(t *testing.T) {
	sel := NewSelection()
	sel.SelectAll([]string{"line-1", "line-2"})

	sel.ClearAll()

	assert.Zero(t, sel.Count())
	assert.Empty(t, sel.IDs())
}

func TestSelection_PruneDropsOrphans(t *testing.T) {
	sel := NewSelection()
	sel.SelectAll([]string{"line-1", "line-2", "line-3"})

	// Cart shrank: line-2 no longer exists after a wholesale replace
	sel.Prune([]string{"line-1", "line-3"})

	assert.True(t, sel.IsSelected("line-1"))
	assert.False(t, sel.IsSelected("line-2"))
	assert.True(t, sel.IsSelected("line-3"))
}

func TestSelection_PruneAgainstEmptyCart(t *testing.T) {
	sel := NewSelection()
	sel.SelectAll([]string{"line-1", "line-2"})

	sel.Prune(nil)

	assert.Zero(t, sel.Count())
}

func TestSelection_IDs(t *testing.T) {
	sel := NewSelection()
	sel.Add("line-1")
	sel.Add("line-2")

	assert.ElementsMatch(t, []string{"line-1", "line-2"}, sel.IDs())
}
