package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/cartsync/internal/domain/cart"
)

func newSelectionFixture(t *testing.T) (*SelectionService, *Runtime) {
	t.Helper()
	runtimes := NewRegistry()
	rt := runtimes.Get(testSession().UserID)
	rt.items.Replace([]cart.LineItem{
		line("item-1", "p-1", 1000, 0, 5, 1),
		line("item-2", "p-2", 2000, 0, 5, 1),
	})
	return NewSelectionService(runtimes), rt
}

func TestToggle(t *testing.T) {
	svc, _ := newSelectionFixture(t)
	sess := testSession()

	view, err := svc.Toggle(sess, "item-1")
	require.NoError(t, err)
	assert.True(t, view.Items[0].Selected)
	assert.Equal(t, 1, view.SelectedCount)

	view, err = svc.Toggle(sess, "item-1")
	require.NoError(t, err)
	assert.False(t, view.Items[0].Selected)
	assert.Zero(t, view.SelectedCount)
}

func TestToggle_UnknownLine(t *testing.T) {
	svc, _ := newSelectionFixture(t)

	_, err := svc.Toggle(testSession(), "ghost")
	assert.ErrorIs(t, err, cart.ErrItemNotFound)
}

func TestSetAll(t *testing.T) {
	svc, rt := newSelectionFixture(t)
	sess := testSession()

	view := svc.SetAll(sess, true)
	assert.Equal(t, 2, view.SelectedCount)
	assert.True(t, view.Items[0].Selected)
	assert.True(t, view.Items[1].Selected)

	view = svc.SetAll(sess, false)
	assert.Zero(t, view.SelectedCount)
	assert.Zero(t, rt.selection.Count())
}

func TestSetAll_ReplacesStaleSelection(t *testing.T) {
	svc, rt := newSelectionFixture(t)
	sess := testSession()

	// a selection id left over from before the cart shrank
	rt.selection.Add("gone")

	svc.SetAll(sess, true)
	assert.False(t, rt.selection.IsSelected("gone"))
	assert.Equal(t, 2, rt.selection.Count())
}

func TestPreselect(t *testing.T) {
	svc, rt := newSelectionFixture(t)
	sess := testSession()

	view := svc.Preselect(sess, "p-2")
	assert.Equal(t, 1, view.SelectedCount)
	assert.True(t, rt.selection.IsSelected("item-2"))

	// idempotent
	view = svc.Preselect(sess, "p-2")
	assert.Equal(t, 1, view.SelectedCount)
}

func TestPreselect_ProductNotInCart(t *testing.T) {
	svc, rt := newSelectionFixture(t)

	view := svc.Preselect(testSession(), "p-unknown")
	assert.Zero(t, view.SelectedCount)
	assert.Zero(t, rt.selection.Count())
}
