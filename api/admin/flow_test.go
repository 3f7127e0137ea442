package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwest/portfolioapi/api/item"
)

func TestReduce_CreateOpensBlankForm(t *testing.T) {
	v := Reduce(DefaultView(), OpenCreate{})
	assert.Equal(t, ModeForm, v.Mode)
	assert.Nil(t, v.Target)
}

func TestReduce_EditCarriesTarget(t *testing.T) {
	target := item.ItemModel{ID: "x", Category: item.CategoryProject, Title: "Tool"}
	v := Reduce(DefaultView(), OpenEdit{Item: target})

	assert.Equal(t, ModeForm, v.Mode)
	require.NotNil(t, v.Target)
	assert.Equal(t, "x", v.Target.ID)
}

func TestReduce_CancelReturnsToList(t *testing.T) {
	v := Reduce(DefaultView(), OpenEdit{Item: item.ItemModel{ID: "x"}})
	v = Reduce(v, Cancel{})

	assert.Equal(t, ModeList, v.Mode)
	assert.Nil(t, v.Target)
}

func TestReduce_SubmitReturnsToList(t *testing.T) {
	v := Reduce(DefaultView(), OpenCreate{})
	v = Reduce(v, SubmitSucceeded{})

	assert.Equal(t, ModeList, v.Mode)
	assert.Nil(t, v.Target)
}

func TestReduce_DeleteRequiresConfirmation(t *testing.T) {
	v := Reduce(DefaultView(), RequestDelete{ID: "x"})
	assert.Equal(t, ModeList, v.Mode)
	assert.Equal(t, "x", v.PendingDelete)

	// Backing out clears the pending id without any store call.
	cancelled := Reduce(v, CancelDelete{})
	assert.Empty(t, cancelled.PendingDelete)

	confirmed := Reduce(v, ConfirmDelete{})
	assert.Empty(t, confirmed.PendingDelete)
	assert.Equal(t, ModeList, confirmed.Mode)
}

func TestReduce_DeleteIgnoredInForm(t *testing.T) {
	v := Reduce(DefaultView(), OpenCreate{})
	v = Reduce(v, RequestDelete{ID: "x"})
	assert.Empty(t, v.PendingDelete)
}

func TestReduce_OpeningFormClearsPendingDelete(t *testing.T) {
	v := Reduce(DefaultView(), RequestDelete{ID: "x"})
	v = Reduce(v, OpenCreate{})
	assert.Empty(t, v.PendingDelete)
}
