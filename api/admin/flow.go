// Package admin holds the admin panel editing flow and the
// category-dispatched payload assembly behind it.
package admin

import (
	"github.com/qwest/portfolioapi/api/item"
)

// Mode is the admin panel's top-level view.
type Mode string

const (
	ModeList Mode = "list"
	ModeForm Mode = "form"
)

// View is the admin editing flow state. Target is set when the form
// edits an existing item; PendingDelete carries the id awaiting the
// explicit confirmation step.
type View struct {
	Mode          Mode
	Target        *item.ItemModel
	PendingDelete string
}

// DefaultView starts at the browsing list.
func DefaultView() View {
	return View{Mode: ModeList}
}

// FlowAction is one admin interaction.
type FlowAction interface{ isFlowAction() }

// OpenCreate enters the form with blank defaults.
type OpenCreate struct{}

// OpenEdit enters the form pre-populated from the target item.
type OpenEdit struct{ Item item.ItemModel }

// Cancel discards the form and returns to the list.
type Cancel struct{}

// SubmitSucceeded returns to the list after a successful create or
// update.
type SubmitSucceeded struct{}

// RequestDelete asks for confirmation before the item is removed. The
// view stays on the list.
type RequestDelete struct{ ID string }

// ConfirmDelete clears the pending confirmation; the store call itself
// happens outside the reducer.
type ConfirmDelete struct{}

// CancelDelete abandons the pending delete.
type CancelDelete struct{}

func (OpenCreate) isFlowAction()      {}
func (OpenEdit) isFlowAction()        {}
func (Cancel) isFlowAction()          {}
func (SubmitSucceeded) isFlowAction() {}
func (RequestDelete) isFlowAction()   {}
func (ConfirmDelete) isFlowAction()   {}
func (CancelDelete) isFlowAction()    {}

// Reduce applies one action to the editing flow.
func Reduce(v View, a FlowAction) View {
	switch act := a.(type) {
	case OpenCreate:
		v.Mode = ModeForm
		v.Target = nil
		v.PendingDelete = ""
		return v

	case OpenEdit:
		target := act.Item
		v.Mode = ModeForm
		v.Target = &target
		v.PendingDelete = ""
		return v

	case Cancel, SubmitSucceeded:
		v.Mode = ModeList
		v.Target = nil
		return v

	case RequestDelete:
		if v.Mode != ModeList {
			return v
		}
		v.PendingDelete = act.ID
		return v

	case ConfirmDelete, CancelDelete:
		v.PendingDelete = ""
		return v
	}

	return v
}
