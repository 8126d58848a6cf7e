package templates

import (
	"github.com/doubtsclear/console/internal/services/admin/listview"
	"github.com/doubtsclear/console/internal/services/admin/routepath"
)

// ListView is the rendered state of one resource list.
type ListView[T any] struct {
	State listview.State
	// ErrorMessage replaces the table when State is StateError.
	ErrorMessage string
	Page         listview.Page[T]
	Query        listview.Query
}

// ListFrame is the item-independent part of a list: its error, empty
// state and pagination.
type ListFrame struct {
	Failed       bool
	ErrorMessage string
	Empty        bool
	EmptyMessage string
	// Base is the list route pagination links point at.
	Base         string
	Query        listview.Query
	Page         int
	TotalPages   int
	PrevDisabled bool
	NextDisabled bool
}

// Frame describes lv for the shared table chrome rendered under base.
func (lv ListView[T]) Frame(base string, empty string) ListFrame {
	return ListFrame{
		Failed:       lv.State == listview.StateError,
		ErrorMessage: lv.ErrorMessage,
		Empty:        len(lv.Page.Items) == 0,
		EmptyMessage: empty,
		Base:         base,
		Query:        lv.Query,
		Page:         lv.Page.Page,
		TotalPages:   lv.Page.TotalPages,
		PrevDisabled: lv.Page.PrevDisabled,
		NextDisabled: lv.Page.NextDisabled,
	}
}

// pageURL is the full-page link to page n of the list.
func (f ListFrame) pageURL(n int) string {
	return f.Query.List().WithPage(n).URL(f.Base)
}

// tableURL is the fragment link to page n of the list.
func (f ListFrame) tableURL(n int) string {
	return f.Query.List().WithPage(n).URL(routepath.TableFor(f.Base))
}

// ModalState carries the open modal and its form feedback.
type ModalState struct {
	Modal listview.Modal
	// FormError is an upstream failure shown inside the modal.
	FormError string
}
