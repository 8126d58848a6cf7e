package listview

import "strings"

// ModalKind tags which modal, if any, is open over a list.
type ModalKind string

const (
	ModalClosed   ModalKind = ""
	ModalCreating ModalKind = "create"
	ModalEditing  ModalKind = "edit"
	ModalViewing  ModalKind = "view"
	ModalDeleting ModalKind = "delete"
	// ModalApproving is the withdrawal approval dialog.
	ModalApproving ModalKind = "approve"
)

// Modal is the open modal and the id of the entity it targets. Only one
// entity can be selected at a time.
type Modal struct {
	Kind ModalKind
	ID   string
}

// Closed is the no-modal state.
var Closed = Modal{}

// NeedsID reports whether the kind targets an existing entity.
func (k ModalKind) NeedsID() bool {
	switch k {
	case ModalEditing, ModalViewing, ModalDeleting, ModalApproving:
		return true
	default:
		return false
	}
}

// ParseModal normalizes the modal and id query values. Unknown kinds and
// id-bearing kinds without an id collapse to Closed.
func ParseModal(kind string, id string) Modal {
	id = strings.TrimSpace(id)
	switch k := ModalKind(strings.TrimSpace(kind)); k {
	case ModalCreating:
		return Modal{Kind: ModalCreating}
	case ModalEditing, ModalViewing, ModalDeleting, ModalApproving:
		if id == "" {
			return Closed
		}
		return Modal{Kind: k, ID: id}
	default:
		return Closed
	}
}

// IsOpen reports whether any modal is showing.
func (m Modal) IsOpen() bool {
	return m.Kind != ModalClosed
}

// Is reports whether the modal is of kind k.
func (m Modal) Is(k ModalKind) bool {
	return m.Kind == k
}

// Select resolves the modal's target in items. A target that is not in the
// fetched snapshot closes the modal, so the returned pointer is non-nil
// exactly when an id-bearing modal stays open.
func Select[T any](m Modal, items []T, idOf func(T) string) (Modal, *T) {
	if !m.Kind.NeedsID() {
		return m, nil
	}
	for i := range items {
		if idOf(items[i]) == m.ID {
			selected := items[i]
			return m, &selected
		}
	}
	return Closed, nil
}
