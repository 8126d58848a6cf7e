package templates

import (
	"github.com/doubtsclear/console/internal/services/admin/forms"
	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
	"github.com/doubtsclear/console/internal/services/admin/listview"
)

// WithdrawalsView provides data for the withdrawals page.
type WithdrawalsView struct {
	List          ListView[consultapi.Withdrawal]
	Modal         ModalState
	Selected      *consultapi.Withdrawal
	TransactionID string
	Errors        forms.Errors
	// Notice reports a refused action above the table.
	Notice string
}

// WithdrawalStatuses are the server-side status filter choices.
func WithdrawalStatuses(page PageContext) []StatusOption {
	return []StatusOption{
		{Value: listview.StatusAll, Label: page.T("status.all")},
		{Value: consultapi.WithdrawalPending, Label: page.T("status.pending")},
		{Value: consultapi.WithdrawalApproved, Label: page.T("status.approved")},
	}
}

func withdrawalTone(status string) string {
	if status == consultapi.WithdrawalApproved {
		return "good"
	}
	return "pending"
}

// withdrawalActions lists the row modals; only pending withdrawals can be
// approved.
func withdrawalActions(w consultapi.Withdrawal) []listview.ModalKind {
	if w.Status == consultapi.WithdrawalPending {
		return []listview.ModalKind{listview.ModalViewing, listview.ModalApproving}
	}
	return []listview.ModalKind{listview.ModalViewing}
}
