package templates

import (
	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
	"github.com/doubtsclear/console/internal/services/admin/listview"
)

// CallStatusCompleted is the call filter value matching ended calls.
const CallStatusCompleted = "completed"

// CallsView provides data for the call log page.
type CallsView struct {
	List ListView[consultapi.Call]
}

// CallStatuses are the call log filter choices.
func CallStatuses(page PageContext) []StatusOption {
	return []StatusOption{
		{Value: listview.StatusAll, Label: page.T("status.all")},
		{Value: CallStatusCompleted, Label: page.T("status.completed")},
		{Value: consultapi.CallMissed, Label: page.T("status.missed")},
	}
}

func callTone(status string) string {
	switch status {
	case consultapi.CallEnded:
		return "good"
	case consultapi.CallMissed:
		return "poor"
	default:
		return "pending"
	}
}

// callParty labels a caller or receiver with its account type.
func callParty(party consultapi.CallParty) string {
	return PartyName(party) + " (" + OrNA(party.Type) + ")"
}
