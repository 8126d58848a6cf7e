package templates

import (
	"github.com/doubtsclear/console/internal/services/admin/forms"
	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
)

// WalletsView provides data for the wallet plans page.
type WalletsView struct {
	List     ListView[consultapi.Wallet]
	Modal    ModalState
	Selected *consultapi.Wallet
	// Money and Offer hold the create or edit draft.
	Money  string
	Offer  string
	Errors forms.Errors
}
