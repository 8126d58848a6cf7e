package templates

import (
	"github.com/doubtsclear/console/internal/services/admin/forms"
	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
)

// UsersView provides data for the users page.
type UsersView struct {
	List     ListView[consultapi.User]
	Modal    ModalState
	Selected *consultapi.User
	Form     forms.UserForm
	Errors   forms.Errors
}
