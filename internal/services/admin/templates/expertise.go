package templates

import (
	"github.com/doubtsclear/console/internal/services/admin/forms"
	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
)

// ExpertiseView provides data for the expertise page.
type ExpertiseView struct {
	List     ListView[consultapi.Expertise]
	Modal    ModalState
	Selected *consultapi.Expertise
	Form     forms.ExpertiseForm
	Errors   forms.Errors
}
