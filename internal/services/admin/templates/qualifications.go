package templates

import (
	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
)

// QualificationsView provides data for the qualifications page.
type QualificationsView struct {
	List     ListView[consultapi.Qualification]
	Modal    ModalState
	Selected *consultapi.Qualification
}
