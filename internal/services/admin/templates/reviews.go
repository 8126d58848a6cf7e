package templates

import (
	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
)

// ReviewsView provides data for the reviews page.
type ReviewsView struct {
	List     ListView[consultapi.Review]
	Modal    ModalState
	Selected *consultapi.Review
}
