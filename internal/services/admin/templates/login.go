package templates

import (
	"github.com/doubtsclear/console/internal/services/admin/forms"
)

// LoginView provides data for the sign-in page.
type LoginView struct {
	Email     string
	Errors    forms.Errors
	FormError string
}
