package templates

import (
	"github.com/doubtsclear/console/internal/services/admin/forms"
)

// DesignationView provides data for the designation create form.
type DesignationView struct {
	Form      forms.DesignationForm
	Errors    forms.Errors
	FormError string
	// Created is set after a successful submission.
	Created bool
}
