// Package forms binds posted admin forms, validates them with
// go-playground/validator, and converts valid drafts into API inputs.
// Validation messages are catalog keys so the templates can localize them.
package forms
