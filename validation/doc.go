// Package validation provides struct tag validation for SDK request
// parameters and decoded server responses, built on the validator library.
//
//	type RegisterUserParams struct {
//	    Username string `json:"username" validate:"required"`
//	}
//	err := validation.Validate(params)
//
// Field names in error messages follow json tags.
package validation
