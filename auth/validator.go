package auth

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RegisterRequest carries the fields required to create an account.
// Password strength is deliberately not enforced beyond presence; hardening
// the credential policy is out of scope for this system.
type RegisterRequest struct {
	Email    string `validate:"required,email"`
	Username string `validate:"required,min=1,max=80"`
	Password string `validate:"required,max=72"`
}

// ValidateRegister checks the structural rules of a registration request.
func ValidateRegister(req RegisterRequest) error {
	return validate.Struct(req)
}
