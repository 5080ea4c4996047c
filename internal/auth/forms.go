package auth

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/Veraticus/budget-buzz/internal/common"
)

// Form messages shown to the user.
const (
	MsgFillAllFields     = "Please fill in all fields"
	MsgInvalidEmail      = "Please enter a valid email"
	MsgFullNameRequired  = "Please enter your full name"
	MsgInvalidSignUpMail = "Please enter a valid email address"
	MsgWeakPassword      = "Password doesn't meet requirements"
	MsgPasswordMismatch  = "Passwords don't match"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("strongpassword", strongPassword); err != nil {
		panic(err)
	}
	return v
}

// strongPassword requires at least one uppercase letter and one digit.
func strongPassword(fl validator.FieldLevel) bool {
	var upper, digit bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsNumber(r):
			digit = true
		}
	}
	return upper && digit
}

// LoginForm is the input of a sign-in.
type LoginForm struct {
	Email    string `validate:"required,contains=@"`
	Password string `validate:"required"`
}

// Validate returns a *common.UserError describing the first problem, or nil.
func (f LoginForm) Validate() error {
	fieldErrs, err := fieldErrors(validate.Struct(f))
	if err != nil || len(fieldErrs) == 0 {
		return err
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return common.NewUserError(MsgFillAllFields, common.ErrValidation)
		}
	}
	return common.NewUserError(MsgInvalidEmail, common.ErrValidation)
}

// SignUpForm is the input of an account registration.
type SignUpForm struct {
	FullName        string `validate:"required"`
	Email           string `validate:"required,contains=@"`
	Password        string `validate:"min=8,strongpassword"`
	ConfirmPassword string `validate:"eqfield=Password"`
}

var signUpMessages = map[string]string{
	"FullName":        MsgFullNameRequired,
	"Email":           MsgInvalidSignUpMail,
	"Password":        MsgWeakPassword,
	"ConfirmPassword": MsgPasswordMismatch,
}

// Validate checks fields in form order and reports the first failure as a
// *common.UserError.
func (f SignUpForm) Validate() error {
	fieldErrs, err := fieldErrors(validate.Struct(f))
	if err != nil || len(fieldErrs) == 0 {
		return err
	}
	return common.NewUserError(signUpMessages[fieldErrs[0].Field()], common.ErrValidation)
}

func fieldErrors(err error) (validator.ValidationErrors, error) {
	if err == nil {
		return nil, nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs, nil
	}
	return nil, fmt.Errorf("failed to validate form: %w", err)
}
