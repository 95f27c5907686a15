package impl

import (
	"fmt"
	"strings"
	"unicode"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/usecase"

	"github.com/go-playground/validator/v10"
)

const minPasswordLength = 5

const (
	msgNameRequired       = "Name is required"
	msgEmailRequired      = "Email is required"
	msgEmailInvalid       = "The email is not valid"
	msgPasswordRequired   = "Password is required"
	msgPasswordTooShort   = "Password must have at least 5 characters"
	msgTelephonesRequired = "You must provide at least one telephone"
	msgAreaCodeRequired   = "the area code is required"
	msgNumberRequired     = "the phone number is required"
	msgAreaCodeLength     = "the area code should have 2 digits"
	msgNumberLength       = "the phone number should have 11 digits"
)

// registrationValidator checks registration input in ordered stages.
// The first stage with violations stops validation; within a stage every
// violation is collected.
type registrationValidator struct {
	validate *validator.Validate
}

func newRegistrationValidator() *registrationValidator {
	return &registrationValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate returns the normalized telephones when the input passes every stage.
func (v *registrationValidator) Validate(input *usecase.RegisterUserInput) ([]*entity.Telephone, *domainerrors.ValidationError) {
	stages := []func(*usecase.RegisterUserInput, *domainerrors.ValidationError){
		v.checkIdentity,
		v.checkPassword,
		v.checkTelephonesPresent,
		v.checkTelephoneFormat,
	}

	for _, stage := range stages {
		violations := domainerrors.NewValidationError()
		stage(input, violations)
		if violations.HasViolations() {
			return nil, violations
		}
	}

	telephones := make([]*entity.Telephone, 0, len(input.Telephones))
	for _, tel := range input.Telephones {
		telephones = append(telephones, &entity.Telephone{
			AreaCode: digitsOnly(tel.AreaCode),
			Number:   digitsOnly(tel.Number),
		})
	}

	return telephones, nil
}

func (v *registrationValidator) checkIdentity(input *usecase.RegisterUserInput, violations *domainerrors.ValidationError) {
	if strings.TrimSpace(input.Name) == "" {
		violations.Add("name", msgNameRequired)
	}

	switch {
	case strings.TrimSpace(input.Email) == "":
		violations.Add("email", msgEmailRequired)
	case v.validate.Var(input.Email, "email") != nil:
		violations.Add("email", msgEmailInvalid)
	}
}

func (v *registrationValidator) checkPassword(input *usecase.RegisterUserInput, violations *domainerrors.ValidationError) {
	switch {
	case input.Password == "":
		violations.Add("password", msgPasswordRequired)
	case v.validate.Var(input.Password, fmt.Sprintf("min=%d", minPasswordLength)) != nil:
		violations.Add("password", msgPasswordTooShort)
	}
}

func (v *registrationValidator) checkTelephonesPresent(input *usecase.RegisterUserInput, violations *domainerrors.ValidationError) {
	if len(input.Telephones) == 0 {
		violations.Add("telephones", msgTelephonesRequired)

		return
	}

	for i, tel := range input.Telephones {
		if strings.TrimSpace(tel.AreaCode) == "" {
			violations.Add(telephoneField(i, "area_code"), msgAreaCodeRequired)
		}
		if strings.TrimSpace(tel.Number) == "" {
			violations.Add(telephoneField(i, "number"), msgNumberRequired)
		}
	}
}

func (v *registrationValidator) checkTelephoneFormat(input *usecase.RegisterUserInput, violations *domainerrors.ValidationError) {
	for i, tel := range input.Telephones {
		if len(digitsOnly(tel.AreaCode)) != entity.AreaCodeDigits {
			violations.Add(telephoneField(i, "area_code"), msgAreaCodeLength)
		}
		if len(digitsOnly(tel.Number)) != entity.NumberDigits {
			violations.Add(telephoneField(i, "number"), msgNumberLength)
		}
	}
}

func telephoneField(index int, name string) string {
	return fmt.Sprintf("telephones[%d].%s", index, name)
}

// digitsOnly drops every rune that is not an ASCII digit.
func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			return r
		}

		return -1
	}, s)
}
