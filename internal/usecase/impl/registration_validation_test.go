package impl

import (
	"strings"
	"testing"

	domainerrors "directory/internal/domain/errors"
	"directory/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationValidator_Stages(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.RegisterUserInput)
		want   []domainerrors.FieldViolation
	}{
		{
			name: "name and email reported together",
			mutate: func(in *usecase.RegisterUserInput) {
				in.Name = "  "
				in.Email = ""
			},
			want: []domainerrors.FieldViolation{
				{Field: "name", Message: msgNameRequired},
				{Field: "email", Message: msgEmailRequired},
			},
		},
		{
			name: "first stage hides later ones",
			mutate: func(in *usecase.RegisterUserInput) {
				in.Email = "not-an-email"
				in.Password = "abc"
				in.Telephones = nil
			},
			want: []domainerrors.FieldViolation{
				{Field: "email", Message: msgEmailInvalid},
			},
		},
		{
			name: "short password",
			mutate: func(in *usecase.RegisterUserInput) {
				in.Password = "abcd"
				in.Telephones = nil
			},
			want: []domainerrors.FieldViolation{
				{Field: "password", Message: msgPasswordTooShort},
			},
		},
		{
			name:   "empty password",
			mutate: func(in *usecase.RegisterUserInput) { in.Password = "" },
			want: []domainerrors.FieldViolation{
				{Field: "password", Message: msgPasswordRequired},
			},
		},
		{
			name:   "no telephones",
			mutate: func(in *usecase.RegisterUserInput) { in.Telephones = []usecase.TelephoneInput{} },
			want: []domainerrors.FieldViolation{
				{Field: "telephones", Message: msgTelephonesRequired},
			},
		},
		{
			name: "blank telephone fields",
			mutate: func(in *usecase.RegisterUserInput) {
				in.Telephones = []usecase.TelephoneInput{
					{AreaCode: "11", Number: "98765432100"},
					{AreaCode: " ", Number: ""},
				}
			},
			want: []domainerrors.FieldViolation{
				{Field: "telephones[1].area_code", Message: msgAreaCodeRequired},
				{Field: "telephones[1].number", Message: msgNumberRequired},
			},
		},
		{
			name: "wrong digit counts",
			mutate: func(in *usecase.RegisterUserInput) {
				in.Telephones = []usecase.TelephoneInput{
					{AreaCode: "1", Number: "98765432100"},
					{AreaCode: "11", Number: "9876543210"},
				}
			},
			want: []domainerrors.FieldViolation{
				{Field: "telephones[0].area_code", Message: msgAreaCodeLength},
				{Field: "telephones[1].number", Message: msgNumberLength},
			},
		},
		{
			name: "letters do not count as digits",
			mutate: func(in *usecase.RegisterUserInput) {
				in.Telephones = []usecase.TelephoneInput{{AreaCode: "ab", Number: "98765432100"}}
			},
			want: []domainerrors.FieldViolation{
				{Field: "telephones[0].area_code", Message: msgAreaCodeLength},
			},
		},
	}

	v := newRegistrationValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := newValidRegistration()
			tt.mutate(input)

			telephones, violations := v.Validate(input)
			assert.Nil(t, telephones)
			require.NotNil(t, violations)
			assert.Equal(t, tt.want, violations.Fields)
		})
	}
}

func TestRegistrationValidator_NormalizesTelephones(t *testing.T) {
	input := newValidRegistration()
	input.Telephones = []usecase.TelephoneInput{
		{AreaCode: "(11)", Number: "98765-4321 00"},
		{AreaCode: "21", Number: "912345678 00"},
	}

	telephones, violations := newRegistrationValidator().Validate(input)
	require.Nil(t, violations)
	require.Len(t, telephones, 2)
	assert.Equal(t, "11", telephones[0].AreaCode)
	assert.Equal(t, "98765432100", telephones[0].Number)
	assert.Equal(t, "21", telephones[1].AreaCode)
	assert.Equal(t, "91234567800", telephones[1].Number)
}

func TestRegistrationValidator_PasswordBoundary(t *testing.T) {
	input := newValidRegistration()
	input.Password = "12345"

	_, violations := newRegistrationValidator().Validate(input)
	assert.Nil(t, violations)
}

func TestRegistrationValidator_LongNameAccepted(t *testing.T) {
	input := newValidRegistration()
	input.Name = strings.Repeat("Ana ", 80)

	telephones, violations := newRegistrationValidator().Validate(input)
	assert.Nil(t, violations)
	assert.Len(t, telephones, 1)
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "1198", digitsOnly("+11 (98)"))
	assert.Equal(t, "", digitsOnly("٣٤"))
}
