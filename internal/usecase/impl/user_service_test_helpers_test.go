package impl

import (
	"io"
	"log/slog"

	"directory/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newValidRegistration() *usecase.RegisterUserInput {
	return &usecase.RegisterUserInput{
		Name:     "Ana",
		Email:    "ana@x.com",
		Password: "secret1",
		Telephones: []usecase.TelephoneInput{
			{AreaCode: "11", Number: "98765432100"},
		},
	}
}
