package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	ierr "agendaapi/internal/errors"
)

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ierr.WithError(err).
				WithHint("password must be at most 72 bytes").
				Mark(ierr.ErrValidation)
		}
		return "", ierr.WithError(err).WithMessage("hash password").Mark(ierr.ErrSystem)
	}
	return string(hash), nil
}
