package service

import (
	"cargo-dispatch/internal/dispatch-service/core/myerrors"
)

const (
	MinLoginLen = 5
	MaxLoginLen = 50

	MinPasswordLen = 5
	MaxPasswordLen = 25
)

func validateLogin(login string) error {
	loginLen := len(login)
	if loginLen < MinLoginLen || loginLen > MaxLoginLen {
		return myerrors.ErrInvalidLogin
	}
	return nil
}

func validatePassword(password string) error {
	passwordLen := len(password)
	if passwordLen < MinPasswordLen || passwordLen > MaxPasswordLen {
		return myerrors.ErrInvalidPassword
	}
	return nil
}
