package myerrors

import "errors"

var (
	ErrInvalidLogin       = errors.New("login length is incorrect")
	ErrInvalidPassword    = errors.New("password length is incorrect")
	ErrLoginTaken         = errors.New("login already exists")
	ErrInvalidCredentials = errors.New("authorization failed, please check your credentials")

	ErrOrderExists   = errors.New("order already exists")
	ErrOrderNotFound = errors.New("no order with given id")
	ErrOrderTaken    = errors.New("order already taken")

	ErrNoToken        = errors.New("no access token provided")
	ErrTokenExpired   = errors.New("access token has expired, please log in again")
	ErrTokenMalformed = errors.New("incorrect jwt token")
)
