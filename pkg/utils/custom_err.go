package utils

import "errors"

var (
	ErrValidation          = errors.New("validation failed")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrDatabaseError       = errors.New("database error")
	ErrMisconfigured       = errors.New("server misconfigured")
	ErrUpstreamUnavailable = errors.New("upstream payment verification failed")

	ErrInvalidSignature     = errors.New("signature mismatch")
	ErrPaymentNotFound      = errors.New("payment id not found or invalid")
	ErrPaymentNotAcceptable = errors.New("payment status not acceptable")

	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
)
