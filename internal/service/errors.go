package service

import "errors"

var (
	ErrValidation         = errors.New("validation")          // 400
	ErrInvalidCredentials = errors.New("invalid credentials") // 401
	ErrNotFound           = errors.New("not found")           // 404
	ErrInactive           = errors.New("account is inactive") // 403
	ErrConflict           = errors.New("conflict")            // 400 on signup
	ErrInvalidSignature   = errors.New("invalid signature")   // 400
	ErrNotConfigured      = errors.New("not configured")      // 503
	ErrUpstream           = errors.New("upstream failure")    // 500
)
