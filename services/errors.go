package services

import "errors"

// Core error taxonomy. Handlers map these onto HTTP statuses and toast
// payloads; services never return presentation strings.
var (
	ErrNotFound          = errors.New("not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrOutOfStock        = errors.New("insufficient stock")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidOrExpired  = errors.New("invalid or expired code")
	ErrStorage           = errors.New("storage failure")
)
