package domain

import "errors"

var (
	// ErrInvalidOrderState signals an order referencing a taco that was never
	// persisted. This is a programming error on the caller's side and is
	// rejected before any row is written.
	ErrInvalidOrderState = errors.New("order references an unpersisted taco")

	// ErrStorageUnavailable wraps connection-level failures from the store.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrPersistenceRejected wraps constraint violations from the store.
	ErrPersistenceRejected = errors.New("persistence rejected")

	ErrUnknownIngredient  = errors.New("unknown ingredient")
	ErrEmptyTaco          = errors.New("taco has no ingredients")
	ErrCartNotFound       = errors.New("cart not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
