package service

import "errors"

var (
	// ErrAuthRequired is returned when an operation needs an
	// authenticated user bound to the session.
	ErrAuthRequired = errors.New("authentication required")

	// ErrEmptyCart is returned when an order is placed with no
	// resolvable cart entries.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidCredentials is returned on any login failure. It
	// deliberately does not say which of email/password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
