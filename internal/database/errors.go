package database

import "errors"

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when the users.email unique
	// constraint is violated.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrSlotFull is returned when a booking would exceed the
	// per-slot capacity.
	ErrSlotFull = errors.New("time slot is fully booked")
)
