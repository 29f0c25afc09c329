package model

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNoIdentity is returned when no acting identity could be resolved.
	ErrNoIdentity = errors.New("no identity resolved")
	// ErrInvalidTarget is returned when the target of a role change or
	// timeout does not hold the expected role.
	ErrInvalidTarget = errors.New("target role mismatch")
	// ErrProtectedRoot is returned when an operation would demote the root
	// super_vip identity.
	ErrProtectedRoot = errors.New("root identity is protected")
)
