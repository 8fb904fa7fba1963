// Package errors defines the sentinel error taxonomy shared by the
// repositories, services and transport layers.
package errors

import "fmt"

var (
	ErrMissingFields      = fmt.Errorf("missing required fields")
	ErrNotFound           = fmt.Errorf("not found")
	ErrEmailTaken         = fmt.Errorf("email already registered")
	ErrUsernameTaken      = fmt.Errorf("username already registered")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidUserOrChat  = fmt.Errorf("invalid user or chat")
	ErrInvalidRoomEvent   = fmt.Errorf("invalid room event")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrEmptyWords         = fmt.Errorf("no words have been found")
)
