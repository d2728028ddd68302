package slist

import (
	"errors"
	"fmt"
)

type ErrorCode int

const (
	Unknown ErrorCode = iota
	// InvalidArgument is reported for a nil node argument or a negative position.
	InvalidArgument
	// OutOfBounds is reported when the list is empty or a position is past its end.
	OutOfBounds
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfBounds     = errors.New("out of bounds")
)

// SList custom error.
type Error struct {
	Code     ErrorCode
	Err      error
	UserData any
}

func (e Error) Error() string {
	return fmt.Errorf("error code: %d, user data: %v, details: %w", e.Code, e.UserData, e.Err).Error()
}

// Unwrap exposes the details so errors.Is can match ErrInvalidArgument or ErrOutOfBounds.
func (e Error) Unwrap() error {
	return e.Err
}

func invalidArgument(msg string, userData any) error {
	return Error{
		Code:     InvalidArgument,
		Err:      fmt.Errorf("%w: %s", ErrInvalidArgument, msg),
		UserData: userData,
	}
}

func outOfBounds(msg string, userData any) error {
	return Error{
		Code:     OutOfBounds,
		Err:      fmt.Errorf("%w: %s", ErrOutOfBounds, msg),
		UserData: userData,
	}
}
