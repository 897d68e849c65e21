package shift

import "errors"

var (
	ErrShiftNotFound    = errors.New("shift not found")
	ErrShiftMissingDate = errors.New("shift has no date assigned")
	ErrInvalidStartTime = errors.New("start time must be in HH:MM format")
)
