package calendar

import "errors"

var (
	ErrProfileNotFound          = errors.New("seasonal profile not found")
	ErrOverrideNotFound         = errors.New("calendar override not found")
	ErrEventNotFound            = errors.New("business event not found")
	ErrIncompleteMultiplierData = errors.New("multiplier data must cover all 24 hours")
)
