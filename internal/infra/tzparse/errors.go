package tzparse

import "errors"

var (
	errInvalidYear    = errors.New("invalid year")
	errInvalidDay     = errors.New("invalid day of month")
	errInvalidWeekday = errors.New("invalid weekday name")
)
