package api

import "errors"

var (
	// errInvalidBody is returned when the request body is not the expected JSON.
	errInvalidBody = errors.New("invalid request body")

	// errInvalidGroupParam is returned when the group path parameter is not a
	// valid group number.
	errInvalidGroupParam = errors.New("invalid group parameter")

	// errUnknownGroup is returned when roster validation is enabled and the
	// group is not registered.
	errUnknownGroup = errors.New("group not in roster")
)
