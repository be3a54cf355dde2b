package cmd

import "errors"

var (
	// ErrBigIPHostRequired is returned when the BIG-IP host is missing
	ErrBigIPHostRequired = errors.New("bigip host is required and cannot be empty")
	// ErrBigIPCredentialsRequired is returned when the BIG-IP credentials are missing
	ErrBigIPCredentialsRequired = errors.New("bigip username and password are required and cannot be empty")
)
