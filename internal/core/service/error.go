package service

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
)
