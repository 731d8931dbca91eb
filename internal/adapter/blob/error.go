package blob

import "errors"

var (
	ErrSchemeNotRegistered = errors.New("scheme was not registered")
)
