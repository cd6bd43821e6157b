package remote

import "errors"

var (
	ErrBadURL   = errors.New("bad connection url")
	ErrNotValid = errors.New("invalid")
)
