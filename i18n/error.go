package i18n

import "errors"

var (
	ErrBadLocale  = errors.New("bad locale")
	ErrBadMessage = errors.New("bad message")
)
