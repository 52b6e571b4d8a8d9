package core

import "errors"

var (
	ErrEmptyKeys        = errors.New("empty key sequence")
	ErrUnmatchedBracket = errors.New("unmatched bracket in key sequence")
	ErrUnknownKey       = errors.New("unknown key")
	ErrUnknownModifier  = errors.New("unknown modifier")
)
