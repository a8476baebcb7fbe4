package command

import "errors"

var (
	ErrEmptyLine        = errors.New("empty line")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMalformedCommand = errors.New("malformed command")
	ErrOutput           = errors.New("write output")
)
