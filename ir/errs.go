package ir

import (
	"errors"

	"github.com/signadot/transcheck/format"
)

var (
	ErrParse     = errors.New("parse error")
	ErrBadFormat = format.ErrBadFormat
)
