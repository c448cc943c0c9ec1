package ir

import (
	"errors"

	"github.com/signadot/jsondoc/format"
)

var (
	ErrParse     = errors.New("parse error")
	ErrBadFormat = format.ErrBadFormat
	ErrPath      = errors.New("bad path")
)
