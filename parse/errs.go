package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/jsondoc/ir"
)

var (
	errInternal = errors.New("internal parse error")
	ErrParse    = ir.ErrParse
	ErrDepth    = fmt.Errorf("%w: nesting too deep", ErrParse)
	ErrTrailing = fmt.Errorf("%w: trailing content", ErrParse)
	ErrEmpty    = fmt.Errorf("%w: empty document", ErrParse)
	ErrRange    = fmt.Errorf("%w: number out of range", ErrParse)
)
