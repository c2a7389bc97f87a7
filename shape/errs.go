package shape

import "errors"

var (
	ErrDuplicateType = errors.New("duplicate type definition")
	ErrUnknownType   = errors.New("unknown type")
	ErrNoPath        = errors.New("no path to target type")
	ErrBadTypeRef    = errors.New("bad type reference")
	ErrBadShape      = errors.New("bad shape description")
)
