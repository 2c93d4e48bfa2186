package registry

import "errors"

var (
	ErrUnknownCategory     = errors.New("unknown category")
	ErrDuplicateEndpointID = errors.New("duplicate endpoint id")
	ErrNoEndpoints         = errors.New("no endpoints")
)
