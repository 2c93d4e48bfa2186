package v1

import "errors"

var (
	ErrNoStorage = errors.New("no storage")
	ErrNoPool    = errors.New("no dispatch pool")
)
