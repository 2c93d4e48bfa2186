package pinger

import "errors"

var (
	ErrPoolStopped = errors.New("pool stopped")
)
