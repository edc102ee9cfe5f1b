package bridge

import "errors"

var (
	ErrNoRoute       = errors.New("bridge: no route between source and target")
	ErrSameEndpoints = errors.New("bridge: source and target jurisdiction must differ")
)
