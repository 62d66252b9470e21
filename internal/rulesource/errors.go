package rulesource

import "errors"

var (
	ErrLoadRules    = errors.New("load rules failed")
	ErrInvalidRules = errors.New("invalid rules")
)
