package explicit

import "errors"

var (
	ErrUnknownVertex   = errors.New("explicit: reference to an undeclared vertex")
	ErrNoDimensions    = errors.New("explicit: arena declares zero priority dimensions")
	ErrPriorityArity   = errors.New("explicit: vertex priority vector length does not match dimension count")
	ErrOwnerOutOfRange = errors.New("explicit: vertex owner must be 0 or 1")
)
