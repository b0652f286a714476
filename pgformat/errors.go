package pgformat

import "errors"

var (
	ErrEmptyInput       = errors.New("pgformat: empty input")
	ErrMalformedHeader  = errors.New("pgformat: malformed header line")
	ErrMalformedVertex  = errors.New("pgformat: malformed vertex line")
	ErrVertexOutOfRange = errors.New("pgformat: vertex index exceeds declared maximum")
	ErrDuplicateVertex  = errors.New("pgformat: vertex index declared twice")
	ErrUnknownSuccessor = errors.New("pgformat: edge references an undeclared vertex")
	ErrPriorityArity    = errors.New("pgformat: vertex priority list does not match declared dimension count")
)
