package fin

import "errors"

// ErrShapeMismatch is returned when two arrows or objects that must share an
// endpoint object do not. Sharing means pointer identity, not equal size.
var ErrShapeMismatch = errors.New("shape mismatch")

// ErrLength is returned when an arrow's index graph does not have exactly one
// entry per domain element.
var ErrLength = errors.New("graph length does not match domain size")

// ErrIndexRange is returned when an index falls outside its carrier's range.
var ErrIndexRange = errors.New("index out of range")

// ErrArity is returned when a mediator is given the wrong number of legs.
var ErrArity = errors.New("leg count mismatch")

// ErrOverflow is returned when a constructed carrier would be too large to
// enumerate. Products and exponentials grow multiplicatively; callers are
// expected to bound their inputs.
var ErrOverflow = errors.New("carrier too large to enumerate")
